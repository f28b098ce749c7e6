package sync

import (
	"fmt"
	"strings"
)

// Classification sentinels. Unmatched input is never an error; it falls
// through to these documented defaults.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderUnisex = "U"

	CategoryOther   = "OSTALO"
	CodeUnmapped    = "9999"
	BrandGeneric    = "GENERIC"
	SeasonUniversal = "UNIVERZALNO"
)

// CategoryRule maps an ordered term set to a category label. Rules are
// evaluated in source order; the first term hit wins.
type CategoryRule struct {
	Name  string
	Terms []string
}

// Variant holds the classifier tables for one source. The spreadsheet and
// WooCommerce feeds use the same labels but different term sets and
// priorities, so each channel carries its own table.
type Variant struct {
	BoyTerms    []string
	GirlTerms   []string
	UnisexTerms []string

	CategoryRules []CategoryRule // matched against the category text
	NameRules     []CategoryRule // matched against the product name
	NameFirst     bool           // match the product name before the category text

	Brands []string

	SeasonAware bool // channels without tag data always report UNIVERZALNO
}

// Gender terms are stems, not full words: Serbian case endings vary
// ("dečaci", "dečake", "dečacima"), and substring matching on the stem
// covers all of them in both scripts.
var excelVariant = &Variant{
	BoyTerms:    []string{"dečac", "decac", "dečak", "decak", "dečiji", "deciji", "boys"},
	GirlTerms:   []string{"devojčic", "devojcic", "girls"},
	UnisexTerms: []string{"unisex", "baby", "bebe", "novorođenče", "novorodenche"},
	CategoryRules: []CategoryRule{
		{Name: "ŠORCEVI", Terms: []string{"šorc", "sorc", "bermude", "shorts"}},
		{Name: "MAJICE", Terms: []string{"majica", "t-shirt", "tshirt"}},
		{Name: "DUKSEVI", Terms: []string{"duks", "hoodie", "džemper", "dzemper"}},
		{Name: "PANTALONE", Terms: []string{"pantalone", "pants", "farmerke"}},
		{Name: "JAKNE", Terms: []string{"jakna", "jacket"}},
		{Name: "TRENERKE", Terms: []string{"trenerk", "komplet", "set"}},
		{Name: "SETOVI", Terms: []string{"set", "komplet"}},
	},
	NameRules: []CategoryRule{
		{Name: "ŠORCEVI", Terms: []string{"šorc", "sorc", "shorts", "bermude"}},
		{Name: "MAJICE", Terms: []string{"majica", "t-shirt", "tshirt"}},
		{Name: "DUKSEVI", Terms: []string{"duks", "hoodie", "džemper", "dzemper"}},
		{Name: "PANTALONE", Terms: []string{"pantalone", "pants", "farmerke"}},
		{Name: "JAKNE", Terms: []string{"jakna", "jacket"}},
		{Name: "TRENERKE", Terms: []string{"trenerk", "komplet"}},
		{Name: "SETOVI", Terms: []string{"set", "komplet"}},
	},
	Brands: []string{"JACK & JONES JUNIOR", "REEBOK", "MESSI", "CAVALLI CLASS"},
}

var wooVariant = &Variant{
	BoyTerms:    []string{"dečac", "decac", "dečak", "decak"},
	GirlTerms:   []string{"devojčic", "devojcic"},
	UnisexTerms: []string{"unisex", "baby", "bebe", "novorođenče", "novorodenche"},
	NameFirst:   true,
	NameRules: []CategoryRule{
		{Name: "SETOVI", Terms: []string{"set", "komplet"}},
		{Name: "DUKSEVI", Terms: []string{"duks", "hoodie", "džemper", "dzemper"}},
		{Name: "MAJICE", Terms: []string{"majica", "t-shirt", "tshirt"}},
		{Name: "ŠORCEVI", Terms: []string{"šorc", "sorc", "shorts", "bermude"}},
		{Name: "PANTALONE", Terms: []string{"pantalone", "pants", "farmerke"}},
		{Name: "JAKNE", Terms: []string{"jakna", "jacket"}},
		{Name: "TRENERKE", Terms: []string{"trenerk", "komplet"}},
	},
	CategoryRules: []CategoryRule{
		{Name: "SETOVI", Terms: []string{"setovi", "kompleti"}},
		{Name: "DUKSEVI", Terms: []string{"duksevi", "džemperi", "dzemper"}},
		{Name: "MAJICE", Terms: []string{"majice"}},
		{Name: "ŠORCEVI", Terms: []string{"šorcevi", "sorcevi", "bermude"}},
		{Name: "PANTALONE", Terms: []string{"pantalone"}},
		{Name: "JAKNE", Terms: []string{"jakne"}},
		{Name: "TRENERKE", Terms: []string{"trenerke", "kompleti"}},
	},
	Brands:      []string{"JACK & JONES", "REEBOK", "MESSI", "VINGINO"},
	SeasonAware: true,
}

// codeToName reverse-maps a predefined category code to its label.
var codeToName = map[string]string{
	// Boys (1xxx)
	"1001": "TRENERKE", "1002": "DUKSEVI", "1003": "MAJICE", "1004": "ŠORCEVI",
	"1005": "PANTALONE", "1006": "JAKNE", "1007": "SETOVI", "1099": "OSTALO",
	// Girls (2xxx)
	"2001": "TRENERKE", "2002": "DUKSEVI", "2003": "MAJICE", "2004": "ŠORCEVI",
	"2005": "PANTALONE", "2006": "JAKNE", "2007": "SETOVI", "2099": "TORBE",
	// Unisex (3xxx)
	"3001": "TRENERKE", "3002": "DUKSEVI", "3003": "MAJICE", "3004": "ŠORCEVI",
	"3005": "PANTALONE", "3006": "JAKNE", "3007": "SETOVI", "3099": "OSTALO",
}

// nameToCode forward-maps (gender, category label) to the numeric code.
var nameToCode = map[string]map[string]string{
	GenderMale: {
		"TRENERKE": "1001", "DUKSEVI": "1002", "MAJICE": "1003", "ŠORCEVI": "1004",
		"PANTALONE": "1005", "JAKNE": "1006", "SETOVI": "1007", "OSTALO": "1099",
	},
	GenderFemale: {
		"TRENERKE": "2001", "DUKSEVI": "2002", "MAJICE": "2003", "ŠORCEVI": "2004",
		"PANTALONE": "2005", "JAKNE": "2006", "SETOVI": "2007", "OSTALO": "2099",
		"TORBE": "2099",
	},
	GenderUnisex: {
		"TRENERKE": "3001", "DUKSEVI": "3002", "MAJICE": "3003", "ŠORCEVI": "3004",
		"PANTALONE": "3005", "JAKNE": "3006", "SETOVI": "3007", "OSTALO": "3099",
	},
}

func containsAny(haystack string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}

// ClassifyGender derives M/F/U from free-form category text. Priority is
// fixed: boy terms, then girl terms, then unisex/baby terms, default U.
func ClassifyGender(v *Variant, text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, v.BoyTerms):
		return GenderMale
	case containsAny(lower, v.GirlTerms):
		return GenderFemale
	case containsAny(lower, v.UnisexTerms):
		return GenderUnisex
	default:
		return GenderUnisex
	}
}

// ClassifyCategory matches category text and product name against the
// variant's ordered rules and returns the category label, default OSTALO.
func ClassifyCategory(v *Variant, categoryText, name string) string {
	category := strings.ToLower(categoryText)
	productName := strings.ToLower(name)

	first, firstRules := category, v.CategoryRules
	second, secondRules := productName, v.NameRules
	if v.NameFirst {
		first, firstRules = productName, v.NameRules
		second, secondRules = category, v.CategoryRules
	}

	for _, rule := range firstRules {
		if containsAny(first, rule.Terms) {
			return rule.Name
		}
	}
	for _, rule := range secondRules {
		if containsAny(second, rule.Terms) {
			return rule.Name
		}
	}
	return CategoryOther
}

// IsPredefinedCode reports whether the category value is already a valid
// 4-digit code inside one of the gender bands (1xxx/2xxx/3xxx).
func IsPredefinedCode(value string) bool {
	s := strings.TrimSpace(value)
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s[0] == '1' || s[0] == '2' || s[0] == '3'
}

// ResolveCategory returns (code, gender, category label) for a raw category
// value. A predefined code passes through verbatim — feeding a valid code
// back in returns it unchanged — with gender read from its leading digit.
// Anything else goes through the gender and category classifiers and the
// forward code table, sentinel 9999 for unmapped pairs.
func ResolveCategory(v *Variant, categoryValue, name string) (code, gender, categoryName string) {
	if IsPredefinedCode(categoryValue) {
		code = strings.TrimSpace(categoryValue)
		switch code[0] {
		case '1':
			gender = GenderMale
		case '2':
			gender = GenderFemale
		default:
			gender = GenderUnisex
		}
		categoryName = codeToName[code]
		if categoryName == "" {
			categoryName = CategoryOther
		}
		return code, gender, categoryName
	}

	gender = ClassifyGender(v, categoryValue)
	categoryName = ClassifyCategory(v, categoryValue, name)
	code = nameToCode[gender][categoryName]
	if code == "" {
		code = CodeUnmapped
	}
	return code, gender, categoryName
}

// ClassifyBrand returns the explicit brand field when set, else matches the
// product name against the variant's ordered brand list, else GENERIC.
func ClassifyBrand(v *Variant, explicit, name string) string {
	if b := strings.TrimSpace(explicit); b != "" {
		return strings.ToUpper(b)
	}
	nameUpper := strings.ToUpper(name)
	for _, brand := range v.Brands {
		if strings.Contains(nameUpper, brand) {
			return brand
		}
	}
	return BrandGeneric
}

var (
	summerTerms = []string{"leto", "summer", "spring", "proleće", "prolece"}
	winterTerms = []string{"zima", "winter", "jesen", "autumn"}
)

// ClassifySeason matches category and tag terms against the summer/winter
// keyword sets. Channels without tag data (SeasonAware false) and
// unmatched input report the universal sentinel.
func ClassifySeason(v *Variant, terms []string, year int) string {
	if !v.SeasonAware {
		return SeasonUniversal
	}
	for _, term := range terms {
		lower := strings.ToLower(term)
		if containsAny(lower, summerTerms) {
			return fmt.Sprintf("LETO %d", year)
		}
	}
	for _, term := range terms {
		lower := strings.ToLower(term)
		if containsAny(lower, winterTerms) {
			return fmt.Sprintf("ZIMA %d", year)
		}
	}
	return SeasonUniversal
}
