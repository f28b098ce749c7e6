package sync

import "testing"

func TestClassifyGender(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Duks za dečake", GenderMale},
		{"Duks za decake", GenderMale},
		{"Majice za devojčice", GenderFemale},
		{"Unisex oprema", GenderUnisex},
		{"Oprema za bebe", GenderUnisex},
		{"Obuća", GenderUnisex},
	}
	for _, tt := range tests {
		if got := ClassifyGender(excelVariant, tt.text); got != tt.want {
			t.Errorf("ClassifyGender(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		category string
		name     string
		wantCode string
		wantG    string
		wantName string
	}{
		{"Duks za decake", "Duks za decake", "1002", GenderMale, "DUKSEVI"},
		{"Majice za devojčice", "Majica", "2003", GenderFemale, "MAJICE"},
		{"Unisex jakne", "Jakna", "3006", GenderUnisex, "JAKNE"},
		{"Nepoznata kategorija", "Nepoznat artikal", "3099", GenderUnisex, CategoryOther},
	}
	for _, tt := range tests {
		code, gender, name := ResolveCategory(excelVariant, tt.category, tt.name)
		if code != tt.wantCode || gender != tt.wantG || name != tt.wantName {
			t.Errorf("ResolveCategory(%q, %q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.category, tt.name, code, gender, name, tt.wantCode, tt.wantG, tt.wantName)
		}
	}
}

func TestResolveCategoryPassThrough(t *testing.T) {
	code, gender, name := ResolveCategory(excelVariant, "2003", "whatever")
	if code != "2003" || gender != GenderFemale || name != "MAJICE" {
		t.Errorf("got (%q, %q, %q), want (2003, F, MAJICE)", code, gender, name)
	}

	// A code outside the gender bands is not predefined and gets classified.
	code, _, _ = ResolveCategory(excelVariant, "4001", "Duks")
	if code == "4001" {
		t.Error("code 4001 must not pass through")
	}
}

func TestIsPredefinedCode(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1002", true},
		{"2099", true},
		{"3001", true},
		{" 1002 ", true},
		{"4001", false},
		{"9999", false},
		{"100", false},
		{"10021", false},
		{"1a02", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPredefinedCode(tt.value); got != tt.want {
			t.Errorf("IsPredefinedCode(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestClassifyBrand(t *testing.T) {
	tests := []struct {
		explicit string
		name     string
		want     string
	}{
		{"nike", "Reebok duks", "NIKE"},
		{"", "Reebok duks", "REEBOK"},
		{"", "Jack & Jones Junior majica", "JACK & JONES JUNIOR"},
		{"", "Obična majica", BrandGeneric},
	}
	for _, tt := range tests {
		if got := ClassifyBrand(excelVariant, tt.explicit, tt.name); got != tt.want {
			t.Errorf("ClassifyBrand(%q, %q) = %q, want %q", tt.explicit, tt.name, got, tt.want)
		}
	}
}

func TestClassifySeason(t *testing.T) {
	tests := []struct {
		terms []string
		want  string
	}{
		{[]string{"Kolekcija leto"}, "LETO 2026"},
		{[]string{"Majice", "zima"}, "ZIMA 2026"},
		{[]string{"Jesen program"}, "ZIMA 2026"},
		{[]string{"Majice"}, SeasonUniversal},
		{nil, SeasonUniversal},
	}
	for _, tt := range tests {
		if got := ClassifySeason(wooVariant, tt.terms, 2026); got != tt.want {
			t.Errorf("ClassifySeason(%v) = %q, want %q", tt.terms, got, tt.want)
		}
	}

	// Channels without tag data never report a season.
	if got := ClassifySeason(excelVariant, []string{"leto"}, 2026); got != SeasonUniversal {
		t.Errorf("season-blind variant returned %q", got)
	}
}

func TestClassifyCategoryOrder(t *testing.T) {
	// The shop feed checks the product name before the category text.
	got := ClassifyCategory(wooVariant, "Majice", "Duks sa kapuljačom")
	if got != "DUKSEVI" {
		t.Errorf("name-first variant returned %q, want DUKSEVI", got)
	}

	// The spreadsheet feed checks the category text first.
	got = ClassifyCategory(excelVariant, "Majica kratkih rukava", "Duks")
	if got != "MAJICE" {
		t.Errorf("category-first variant returned %q, want MAJICE", got)
	}
}
