package sync

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"remiks.GO/model/product"
)

// AssembleOptions configures one assembly run.
type AssembleOptions struct {
	Channel Channel
	// DefaultWarehouse is used for rows without a warehouse field.
	DefaultWarehouse string
	// Year stamps seasonal labels; 0 means the current year.
	Year int
}

const imageSlots = 4

// Assemble folds raw source rows into canonical product records, one per
// SKU. Scalar fields are taken from the first row of each SKU; later rows
// only contribute sizes and stock quantities. Records come back in
// first-appearance order.
func Assemble(rows []Row, opts AssembleOptions) []*product.Record {
	variant := opts.Channel.Variant()
	rule := opts.Channel.PriceRule()
	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	bySKU := make(map[string]*product.Record)
	var order []string

	for _, row := range rows {
		sku := row.GetString("SKU", "")
		if sku == "" {
			continue
		}

		rec, ok := bySKU[sku]
		if !ok {
			rec = newRecord(row, sku, variant, rule, year)
			bySKU[sku] = rec
			order = append(order, sku)
		}

		size := row.GetString("SIZE", "")
		if size == "" {
			continue
		}
		rec.AddVariation(size)
		warehouse := row.GetString("WAREHOUSE", opts.DefaultWarehouse)
		rec.Stock.Set(size, warehouse, row.GetInt("QTY", 0))
	}

	records := make([]*product.Record, 0, len(order))
	for _, sku := range order {
		rec := bySKU[sku]
		finalize(rec, opts.Channel)
		records = append(records, rec)
	}
	return records
}

func newRecord(row Row, sku string, variant *Variant, rule PriceRule, year int) *product.Record {
	name := row.GetString("NAME", "")
	categoryValue := row.GetString("CATEGORY", "")
	code, gender, categoryName := ResolveCategory(variant, categoryValue, name)

	retail := row.GetFloat("RETAIL_PRICE", 0)
	special := row.GetFloat("SPECIAL_PRICE", retail)
	prices := ComputePrices(rule, retail, special)

	hasSpecial := special > 0 && special != retail
	discount := 0.0
	if hasSpecial && retail > 0 {
		discount = round2((retail - special) / retail * 100)
	}

	// The sheet carries the description under DESCRIPTION or the Serbian
	// column header, whichever is filled.
	description := row.GetString("DESCRIPTION", "")
	if description == "" {
		description = row.GetString("Opis", "")
	}

	packingTime := row.GetInt("PACKING_TIME", 2)
	packingType := row.GetString("PACKING_TIME_TYPE", "Dan")

	variationType := row.GetString("VARIATION", "SIZE")

	rec := &product.Record{
		SKU:                  sku,
		EAN:                  row.GetString("EAN", ""),
		Gender:               gender,
		ProductName:          foldName(name),
		Stock:                make(product.Stock),
		Type:                 normalizeType(row.GetString("TYPE", "simple")),
		VariationType:        variationType,
		NetRetailPrice:       prices.NetRetail,
		Active:               row.GetInt("ACTIVE", 1),
		Brand:                ClassifyBrand(variant, row.GetString("BRAND", ""), name),
		CategoryCode:         code,
		ProductCategoryName:  categoryName,
		ProductVariation:     strings.ToLower(variationType),
		SalePrice:            prices.Sale,
		InvoicePrice:         prices.Invoice,
		Weight:               row.GetString("WEIGHT", "0.2"),
		VAT:                  row.GetString("VAT", "20"),
		VATSymbol:            row.GetString("VAT_SYMBOL", "Đ"),
		Season:               ClassifySeason(variant, []string{categoryValue, row.GetString("TAGS", "")}, year),
		Images:               padImages(splitImages(row.GetString("IMAGES", ""))),
		Description:          description,
		PackingTime:          strconv.Itoa(packingTime),
		PackingTimeType:      packingType,
		PackingTimeFormatted: FormatPackingTime(packingTime, packingType),
		UnitOfMeasure:        row.GetString("Jedinica mere", "Kom"),
		ImporterName:         row.GetString("Poslovno ime uvoznika", ""),
		ManufacturerName:     row.GetString("Poslovno ime proizvođača", ""),
		CountryOfOrigin:      row.GetString("Zemlja proizvodnje", ""),
		OriginalCategory:     categoryValue,
		HasSpecialPrice:      hasSpecial,
		PriceDiscountPercent: discount,
	}
	return rec
}

// finalize applies the cross-row rules once all sizes are collected: a
// product with several sizes is configurable regardless of the declared
// type, and a sizeless item on the shop feed carries no variation axis.
func finalize(rec *product.Record, ch Channel) {
	if len(rec.ProductVariations) > 1 && rec.Type == "simple" {
		rec.Type = "configurable"
	}
	if ch == ChannelWoo && len(rec.ProductVariations) == 0 {
		rec.ProductVariation = "none"
	}
}

// normalizeType collapses the source type labels (including the historical
// misspelling "configurabile" and WooCommerce's "variable") onto the two
// values the platform accepts.
func normalizeType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "configurable", "configurabile", "variable":
		return "configurable"
	default:
		return "simple"
	}
}

func splitImages(raw string) []string {
	if raw == "" {
		return nil
	}
	var images []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			images = append(images, p)
		}
	}
	return images
}

// padImages sizes the image list to exactly four entries, padding with
// empty strings or dropping extras. The ingestion endpoint rejects any
// other arity.
func padImages(images []string) []string {
	out := make([]string, imageSlots)
	copy(out, images)
	return out
}

// nameFolder strips the Serbian diacritics the ingestion side cannot store.
var nameFolder = strings.NewReplacer(
	"š", "s", "Š", "S",
	"ž", "z", "Ž", "Z",
	"č", "c", "Č", "C",
	"ć", "c", "Ć", "C",
)

func foldName(name string) string {
	return nameFolder.Replace(name)
}

// FormatPackingTime renders a packing duration with the Serbian plural
// form of the unit ("1 dan", "2 dana", "3 sata", "2 meseca").
func FormatPackingTime(value int, unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "dan", "dana":
		if value == 1 {
			return "1 dan"
		}
		return fmt.Sprintf("%d dana", value)
	case "sat", "sata", "sati":
		if value == 1 {
			return "1 sat"
		}
		return fmt.Sprintf("%d sata", value)
	case "mesec", "meseca", "meseci":
		if value == 1 {
			return "1 mesec"
		}
		return fmt.Sprintf("%d meseca", value)
	default:
		return fmt.Sprintf("%d %s", value, strings.ToLower(unit))
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
