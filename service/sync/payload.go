package sync

import (
	"encoding/json"

	"remiks.GO/model/product"
)

// The ingestion endpoint grew per-feed field lists over time and now
// validates each feed against its historical shape, misspellings
// included. The wire structs below freeze those shapes; the canonical
// Record stays clean and the drift lives here.

type excelWireProduct struct {
	SKU                  string        `json:"sku"`
	EAN                  string        `json:"ean"`
	Gender               string        `json:"gender"`
	ProductName          string        `json:"product_name"`
	Stock                product.Stock `json:"stock"`
	Type                 string        `json:"type"`
	VariationType        string        `json:"variation_type"`
	NetRetailPrice       float64       `json:"net_retail_price"`
	Active               int           `json:"active"`
	Brand                string        `json:"brand"`
	CategoryCode         string        `json:"category_code"`
	ProductCategoryName  string        `json:"product_category_name"`
	ProductVariation     string        `json:"product_variation"`
	ProductVariations    []string      `json:"product_variations"`
	SalePrice            float64       `json:"sale_price"`
	InvoicePrice         float64       `json:"invoice_price"`
	Weight               string        `json:"weight"`
	VAT                  string        `json:"vat"`
	VATSymbol            string        `json:"vat_symbol"`
	Season               string        `json:"season"`
	Images               []string      `json:"images"`
	Description          string        `json:"description"`
	MisspelledDesc       string        `json:"product_descritption"`
	PackingTime          string        `json:"packing_time"`
	PackingTimeType      string        `json:"packing_time_type"`
	PackingTimeFormatted string        `json:"packing_time_formatted"`
	UnitOfMeasure        string        `json:"unit_of_measure"`
	ImporterName         string        `json:"importer_name"`
	ManufacturerName     string        `json:"manufacturer_name"`
	CountryOfOrigin      string        `json:"country_of_origin"`
	OriginalCategory     string        `json:"original_category"`
	HasSpecialPrice      bool          `json:"has_special_price"`
	PriceDiscountPercent float64       `json:"price_discount_percent"`
}

type wooWireProduct struct {
	SKU                 string        `json:"sku"`
	Gender              string        `json:"gender"`
	ProductName         string        `json:"product_name"`
	Stock               product.Stock `json:"stock"`
	Type                string        `json:"type"`
	NetRetailPrice      float64       `json:"net_retail_price"`
	Active              int           `json:"active"`
	Brand               string        `json:"brand"`
	CategoryCode        string        `json:"category_code"`
	ProductCategoryName string        `json:"product_category_name"`
	ProductVariation    string        `json:"product_variation"`
	ProductVariations   []string      `json:"product_variations"`
	SalePrice           float64       `json:"sale_price"`
	InvoicePrice        float64       `json:"invoice_price"`
	Weight              string        `json:"weight"`
	VAT                 string        `json:"vat"`
	VATSymbol           string        `json:"vat symbol"`
	Season              string        `json:"season"`
	Images              []string      `json:"images"`
	Description         string        `json:"description"`
}

func toExcelWire(r *product.Record) excelWireProduct {
	return excelWireProduct{
		SKU:                  r.SKU,
		EAN:                  r.EAN,
		Gender:               r.Gender,
		ProductName:          r.ProductName,
		Stock:                r.Stock,
		Type:                 r.Type,
		VariationType:        r.VariationType,
		NetRetailPrice:       r.NetRetailPrice,
		Active:               r.Active,
		Brand:                r.Brand,
		CategoryCode:         r.CategoryCode,
		ProductCategoryName:  r.ProductCategoryName,
		ProductVariation:     r.ProductVariation,
		ProductVariations:    r.ProductVariations,
		SalePrice:            r.SalePrice,
		InvoicePrice:         r.InvoicePrice,
		Weight:               r.Weight,
		VAT:                  r.VAT,
		VATSymbol:            r.VATSymbol,
		Season:               r.Season,
		Images:               r.Images,
		Description:          r.Description,
		MisspelledDesc:       r.Description,
		PackingTime:          r.PackingTime,
		PackingTimeType:      r.PackingTimeType,
		PackingTimeFormatted: r.PackingTimeFormatted,
		UnitOfMeasure:        r.UnitOfMeasure,
		ImporterName:         r.ImporterName,
		ManufacturerName:     r.ManufacturerName,
		CountryOfOrigin:      r.CountryOfOrigin,
		OriginalCategory:     r.OriginalCategory,
		HasSpecialPrice:      r.HasSpecialPrice,
		PriceDiscountPercent: r.PriceDiscountPercent,
	}
}

func toWooWire(r *product.Record) wooWireProduct {
	return wooWireProduct{
		SKU:                 r.SKU,
		Gender:              r.Gender,
		ProductName:         r.ProductName,
		Stock:               r.Stock,
		Type:                r.Type,
		NetRetailPrice:      r.NetRetailPrice,
		Active:              r.Active,
		Brand:               r.Brand,
		CategoryCode:        r.CategoryCode,
		ProductCategoryName: r.ProductCategoryName,
		ProductVariation:    r.ProductVariation,
		ProductVariations:   r.ProductVariations,
		SalePrice:           r.SalePrice,
		InvoicePrice:        r.InvoicePrice,
		Weight:              r.Weight,
		VAT:                 r.VAT,
		VATSymbol:           r.VATSymbol,
		Season:              r.Season,
		Images:              r.Images,
		Description:         r.Description,
	}
}

// MarshalProducts serializes product records into the channel's wire
// shape, pretty-printed the way the historical payload files were.
func MarshalProducts(records []*product.Record, ch Channel) ([]byte, error) {
	if ch == ChannelWoo {
		wire := make([]wooWireProduct, 0, len(records))
		for _, r := range records {
			wire = append(wire, toWooWire(r))
		}
		return json.MarshalIndent(wire, "", "    ")
	}
	wire := make([]excelWireProduct, 0, len(records))
	for _, r := range records {
		wire = append(wire, toExcelWire(r))
	}
	return json.MarshalIndent(wire, "", "    ")
}

// MarshalStock serializes stock-only records.
func MarshalStock(records []*product.StockRecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "    ")
}
