package product

// Stock maps size → warehouse name → quantity.
type Stock map[string]map[string]int

// Set stores a quantity for a (size, warehouse) pair, overwriting any
// earlier value (last write wins).
func (s Stock) Set(size, warehouse string, qty int) {
	if _, ok := s[size]; !ok {
		s[size] = make(map[string]int)
	}
	s[size][warehouse] = qty
}

// Record is the canonical per-SKU product assembled from raw source rows.
// JSON tags follow the Remiks ingestion field names so archived payloads
// can be reloaded for stock updates.
type Record struct {
	SKU                  string   `json:"sku"`
	EAN                  string   `json:"ean,omitempty"`
	Gender               string   `json:"gender"`
	ProductName          string   `json:"product_name"`
	Stock                Stock    `json:"stock"`
	Type                 string   `json:"type"`
	VariationType        string   `json:"variation_type,omitempty"`
	NetRetailPrice       float64  `json:"net_retail_price"`
	Active               int      `json:"active"`
	Brand                string   `json:"brand"`
	CategoryCode         string   `json:"category_code"`
	ProductCategoryName  string   `json:"product_category_name"`
	ProductVariation     string   `json:"product_variation"`
	ProductVariations    []string `json:"product_variations"`
	SalePrice            float64  `json:"sale_price"`
	InvoicePrice         float64  `json:"invoice_price"`
	Weight               string   `json:"weight"`
	VAT                  string   `json:"vat"`
	VATSymbol            string   `json:"vat_symbol"`
	Season               string   `json:"season"`
	Images               []string `json:"images"`
	Description          string   `json:"description"`
	PackingTime          string   `json:"packing_time,omitempty"`
	PackingTimeType      string   `json:"packing_time_type,omitempty"`
	PackingTimeFormatted string   `json:"packing_time_formatted,omitempty"`
	UnitOfMeasure        string   `json:"unit_of_measure,omitempty"`
	ImporterName         string   `json:"importer_name,omitempty"`
	ManufacturerName     string   `json:"manufacturer_name,omitempty"`
	CountryOfOrigin      string   `json:"country_of_origin,omitempty"`
	OriginalCategory     string   `json:"original_category,omitempty"`
	HasSpecialPrice      bool     `json:"has_special_price"`
	PriceDiscountPercent float64  `json:"price_discount_percent"`
}

// AddVariation appends a size to the variation list if not already present.
// Insertion order is first-seen order across source rows.
func (r *Record) AddVariation(size string) {
	for _, s := range r.ProductVariations {
		if s == size {
			return
		}
	}
	r.ProductVariations = append(r.ProductVariations, size)
}

// StockRecord is the reduced shape sent to the stock-only ingestion
// endpoint: no classifier-derived fields, just identity, stock and prices.
type StockRecord struct {
	SKU            string  `json:"sku"`
	Stock          Stock   `json:"stock"`
	Type           string  `json:"type"`
	NetRetailPrice float64 `json:"net_retail_price"`
	SalePrice      float64 `json:"sale_price"`
	InvoicePrice   float64 `json:"invoice_price"`
}
