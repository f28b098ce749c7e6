package sync

import (
	"strings"

	"remiks.GO/model/product"
)

// warehouseAliases normalizes spreadsheet warehouse labels to the codes
// the platform expects.
var warehouseAliases = map[string]string{
	"Bambini doo":               "01-GLAVNI MAGACIN",
	"GLAVNI MAGACIN":            "01-GLAVNI MAGACIN",
	"MAGACIN 1":                 "01-GLAVNI MAGACIN",
	"MAGACIN 2":                 "02-SPOREDNI MAGACIN",
	"MAGACIN 3":                 "03-OUTLET MAGACIN",
	"Bambini-10-GLAVNI MAGACIN": "Bambini-10-GLAVNI MAGACIN",
}

// StockEntry is one raw (sku, size, warehouse, quantity) tuple.
type StockEntry struct {
	SKU       string
	Size      string
	Warehouse string
	Qty       int
}

// GroupOptions configures stock grouping.
type GroupOptions struct {
	// DefaultWarehouse is used when a row has no warehouse field.
	DefaultWarehouse string
	// NormalizeNames maps labels through the alias table.
	NormalizeNames bool
	// UnknownWarehouse replaces labels missing from the alias table when
	// NormalizeNames is on.
	UnknownWarehouse string
}

// NormalizeWarehouse resolves a raw warehouse label per the options.
func NormalizeWarehouse(raw string, opts GroupOptions) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = opts.DefaultWarehouse
	}
	if !opts.NormalizeNames {
		return name
	}
	if mapped, ok := warehouseAliases[name]; ok {
		return mapped
	}
	if opts.UnknownWarehouse != "" {
		return opts.UnknownWarehouse
	}
	return name
}

// StockEntriesFromRows extracts the raw stock tuples from source rows.
// Rows without a SKU are skipped; a blank size is kept as an empty size
// key so sizeless items still reach the payload. Quantity parse failures
// become 0.
func StockEntriesFromRows(rows []Row, opts GroupOptions) []StockEntry {
	entries := make([]StockEntry, 0, len(rows))
	for _, row := range rows {
		sku := row.GetString("SKU", "")
		if sku == "" {
			continue
		}
		entries = append(entries, StockEntry{
			SKU:       sku,
			Size:      row.GetString("SIZE", ""),
			Warehouse: NormalizeWarehouse(row.GetString("WAREHOUSE", ""), opts),
			Qty:       row.GetInt("QTY", 0),
		})
	}
	return entries
}

// stockGroupOptions matches the warehouse spreadsheet conventions: rows
// without a warehouse belong to the main depot, labels go through the
// alias table, and anything unrecognized lands on the platform's default
// warehouse code.
var stockGroupOptions = GroupOptions{
	DefaultWarehouse: "Bambini doo",
	NormalizeNames:   true,
	UnknownWarehouse: "Bambini-10-GLAVNI MAGACIN",
}

// BuildStockRecords turns raw stock rows into stock-only records. Prices
// and type come from the first row of each SKU; stock is grouped across
// all rows. Output order is first-appearance order.
func BuildStockRecords(rows []Row) []*product.StockRecord {
	grouped, order := GroupStock(StockEntriesFromRows(rows, stockGroupOptions))
	rule := ChannelStock.PriceRule()

	firstRow := make(map[string]Row)
	for _, row := range rows {
		sku := row.GetString("SKU", "")
		if sku == "" {
			continue
		}
		if _, ok := firstRow[sku]; !ok {
			firstRow[sku] = row
		}
	}

	records := make([]*product.StockRecord, 0, len(order))
	for _, sku := range order {
		row := firstRow[sku]
		retail := row.GetFloat("RETAIL_PRICE", 0)
		special := row.GetFloat("SPECIAL_PRICE", retail)
		prices := ComputePrices(rule, retail, special)
		records = append(records, &product.StockRecord{
			SKU:            sku,
			Stock:          grouped[sku],
			Type:           normalizeType(row.GetString("TYPE", "simple")),
			NetRetailPrice: prices.NetRetail,
			SalePrice:      prices.Sale,
			InvoicePrice:   prices.Invoice,
		})
	}
	return records
}

// MergeStockRows builds stock-only records for SKUs already known from an
// earlier product payload: quantities come from the new rows, prices and
// type from the archived record. Warehouse labels are taken verbatim.
// SKUs present in the rows but absent from the archive are returned
// separately so the caller can report them.
func MergeStockRows(rows []Row, prior []product.Record, defaultWarehouse string) ([]*product.StockRecord, []string) {
	opts := GroupOptions{DefaultWarehouse: defaultWarehouse}
	grouped, order := GroupStock(StockEntriesFromRows(rows, opts))

	known := make(map[string]*product.Record, len(prior))
	for i := range prior {
		known[prior[i].SKU] = &prior[i]
	}

	var records []*product.StockRecord
	var missing []string
	for _, sku := range order {
		rec, ok := known[sku]
		if !ok {
			missing = append(missing, sku)
			continue
		}
		records = append(records, &product.StockRecord{
			SKU:            sku,
			Stock:          grouped[sku],
			Type:           rec.Type,
			NetRetailPrice: rec.NetRetailPrice,
			SalePrice:      rec.SalePrice,
			InvoicePrice:   rec.InvoicePrice,
		})
	}
	return records, missing
}

// GroupStock aggregates entries into sku → size → warehouse → quantity.
// Entries are applied in source order; a repeated (sku, size, warehouse)
// triple overwrites the earlier quantity (last write wins, no summing).
// The returned slice lists SKUs in first-appearance order.
func GroupStock(entries []StockEntry) (map[string]product.Stock, []string) {
	grouped := make(map[string]product.Stock)
	var order []string
	for _, e := range entries {
		stock, ok := grouped[e.SKU]
		if !ok {
			stock = make(product.Stock)
			grouped[e.SKU] = stock
			order = append(order, e.SKU)
		}
		stock.Set(e.Size, e.Warehouse, e.Qty)
	}
	return grouped, order
}
