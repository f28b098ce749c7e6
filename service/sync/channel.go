package sync

// Channel identifies a sync source/payload variant. The classifier tables,
// price formula and payload shape all key off the channel.
type Channel string

const (
	// ChannelExcel is the full product sync from a spreadsheet export.
	ChannelExcel Channel = "excel"
	// ChannelWoo is the full product sync from the WooCommerce API.
	ChannelWoo Channel = "woo"
	// ChannelStock is the stock-only sync (sku, stock and prices only).
	ChannelStock Channel = "stock"
)

var priceRules = map[Channel]PriceRule{
	ChannelExcel: {InvoiceFactor: 0.8},
	ChannelWoo:   {InvoiceFactor: 0.82},
	ChannelStock: {InvoiceFactor: 0.8, RoundNet: true},
}

var variants = map[Channel]*Variant{
	ChannelExcel: excelVariant,
	ChannelWoo:   wooVariant,
	ChannelStock: excelVariant,
}

// PriceRule returns the channel's price formula parameters.
func (c Channel) PriceRule() PriceRule {
	if r, ok := priceRules[c]; ok {
		return r
	}
	return priceRules[ChannelExcel]
}

// Variant returns the channel's classifier tables.
func (c Channel) Variant() *Variant {
	if v, ok := variants[c]; ok {
		return v
	}
	return excelVariant
}

// ArchivePrefix returns the payload filename prefix used by the archive
// collaborator. The prefixes match the historical files so stock updates
// can locate older product payloads.
func (c Channel) ArchivePrefix() string {
	switch c {
	case ChannelWoo:
		return "wc_to_remiks"
	case ChannelStock:
		return "excel_stock"
	default:
		return "excel_to_remiks"
	}
}
