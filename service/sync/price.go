package sync

import "math"

// PriceRule controls the per-channel price derivation. The legacy feeds
// drifted apart on the invoice factor and net rounding; each channel keeps
// its negotiated values instead of a silently merged formula.
type PriceRule struct {
	InvoiceFactor float64 // k in invoice = sale / 1.2 * k
	RoundNet      bool    // round net retail to whole currency units
}

// Prices holds the three derived price fields of a product record.
type Prices struct {
	NetRetail float64
	Sale      float64
	Invoice   float64
}

// ComputePrices derives the price triple from the raw retail and special
// price. The special price wins when positive, otherwise the retail price
// is the sale price. The invoice price strips VAT (20%) and applies the
// channel factor, rounded to 3 decimals. Never fails; missing inputs are
// zero and produce zero prices.
func ComputePrices(rule PriceRule, retail, special float64) Prices {
	sale := retail
	if special > 0 {
		sale = special
	}
	net := retail
	if rule.RoundNet {
		net = math.Round(net)
	}
	return Prices{
		NetRetail: net,
		Sale:      sale,
		Invoice:   round3(sale / 1.2 * rule.InvoiceFactor),
	}
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
