package sync

import "testing"

func TestComputePrices(t *testing.T) {
	tests := []struct {
		name    string
		rule    PriceRule
		retail  float64
		special float64
		want    Prices
	}{
		{
			name:    "special price wins",
			rule:    PriceRule{InvoiceFactor: 0.8},
			retail:  100,
			special: 80,
			want:    Prices{NetRetail: 100, Sale: 80, Invoice: 53.333},
		},
		{
			name:   "no special price",
			rule:   PriceRule{InvoiceFactor: 0.8},
			retail: 100,
			want:   Prices{NetRetail: 100, Sale: 100, Invoice: 66.667},
		},
		{
			name:    "shop factor",
			rule:    PriceRule{InvoiceFactor: 0.82},
			retail:  100,
			special: 0,
			want:    Prices{NetRetail: 100, Sale: 100, Invoice: 68.333},
		},
		{
			name:    "rounded net",
			rule:    PriceRule{InvoiceFactor: 0.8, RoundNet: true},
			retail:  99.6,
			special: 0,
			want:    Prices{NetRetail: 100, Sale: 99.6, Invoice: 66.4},
		},
		{
			name: "zero input",
			rule: PriceRule{InvoiceFactor: 0.8},
			want: Prices{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePrices(tt.rule, tt.retail, tt.special)
			if got != tt.want {
				t.Errorf("ComputePrices(%v, %v, %v) = %+v, want %+v",
					tt.rule, tt.retail, tt.special, got, tt.want)
			}
		})
	}
}

func TestChannelPriceRules(t *testing.T) {
	if f := ChannelExcel.PriceRule().InvoiceFactor; f != 0.8 {
		t.Errorf("excel factor = %v", f)
	}
	if f := ChannelWoo.PriceRule().InvoiceFactor; f != 0.82 {
		t.Errorf("woo factor = %v", f)
	}
	if r := ChannelStock.PriceRule(); r.InvoiceFactor != 0.8 || !r.RoundNet {
		t.Errorf("stock rule = %+v", r)
	}
}
