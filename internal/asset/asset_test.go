package asset

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestUnitsRoundTrip(t *testing.T) {
	btc := Asset{ID: "8LQW8f7P5d5PZM7GtZEBgaqRPGSzS3DfPuiXrURJ4AJS", Name: "BTC", Decimals: 8}

	if got := btc.FromUnits(12345678).String(); got != "0.12345678" {
		t.Fatalf("FromUnits(12345678) = %s, want 0.12345678", got)
	}
	if got := btc.ToUnits(decimal.RequireFromString("0.12345678")); got != 12345678 {
		t.Fatalf("ToUnits(0.12345678) = %d, want 12345678", got)
	}
}

func TestToUnitsTruncates(t *testing.T) {
	waves := Waves()

	tests := []struct {
		in   string
		want int64
	}{
		{in: "0.123456789", want: 12345678},
		{in: "0.000000019", want: 1},
		{in: "1.999999999", want: 199999999},
		{in: "0", want: 0},
	}
	for _, tt := range tests {
		if got := waves.ToUnits(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Fatalf("ToUnits(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPairString(t *testing.T) {
	p := Pair{Amount: Waves(), Price: Asset{Name: "BTC", Decimals: 8}}
	if got := p.String(); got != "WAVES/BTC" {
		t.Fatalf("Pair.String() = %q, want WAVES/BTC", got)
	}
}
