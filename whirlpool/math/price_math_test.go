package math

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

func TestPriceToSqrtPriceQ64(t *testing.T) {
	sqrtPrice := PriceToSqrtPriceQ64(decimal.NewFromInt(1), 9, 9)
	if sqrtPrice.Cmp(shared.OneQ64) != 0 {
		t.Fatalf("sqrt price of 1.0 = %s, want %s", sqrtPrice, shared.OneQ64)
	}

	sqrtPrice = PriceToSqrtPriceQ64(decimal.NewFromInt(100), 6, 6)
	if sqrtPrice.Cmp(q64(10)) != 0 {
		t.Fatalf("sqrt price of 100 = %s, want %s", sqrtPrice, q64(10))
	}
}

func TestSqrtPriceQ64ToPrice(t *testing.T) {
	price := SqrtPriceQ64ToPrice(q64(10), 6, 6)
	if !price.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("price = %s, want 100", price)
	}

	// decimal adjustment: 9-decimal token A vs 6-decimal token B
	price = SqrtPriceQ64ToPrice(q64(10), 9, 6)
	if !price.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("price = %s, want 100000", price)
	}
}

func TestPriceSqrtPriceRoundTrip(t *testing.T) {
	for _, raw := range []string{"0.000001", "0.5", "1", "150.25", "98765.4321"} {
		price := decimal.RequireFromString(raw)
		back := SqrtPriceQ64ToPrice(PriceToSqrtPriceQ64(price, 9, 6), 9, 6)
		diff := back.Sub(price).Abs()
		if diff.GreaterThan(price.Mul(decimal.RequireFromString("0.000000001"))) {
			t.Fatalf("round trip of %s drifted to %s", raw, back)
		}
	}
}
