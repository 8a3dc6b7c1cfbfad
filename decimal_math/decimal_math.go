package decimal_math

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

func Pow10(n int) decimal.Decimal {
	return decimal.NewFromFloat(math.Pow10(n))
}

// Sqrt computes the square root of x at the given big.Float precision.
// Panics on negative input, matching the on-chain domain where sqrt prices
// are always non-negative.
func Sqrt(x decimal.Decimal, prec uint) decimal.Decimal {
	if x.Sign() < 0 {
		panic("sqrt on negative decimal")
	}

	out, _ := decimal.NewFromString(
		new(big.Float).SetPrec(prec).Sqrt(
			x.BigFloat().SetPrec(prec),
		).Text('f', -1),
	)
	return out
}
