package math

import (
	"math/big"

	"github.com/shopspring/decimal"

	decimalmath "github.com/krazyTry/orca-go/decimal_math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// SqrtPriceQ64ToPrice converts a Q64.64 sqrt price into a decimal token
// price, adjusted for the mint decimals of token A and token B.
// price = sqrtPrice^2 * 10^(decimalsA - decimalsB) / 2^128
func SqrtPriceQ64ToPrice(sqrtPrice *big.Int, decimalsA, decimalsB uint8) decimal.Decimal {
	if sqrtPrice == nil {
		return decimal.Zero
	}
	price := decimal.NewFromBigInt(sqrtPrice, 0)
	price = price.Mul(price)

	expDiff := int(decimalsA) - int(decimalsB)
	if expDiff != 0 {
		price = price.Mul(decimalmath.Pow10(expDiff))
	}

	denominator := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), shared.ScaleOffset*2), 0)
	return price.Div(denominator)
}

// PriceToSqrtPriceQ64 converts a decimal token price into a Q64.64 sqrt
// price, flooring to the grid of representable sqrt prices.
// sqrtPrice = sqrt(price / 10^(decimalsA - decimalsB)) * 2^64
func PriceToSqrtPriceQ64(price decimal.Decimal, decimalsA, decimalsB uint8) *big.Int {
	expDiff := int(decimalsA) - int(decimalsB)
	adjusted := price
	if expDiff != 0 {
		adjusted = adjusted.Div(decimalmath.Pow10(expDiff))
	}
	sqrt := decimalmath.Sqrt(adjusted, 200)
	return sqrt.Mul(decimal.NewFromBigInt(shared.OneQ64, 0)).Floor().BigInt()
}
