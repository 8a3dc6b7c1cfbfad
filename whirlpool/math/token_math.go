package math

import (
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// Intermediates are capped at 256 bits, matching the on-chain U256 domain.
const u256BitLimit = 256

var oneBig = big.NewInt(1)

// TryGetAmountDelta computes the token A amount for a liquidity change
// between two Q64.64 sqrt prices:
//
//	Δa = L * (√P_upper − √P_lower) * 2^64 / (√P_upper * √P_lower)
//
// The sqrt prices may be passed in either order. Every intermediate step is
// checked against the 256-bit domain and fails with ArithmeticOverflow
// instead of wrapping; a result that does not fit a u64 fails with
// AmountExceedsMaxU64. Callers must supply non-zero sqrt prices.
func TryGetAmountDelta(sqrtPrice1, sqrtPrice2, liquidity *big.Int, roundUp bool) (uint64, error) {
	sqrtPriceLower, sqrtPriceUpper := orderSqrtPrices(sqrtPrice1, sqrtPrice2)
	sqrtPriceDiff := new(big.Int).Sub(sqrtPriceUpper, sqrtPriceLower)

	numerator := new(big.Int).Mul(liquidity, sqrtPriceDiff)
	if numerator.BitLen() > u256BitLimit {
		return 0, ArithmeticOverflow
	}
	numerator.Lsh(numerator, shared.ScaleOffset)
	if numerator.BitLen() > u256BitLimit {
		return 0, ArithmeticOverflow
	}

	denominator := new(big.Int).Mul(sqrtPriceLower, sqrtPriceUpper)
	if denominator.BitLen() > u256BitLimit {
		return 0, ArithmeticOverflow
	}

	quotient, remainder := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if roundUp && remainder.Sign() != 0 {
		quotient.Add(quotient, oneBig)
	}

	if !quotient.IsUint64() {
		return 0, AmountExceedsMaxU64
	}
	return quotient.Uint64(), nil
}

// TryGetAmountBDelta computes the token B amount for a liquidity change
// between two Q64.64 sqrt prices:
//
//	Δb = L * (√P_upper − √P_lower) / 2^64
//
// Same ordering, overflow and narrowing rules as TryGetAmountDelta.
func TryGetAmountBDelta(sqrtPrice1, sqrtPrice2, liquidity *big.Int, roundUp bool) (uint64, error) {
	sqrtPriceLower, sqrtPriceUpper := orderSqrtPrices(sqrtPrice1, sqrtPrice2)
	sqrtPriceDiff := new(big.Int).Sub(sqrtPriceUpper, sqrtPriceLower)

	product := new(big.Int).Mul(liquidity, sqrtPriceDiff)
	if product.BitLen() > u256BitLimit {
		return 0, ArithmeticOverflow
	}

	result := new(big.Int)
	if roundUp {
		result.Add(product, new(big.Int).Sub(shared.OneQ64, oneBig))
		result.Rsh(result, shared.ScaleOffset)
	} else {
		result.Rsh(product, shared.ScaleOffset)
	}

	if !result.IsUint64() {
		return 0, AmountExceedsMaxU64
	}
	return result.Uint64(), nil
}

func orderSqrtPrices(a, b *big.Int) (*big.Int, *big.Int) {
	if a.Cmp(b) < 0 {
		return a, b
	}
	return b, a
}
