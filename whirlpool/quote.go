package whirlpool

import (
	"errors"
	"math/big"

	"github.com/krazyTry/orca-go/whirlpool/math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetIncreaseLiquidityQuote calculates the token amounts required to add
// the given liquidity to a position. Amounts round up so the deposit always
// covers the liquidity; TokenALimit/TokenBLimit add the slippage margin.
func (w *Whirlpool) GetIncreaseLiquidityQuote(params LiquidityQuoteParams) (LiquidityQuote, error) {
	amountA, amountB, err := tokenAmountsFromLiquidity(params, true)
	if err != nil {
		return LiquidityQuote{}, err
	}
	limitA, err := applySlippage(amountA, params.SlippageBps, shared.RoundingUp)
	if err != nil {
		return LiquidityQuote{}, err
	}
	limitB, err := applySlippage(amountB, params.SlippageBps, shared.RoundingUp)
	if err != nil {
		return LiquidityQuote{}, err
	}
	return LiquidityQuote{
		TokenAAmount: amountA,
		TokenBAmount: amountB,
		TokenALimit:  limitA,
		TokenBLimit:  limitB,
	}, nil
}

// GetDecreaseLiquidityQuote calculates the token amounts released by
// removing the given liquidity from a position. Amounts round down so the
// pool never pays out more than the liquidity is worth; TokenALimit and
// TokenBLimit are the slippage-adjusted minimums.
func (w *Whirlpool) GetDecreaseLiquidityQuote(params LiquidityQuoteParams) (LiquidityQuote, error) {
	amountA, amountB, err := tokenAmountsFromLiquidity(params, false)
	if err != nil {
		return LiquidityQuote{}, err
	}
	limitA, err := applySlippage(amountA, params.SlippageBps, shared.RoundingDown)
	if err != nil {
		return LiquidityQuote{}, err
	}
	limitB, err := applySlippage(amountB, params.SlippageBps, shared.RoundingDown)
	if err != nil {
		return LiquidityQuote{}, err
	}
	return LiquidityQuote{
		TokenAAmount: amountA,
		TokenBAmount: amountB,
		TokenALimit:  limitA,
		TokenBLimit:  limitB,
	}, nil
}

// tokenAmountsFromLiquidity splits a liquidity delta into token A and B
// amounts depending on where the current pool price sits relative to the
// position bounds. Token A covers [max(current, lower), upper], token B
// covers [lower, min(current, upper)].
func tokenAmountsFromLiquidity(params LiquidityQuoteParams, roundUp bool) (uint64, uint64, error) {
	if params.PoolState == nil {
		return 0, 0, errors.New("pool state is required")
	}
	if params.LiquidityDelta == nil || params.LiquidityDelta.Sign() < 0 {
		return 0, 0, errors.New("liquidity delta must be non-negative")
	}
	lower, upper := params.LowerSqrtPrice, params.UpperSqrtPrice
	if lower == nil || upper == nil || lower.Sign() <= 0 || lower.Cmp(upper) > 0 {
		return 0, 0, errors.New("invalid position sqrt price bounds")
	}
	current := math.U128ToBig(params.PoolState.SqrtPrice)

	var amountA, amountB uint64
	var err error
	switch {
	case current.Cmp(lower) <= 0:
		// Price below the range: the position is all token A.
		amountA, err = math.TryGetAmountDelta(lower, upper, params.LiquidityDelta, roundUp)
		if err != nil {
			return 0, 0, err
		}
	case current.Cmp(upper) >= 0:
		// Price above the range: the position is all token B.
		amountB, err = math.TryGetAmountBDelta(lower, upper, params.LiquidityDelta, roundUp)
		if err != nil {
			return 0, 0, err
		}
	default:
		amountA, err = math.TryGetAmountDelta(current, upper, params.LiquidityDelta, roundUp)
		if err != nil {
			return 0, 0, err
		}
		amountB, err = math.TryGetAmountBDelta(lower, current, params.LiquidityDelta, roundUp)
		if err != nil {
			return 0, 0, err
		}
	}
	return amountA, amountB, nil
}

// applySlippage widens (RoundingUp) or shrinks (RoundingDown) an amount by
// slippageBps, clamping the widened bound to max u64.
func applySlippage(amount uint64, slippageBps uint64, rounding shared.Rounding) (uint64, error) {
	if slippageBps == 0 {
		return amount, nil
	}
	if slippageBps > BasisPointMax {
		return 0, errors.New("slippage exceeds 100%")
	}
	factor := new(big.Int).SetUint64(BasisPointMax)
	if rounding == shared.RoundingUp {
		factor.Add(factor, new(big.Int).SetUint64(slippageBps))
	} else {
		factor.Sub(factor, new(big.Int).SetUint64(slippageBps))
	}
	out := math.MulDiv(new(big.Int).SetUint64(amount), factor, big.NewInt(BasisPointMax), rounding)
	if !out.IsUint64() {
		return ^uint64(0), nil
	}
	return out.Uint64(), nil
}
