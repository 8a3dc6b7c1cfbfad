package whirlpool

import (
	"github.com/shopspring/decimal"

	"github.com/krazyTry/orca-go/whirlpool/math"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetInitializableTickIndex snaps a tick index onto the pool's spacing grid.
func (w *Whirlpool) GetInitializableTickIndex(pool *PoolState, tickIndex int32, rounding shared.TickRounding) int32 {
	return math.GetInitializableTickIndex(tickIndex, pool.TickSpacing, rounding)
}

// IsTickInitializable reports whether a tick is on the pool's spacing grid.
func (w *Whirlpool) IsTickInitializable(pool *PoolState, tickIndex int32) bool {
	return math.IsTickInitializable(tickIndex, pool.TickSpacing)
}

// GetPoolPrice returns the pool's current price as token B per token A,
// adjusted for mint decimals.
func (w *Whirlpool) GetPoolPrice(pool *PoolState, decimalsA, decimalsB uint8) decimal.Decimal {
	return math.SqrtPriceQ64ToPrice(math.U128ToBig(pool.SqrtPrice), decimalsA, decimalsB)
}
