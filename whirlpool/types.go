package whirlpool

import (
	"math/big"

	solanago "github.com/gagliardetto/solana-go"

	whirlpoolgen "github.com/krazyTry/orca-go/gen/whirlpool"
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

type PoolState = whirlpoolgen.Whirlpool

type AccountWithPool struct {
	PublicKey solanago.PublicKey
	Account   *PoolState
}

// Enums re-exported for callers that only import this package.
type Rounding = shared.Rounding

const (
	RoundingUp   = shared.RoundingUp
	RoundingDown = shared.RoundingDown
)

type TickRounding = shared.TickRounding

const (
	TickRoundingNearest = shared.TickRoundingNearest
	TickRoundingUp      = shared.TickRoundingUp
	TickRoundingDown    = shared.TickRoundingDown
)

// LiquidityQuoteParams describes a liquidity change against a position
// whose bounds are the given Q64.64 sqrt prices. The current pool sqrt
// price is read from PoolState.
type LiquidityQuoteParams struct {
	PoolState      *PoolState
	LiquidityDelta *big.Int
	LowerSqrtPrice *big.Int
	UpperSqrtPrice *big.Int
	SlippageBps    uint64
}

// LiquidityQuote is the token cost (deposit) or proceeds (withdraw) of a
// liquidity change, with the slippage-adjusted bound the caller should use
// for its token approval or minimum-out check.
type LiquidityQuote struct {
	TokenAAmount uint64
	TokenBAmount uint64

	// TokenALimit/TokenBLimit are the max-in amounts for a deposit quote
	// and the min-out amounts for a withdraw quote.
	TokenALimit uint64
	TokenBLimit uint64
}
