package orca

import (
	"github.com/krazyTry/orca-go/whirlpool"
)

// NewWhirlpoolClient creates a new Whirlpool SDK client.
//
// Example:
//
// client := NewWhirlpoolClient(rpcClient, rpc.CommitmentFinalized)
//
// pool, _ := client.FetchPoolState(ctx, poolAddress)
//
// quote, _ := client.GetIncreaseLiquidityQuote(whirlpool.LiquidityQuoteParams{...})
var NewWhirlpoolClient = whirlpool.NewWhirlpool
