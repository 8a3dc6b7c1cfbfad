package whirlpool

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

var rpcClient = rpc.New(rpc.MainNetBeta_RPC)

// VaultBalances reads the raw token amounts held by the pool vaults via
// the jsonParsed encoding.
func VaultBalances(ctx context.Context, rpcClient *rpc.Client, vaultA, vaultB solana.PublicKey) (uint64, uint64, error) {
	ctx1, cancel1 := context.WithTimeout(ctx, time.Second*5)
	defer cancel1()
	resp, err := rpcClient.GetMultipleAccountsWithOpts(ctx1, []solana.PublicKey{vaultA, vaultB}, &rpc.GetMultipleAccountsOpts{
		Encoding:   solana.EncodingJSONParsed,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return 0, 0, err
	}
	/*
		{
			"parsed": {
				"info": {
					"mint": "So11111111111111111111111111111111111111112",
					"owner": "...",
					"tokenAmount": {
						"amount": "123456789",
						"decimals": 9
					}
				},
				"type": "account"
			},
			"program": "spl-token"
		}
	*/
	amounts := make([]uint64, 0, 2)
	for _, v := range resp.Value {
		if v == nil {
			return 0, 0, fmt.Errorf("vault account missing")
		}
		amounts = append(amounts, gjson.GetBytes(v.Data.GetRawJSON(), "parsed.info.tokenAmount.amount").Uint())
	}
	if len(amounts) != 2 {
		return 0, 0, fmt.Errorf("expected 2 vault accounts, got %d", len(amounts))
	}
	return amounts[0], amounts[1], nil
}
