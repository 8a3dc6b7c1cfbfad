package helpers

import (
	"context"
	"fmt"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

// NativeMint is the wrapped SOL mint.
var NativeMint = solanago.WrappedSol

// GetTokenDecimals reads the decimals of a mint account. Works for both
// SPL Token and Token-2022 mints since the base layout is shared.
func GetTokenDecimals(ctx context.Context, client *rpc.Client, mint solanago.PublicKey) (uint8, error) {
	acc, err := client.GetAccountInfo(ctx, mint)
	if err != nil {
		return 0, err
	}
	if acc == nil || acc.Value == nil {
		return 0, fmt.Errorf("mint %s not found", mint.String())
	}
	dec := bin.NewBinDecoder(acc.Value.Data.GetBinary())
	mintAcc := new(token.Mint)
	if err := mintAcc.UnmarshalWithDecoder(dec); err != nil {
		return 0, err
	}
	return mintAcc.Decimals, nil
}
