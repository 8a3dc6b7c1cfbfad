package whirlpool

import (
	"context"
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	whirlpoolgen "github.com/krazyTry/orca-go/gen/whirlpool"
)

// Whirlpool SDK class to interact with Orca Whirlpool pools.
type Whirlpool struct {
	Client     *rpc.Client
	Commitment rpc.CommitmentType
}

func NewWhirlpool(client *rpc.Client, commitment rpc.CommitmentType) *Whirlpool {
	return &Whirlpool{
		Client:     client,
		Commitment: commitment,
	}
}

// IsPoolExist checks whether a pool account exists.
func (w *Whirlpool) IsPoolExist(ctx context.Context, pool solanago.PublicKey) (bool, error) {
	acc, err := w.Client.GetAccountInfoWithOpts(ctx, pool, nil)
	if err != nil {
		return false, err
	}
	return acc != nil && acc.Value != nil, nil
}

// FetchPoolState fetches and decodes the Whirlpool account of a pool.
func (w *Whirlpool) FetchPoolState(ctx context.Context, pool solanago.PublicKey) (*PoolState, error) {
	acc, err := w.Client.GetAccountInfoWithOpts(ctx, pool, &rpc.GetAccountInfoOpts{Commitment: w.Commitment})
	if err != nil || acc == nil || acc.Value == nil {
		return nil, fmt.Errorf("pool account %s not found", pool.String())
	}
	parsed, err := whirlpoolgen.ParseAnyAccount(acc.Value.Data.GetBinary())
	if err != nil {
		return nil, err
	}
	pl, ok := parsed.(*whirlpoolgen.Whirlpool)
	if !ok {
		return nil, errors.New("invalid pool account")
	}
	return pl, nil
}

// FetchPoolStatesByTokenAMint lists pools whose token A is the given mint.
func (w *Whirlpool) FetchPoolStatesByTokenAMint(ctx context.Context, tokenAMint solanago.PublicKey) ([]AccountWithPool, error) {
	filters := []rpc.RPCFilter{{
		Memcmp: &rpc.RPCFilterMemcmp{Offset: tokenMintAOffset, Bytes: solanago.Base58(tokenAMint.Bytes())},
	}}
	accs, err := w.Client.GetProgramAccountsWithOpts(ctx, WhirlpoolProgramID, &rpc.GetProgramAccountsOpts{Commitment: w.Commitment, Filters: filters})
	if err != nil {
		return nil, err
	}
	out := []AccountWithPool{}
	for _, acc := range accs {
		parsed, err := whirlpoolgen.ParseAnyAccount(acc.Account.Data.GetBinary())
		if err != nil {
			continue
		}
		if pl, ok := parsed.(*whirlpoolgen.Whirlpool); ok {
			out = append(out, AccountWithPool{PublicKey: acc.Pubkey, Account: pl})
		}
	}
	return out, nil
}
