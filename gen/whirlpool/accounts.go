package whirlpool

import (
	"bytes"
	"fmt"

	ag_binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

// WhirlpoolDiscriminator prefixes every Whirlpool pool account.
var WhirlpoolDiscriminator = [8]byte{63, 149, 209, 12, 225, 128, 99, 9}

// Whirlpool is the on-chain pool account of the Orca Whirlpool program.
// Field order matches the borsh layout exactly.
type Whirlpool struct {
	WhirlpoolsConfig solanago.PublicKey
	WhirlpoolBump    [1]uint8
	TickSpacing      uint16
	TickSpacingSeed  [2]uint8
	FeeRate          uint16
	ProtocolFeeRate  uint16

	Liquidity        ag_binary.Uint128
	SqrtPrice        ag_binary.Uint128
	TickCurrentIndex int32

	ProtocolFeeOwedA uint64
	ProtocolFeeOwedB uint64

	TokenMintA       solanago.PublicKey
	TokenVaultA      solanago.PublicKey
	FeeGrowthGlobalA ag_binary.Uint128

	TokenMintB       solanago.PublicKey
	TokenVaultB      solanago.PublicKey
	FeeGrowthGlobalB ag_binary.Uint128

	RewardLastUpdatedTimestamp uint64
	RewardInfos                [3]WhirlpoolRewardInfo
}

// WhirlpoolRewardInfo is one of the three reward slots of a pool.
type WhirlpoolRewardInfo struct {
	Mint                  solanago.PublicKey
	Vault                 solanago.PublicKey
	Authority             solanago.PublicKey
	EmissionsPerSecondX64 ag_binary.Uint128
	GrowthGlobalX64       ag_binary.Uint128
}

func (obj *Whirlpool) UnmarshalWithDecoder(decoder *ag_binary.Decoder) error {
	discriminator, err := decoder.ReadTypeID()
	if err != nil {
		return err
	}
	if !discriminator.Equal(WhirlpoolDiscriminator[:]) {
		return fmt.Errorf(
			"wrong discriminator: wanted %s, got %s",
			"[63 149 209 12 225 128 99 9]",
			fmt.Sprint(discriminator[:]))
	}
	err = decoder.Decode(&obj.WhirlpoolsConfig)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.WhirlpoolBump)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.TickSpacing)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.TickSpacingSeed)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.FeeRate)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.ProtocolFeeRate)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.Liquidity)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.SqrtPrice)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.TickCurrentIndex)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.ProtocolFeeOwedA)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.ProtocolFeeOwedB)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.TokenMintA)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.TokenVaultA)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.FeeGrowthGlobalA)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.TokenMintB)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.TokenVaultB)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.FeeGrowthGlobalB)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.RewardLastUpdatedTimestamp)
	if err != nil {
		return err
	}
	err = decoder.Decode(&obj.RewardInfos)
	if err != nil {
		return err
	}
	return nil
}

// ParseAnyAccount decodes a Whirlpool program account from its raw data,
// dispatching on the 8-byte anchor discriminator.
func ParseAnyAccount(data []byte) (any, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("account data too short: %d bytes", len(data))
	}
	switch {
	case bytes.Equal(data[:8], WhirlpoolDiscriminator[:]):
		obj := new(Whirlpool)
		if err := obj.UnmarshalWithDecoder(ag_binary.NewBorshDecoder(data)); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unknown account discriminator: %v", data[:8])
	}
}
