package whirlpool

import (
	"encoding/binary"
	"strconv"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/orca-go/whirlpool/math"
)

func DeriveWhirlpoolAddress(config, tokenAMint, tokenBMint solanago.PublicKey, tickSpacing uint16) solanago.PublicKey {
	spacingBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(spacingBytes, tickSpacing)
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		[]byte("whirlpool"),
		config.Bytes(),
		tokenAMint.Bytes(),
		tokenBMint.Bytes(),
		spacingBytes,
	}, WhirlpoolProgramID)
	return pub
}

// DeriveTickArrayAddress derives the tick array account that holds
// tickIndex. The program seeds tick arrays with the decimal string of the
// array's start tick.
func DeriveTickArrayAddress(pool solanago.PublicKey, tickIndex int32, tickSpacing uint16) solanago.PublicKey {
	startTick := math.GetTickArrayStartTickIndex(tickIndex, tickSpacing)
	pub, _, _ := solanago.FindProgramAddress([][]byte{
		[]byte("tick_array"),
		pool.Bytes(),
		[]byte(strconv.FormatInt(int64(startTick), 10)),
	}, WhirlpoolProgramID)
	return pub
}

func DeriveOracleAddress(pool solanago.PublicKey) solanago.PublicKey {
	pub, _, _ := solanago.FindProgramAddress([][]byte{[]byte("oracle"), pool.Bytes()}, WhirlpoolProgramID)
	return pub
}
