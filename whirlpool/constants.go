package whirlpool

import (
	whirlpoolgen "github.com/krazyTry/orca-go/gen/whirlpool"
)

const (
	BasisPointMax = 10_000

	// Borsh offset of TokenMintA inside the Whirlpool account:
	// 8 discriminator + 32 config + 1 bump + 2 tick spacing + 2 seed +
	// 2 fee rate + 2 protocol fee rate + 16 liquidity + 16 sqrt price +
	// 4 current tick + 8 + 8 protocol fees owed.
	tokenMintAOffset = 101
)

var WhirlpoolProgramID = whirlpoolgen.ProgramID
