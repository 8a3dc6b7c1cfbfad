package shared

import (
	"math/big"
)

// Enums and numeric constants shared by the whirlpool client and math packages.
type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

// TickRounding selects how a raw tick index is snapped onto the spacing grid.
type TickRounding uint8

const (
	TickRoundingNearest TickRounding = 0
	TickRoundingUp      TickRounding = 1
	TickRoundingDown    TickRounding = 2
)

const (
	// ScaleOffset is the number of fractional bits in a Q64.64 sqrt price.
	ScaleOffset = 64

	// TickArraySize is the number of ticks held by one tick array account.
	TickArraySize = 88

	MinTickIndex int32 = -443636
	MaxTickIndex int32 = 443636
)

var (
	OneQ64  = new(big.Int).Lsh(big.NewInt(1), ScaleOffset)
	MaxU64  = new(big.Int).SetUint64(^uint64(0))
	MaxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	MinSqrtPrice    = new(big.Int).SetUint64(4295048016)
	MaxSqrtPrice, _ = new(big.Int).SetString("79226673515401279992447579055", 10)
)
