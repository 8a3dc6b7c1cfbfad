package math

import (
	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetInitializableTickIndex snaps a tick index onto the pool's spacing grid.
// If the tick index is already initializable it is returned as is.
//
// TickRoundingUp rounds up only when the tick sits above a grid point,
// TickRoundingDown always keeps the truncated grid point, and
// TickRoundingNearest rounds up from the integer half of the spacing
// (ties go up for odd spacings; negative remainders never round up).
//
// Callers must guarantee tickSpacing > 0.
func GetInitializableTickIndex(tickIndex int32, tickSpacing uint16, rounding shared.TickRounding) int32 {
	spacing := int32(tickSpacing)
	remainder := tickIndex % spacing
	result := tickIndex / spacing * spacing

	var shouldRoundUp bool
	switch rounding {
	case shared.TickRoundingUp:
		shouldRoundUp = remainder > 0
	case shared.TickRoundingDown:
		shouldRoundUp = false
	default:
		shouldRoundUp = remainder >= spacing/2
	}

	if shouldRoundUp {
		return result + spacing
	}
	return result
}

// IsTickInitializable reports whether the tick index is divisible by the
// tick spacing. Callers must guarantee tickSpacing > 0.
func IsTickInitializable(tickIndex int32, tickSpacing uint16) bool {
	return tickIndex%int32(tickSpacing) == 0
}

// GetTickArrayStartTickIndex returns the start tick of the tick array that
// holds tickIndex. Tick arrays cover TickArraySize*tickSpacing ticks and
// their start indexes are floor-aligned, also for negative ticks.
func GetTickArrayStartTickIndex(tickIndex int32, tickSpacing uint16) int32 {
	ticksPerArray := int32(tickSpacing) * shared.TickArraySize
	start := tickIndex / ticksPerArray
	if tickIndex < 0 && tickIndex%ticksPerArray != 0 {
		start--
	}
	return start * ticksPerArray
}
