package math

import (
	"testing"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

func TestGetInitializableTickIndex(t *testing.T) {
	cases := []struct {
		tickIndex   int32
		tickSpacing uint16
		rounding    shared.TickRounding
		want        int32
	}{
		{23, 10, shared.TickRoundingNearest, 20},
		{25, 10, shared.TickRoundingNearest, 30}, // midpoint rounds up
		{27, 10, shared.TickRoundingNearest, 30},
		{23, 10, shared.TickRoundingUp, 30},
		{23, 10, shared.TickRoundingDown, 20},
		{-23, 10, shared.TickRoundingUp, -20},
		// truncating division: the base of a negative tick is toward zero
		{-23, 10, shared.TickRoundingDown, -20},
		{-23, 10, shared.TickRoundingNearest, -20},
		{-25, 10, shared.TickRoundingNearest, -20}, // negative remainder never rounds up
		{7, 5, shared.TickRoundingNearest, 10},     // odd spacing biases ties up
		{30, 10, shared.TickRoundingNearest, 30},
		{30, 10, shared.TickRoundingUp, 30},
		{30, 10, shared.TickRoundingDown, 30},
		{0, 64, shared.TickRoundingNearest, 0},
		{-443636, 64, shared.TickRoundingDown, -443584},
	}
	for _, c := range cases {
		got := GetInitializableTickIndex(c.tickIndex, c.tickSpacing, c.rounding)
		if got != c.want {
			t.Fatalf("GetInitializableTickIndex(%d, %d, %d) = %d, want %d", c.tickIndex, c.tickSpacing, c.rounding, got, c.want)
		}
	}
}

func TestGetInitializableTickIndexBounds(t *testing.T) {
	spacings := []uint16{2, 8, 10, 64, 128}
	for _, spacing := range spacings {
		for tick := int32(-300); tick <= 300; tick++ {
			down := GetInitializableTickIndex(tick, spacing, shared.TickRoundingDown)
			up := GetInitializableTickIndex(tick, spacing, shared.TickRoundingUp)
			if IsTickInitializable(tick, spacing) {
				if down != tick || up != tick {
					t.Fatalf("aligned tick %d spacing %d: down=%d up=%d", tick, spacing, down, up)
				}
				continue
			}
			if tick > 0 {
				if !(down <= tick && tick <= up) {
					t.Fatalf("tick %d spacing %d not bracketed: down=%d up=%d", tick, spacing, down, up)
				}
				if up-down != int32(spacing) {
					t.Fatalf("tick %d spacing %d: down=%d up=%d not one step apart", tick, spacing, down, up)
				}
			} else {
				// negative remainders never trigger the round-up branch,
				// so both modes return the toward-zero base
				if down != up || down < tick {
					t.Fatalf("negative tick %d spacing %d: down=%d up=%d", tick, spacing, down, up)
				}
			}
		}
	}
}

func TestGetInitializableTickIndexIdempotent(t *testing.T) {
	roundings := []shared.TickRounding{shared.TickRoundingNearest, shared.TickRoundingUp, shared.TickRoundingDown}
	for _, rounding := range roundings {
		for tick := int32(-200); tick <= 200; tick += 7 {
			once := GetInitializableTickIndex(tick, 8, rounding)
			twice := GetInitializableTickIndex(once, 8, rounding)
			if once != twice {
				t.Fatalf("rounding %d tick %d: first %d then %d", rounding, tick, once, twice)
			}
		}
	}
}

func TestIsTickInitializable(t *testing.T) {
	if !IsTickInitializable(30, 10) {
		t.Fatal("tick 30 spacing 10 should be initializable")
	}
	if IsTickInitializable(31, 10) {
		t.Fatal("tick 31 spacing 10 should not be initializable")
	}
	if !IsTickInitializable(-128, 64) {
		t.Fatal("tick -128 spacing 64 should be initializable")
	}
	if IsTickInitializable(-100, 64) {
		t.Fatal("tick -100 spacing 64 should not be initializable")
	}

	// Initializable exactly when nearest rounding is a fixpoint.
	for tick := int32(-300); tick <= 300; tick++ {
		fixed := GetInitializableTickIndex(tick, 10, shared.TickRoundingNearest) == tick
		if IsTickInitializable(tick, 10) != fixed {
			t.Fatalf("tick %d: initializable=%v, nearest fixpoint=%v", tick, IsTickInitializable(tick, 10), fixed)
		}
	}
}

func TestGetTickArrayStartTickIndex(t *testing.T) {
	cases := []struct {
		tickIndex   int32
		tickSpacing uint16
		want        int32
	}{
		{0, 64, 0},
		{100, 64, 0},
		{5631, 64, 0},
		{5632, 64, 5632},
		{-1, 64, -5632},
		{-5632, 64, -5632},
		{-5633, 64, -11264},
		{100, 1, 88},
	}
	for _, c := range cases {
		got := GetTickArrayStartTickIndex(c.tickIndex, c.tickSpacing)
		if got != c.want {
			t.Fatalf("GetTickArrayStartTickIndex(%d, %d) = %d, want %d", c.tickIndex, c.tickSpacing, got, c.want)
		}
	}
}
