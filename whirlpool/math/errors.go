package math

import "fmt"

// ErrorCode mirrors the on-chain program error codes for math failures,
// so SDK callers can map a failed quote back to the program error.
type ErrorCode uint16

const (
	ArithmeticOverflow  ErrorCode = 9003
	AmountExceedsMaxU64 ErrorCode = 9004
)

func (e ErrorCode) Error() string {
	switch e {
	case ArithmeticOverflow:
		return "math overflow: intermediate value exceeds 256 bits"
	case AmountExceedsMaxU64:
		return "amount exceeds max u64"
	default:
		return fmt.Sprintf("math error code %d", uint16(e))
	}
}
