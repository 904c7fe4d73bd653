// Package bits holds the small amount of bit arithmetic shared by the
// coordinate packing code.
package bits

import (
	mbits "math/bits"
)

// BitLength32 returns the number of bits needed to hold every value in
// [0, maxValue). Zero and one both need no bits.
func BitLength32(maxValue uint32) int {
	if maxValue == 0 {
		return 0
	}
	return 32 - mbits.LeadingZeros32(maxValue-1)
}

// BitLength64 is the 64-bit form of BitLength32.
func BitLength64(maxValue uint64) int {
	if maxValue == 0 {
		return 0
	}
	return 64 - mbits.LeadingZeros64(maxValue-1)
}

// Mask32 returns a mask with the low bitLength bits set. bitLength is
// clamped to [0, 32].
func Mask32(bitLength int) uint32 {
	if bitLength <= 0 {
		return 0
	}
	if bitLength >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << uint(bitLength)) - 1
}

// Mask64 returns a mask with the low bitLength bits set. bitLength is
// clamped to [0, 64].
func Mask64(bitLength int) uint64 {
	if bitLength <= 0 {
		return 0
	}
	if bitLength >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bitLength)) - 1
}

// SplitHigh returns the upper 32 bits of v. Use Combine to rebuild v.
func SplitHigh(v int64) int32 {
	return int32(v >> 32)
}

// SplitLow returns the lower 32 bits of v. Use Combine to rebuild v.
func SplitLow(v int64) int32 {
	return int32(v)
}

// Combine reverses SplitHigh and SplitLow.
func Combine(high, low int32) int64 {
	return int64(high)<<32 | int64(uint32(low))
}
