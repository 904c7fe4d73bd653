package pack

import (
	"fmt"

	"github.com/vram-io/dtk/pkg/coord"
)

// ToU32 will pack a point into a u32 as (y<<16)|x. Coordinates outside
// [0, 65536) result in an error.
func ToU32(p coord.Point) (uint32, error) {
	if p.X < 0 || p.Y < 0 || p.X > 0xFFFF || p.Y > 0xFFFF {
		return 0, fmt.Errorf("cannot pack point into u32, %s outside [0, 65536)", p)
	}
	return uint32(p.Y)<<16 | uint32(p.X), nil
}

// FromU32 will take a u32 and return a point from that representation.
// It's expected that the u32 was created from a call to ToU32.
func FromU32(val uint32) coord.Point {
	return coord.Point{
		X: int(val & 0xFFFF),
		Y: int(val >> 16),
	}
}
