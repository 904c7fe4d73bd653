package pack

import (
	"fmt"

	"github.com/vram-io/dtk/pkg/bits"
	"github.com/vram-io/dtk/pkg/coord"
)

// VarWidth returns the number of bits each axis takes when packing points
// of a tile with the given size.
func VarWidth(size int) uint {
	return uint(bits.BitLength32(uint32(size)))
}

// ToU32Var will pack a point of a size x size tile into 2*VarWidth(size)
// bits. The point is expected to already be wrapped into the tile.
//
// This function should be used when the tile size is known, for example
// when streaming many points of one tile. For a fixed layout use ToU32.
func ToU32Var(p coord.Point, size int) (uint32, error) {
	if size <= 0 || size > coord.MaxSize {
		return 0, fmt.Errorf("cannot pack point of tile size %d", size)
	}
	if p.X < 0 || p.Y < 0 || p.X >= size || p.Y >= size {
		return 0, fmt.Errorf("cannot pack point %s outside tile of size %d", p, size)
	}
	w := VarWidth(size)
	return uint32(p.Y)<<w | uint32(p.X), nil
}

// FromU32Var unpacks the u32 back into a point. It's expected that the
// point was originally packed with ToU32Var and the same size.
func FromU32Var(val uint32, size int) (coord.Point, error) {
	w := VarWidth(size)
	if 2*w < 32 && val>>(2*w) != 0 {
		return coord.Point{}, fmt.Errorf("value %d has bits set above %d", val, 2*w)
	}
	mask := bits.Mask32(int(w))
	p := coord.Point{X: int(val & mask), Y: int((val >> w) & mask)}
	if p.X >= size || p.Y >= size {
		return coord.Point{}, fmt.Errorf("value %d unpacks to %s outside tile of size %d", val, p, size)
	}
	return p, nil
}
