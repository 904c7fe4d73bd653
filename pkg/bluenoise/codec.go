package bluenoise

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"

	"github.com/vram-io/dtk/pkg/coord"
	"github.com/vram-io/dtk/pkg/coord/pack"
)

// Encoded tiles are a bit stream, most significant bit first:
//
//	magic       32 bits  "BNZ1"
//	size        16 bits
//	min spacing 32 bits
//	count       32 bits
//	points      count * 2*pack.VarWidth(size) bits, sorted by (y, x)
//
// The stream is padded with zero bits to a whole byte.
const magic = 0x424E5A31

// ErrCorrupt is wrapped by every error Decode returns for malformed input.
var ErrCorrupt = errors.New("corrupt blue noise stream")

type bitWriter struct {
	w     *bufio.Writer
	acc   uint64
	nbits uint
}

func (bw *bitWriter) write(val uint32, n uint) error {
	if n == 0 {
		return nil
	}
	bw.acc = bw.acc<<n | uint64(val)&(1<<n-1)
	bw.nbits += n
	for bw.nbits >= 8 {
		bw.nbits -= 8
		if err := bw.w.WriteByte(byte(bw.acc >> bw.nbits)); err != nil {
			return err
		}
	}
	return nil
}

func (bw *bitWriter) flush() error {
	if bw.nbits > 0 {
		if err := bw.w.WriteByte(byte(bw.acc << (8 - bw.nbits))); err != nil {
			return err
		}
		bw.nbits = 0
	}
	return bw.w.Flush()
}

// Encode writes the tile to w.
func Encode(w io.Writer, n *Noise) error {
	bw := &bitWriter{w: bufio.NewWriter(w)}
	points := n.Points()

	header := []struct {
		val  uint32
		bits uint
	}{
		{magic, 32},
		{uint32(n.size), 16},
		{uint32(n.minSpacing), 32},
		{uint32(len(points)), 32},
	}
	for _, h := range header {
		if err := bw.write(h.val, h.bits); err != nil {
			return err
		}
	}

	width := 2 * pack.VarWidth(n.size)
	for _, p := range points {
		packed, err := pack.ToU32Var(p, n.size)
		if err != nil {
			return err
		}
		if err := bw.write(packed, width); err != nil {
			return err
		}
	}
	return bw.flush()
}

// Decode reads a tile written by Encode. Every point is checked against
// the ones before it, so a stream that breaks the spacing guarantee is
// rejected rather than loaded.
func Decode(r io.Reader) (*Noise, error) {
	br := bitreader.NewReader(bufio.NewReader(r))

	m, err := br.Read32(32)
	if err != nil {
		return nil, fmt.Errorf("%w: reading magic: %s", ErrCorrupt, err)
	}
	if m != magic {
		return nil, fmt.Errorf("%w: bad magic %#x", ErrCorrupt, m)
	}
	size16, err := br.Read16(16)
	if err != nil {
		return nil, fmt.Errorf("%w: reading size: %s", ErrCorrupt, err)
	}
	spacing32, err := br.Read32(32)
	if err != nil {
		return nil, fmt.Errorf("%w: reading spacing: %s", ErrCorrupt, err)
	}
	count, err := br.Read32(32)
	if err != nil {
		return nil, fmt.Errorf("%w: reading count: %s", ErrCorrupt, err)
	}

	size := int(size16)
	spacing := int(int32(spacing32))
	if err := Validate(size, spacing); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, err)
	}
	if uint64(count) > uint64(size)*uint64(size) {
		return nil, fmt.Errorf("%w: %d points do not fit a tile of size %d", ErrCorrupt, count, size)
	}

	n := &Noise{
		size:       size,
		minSpacing: spacing,
		points:     newPointSet(size),
	}
	grid := coord.NewGrid(size)
	width := 2 * pack.VarWidth(size)

	var prev *coord.Point
	for i := uint32(0); i < count; i++ {
		var packed uint32
		if width > 0 {
			packed, err = br.Read32(width)
			if err != nil {
				return nil, fmt.Errorf("%w: reading point %d: %s", ErrCorrupt, i, err)
			}
		}
		p, err := pack.FromU32Var(packed, size)
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %s", ErrCorrupt, i, err)
		}
		if prev != nil && !prev.LessYX(p) {
			return nil, fmt.Errorf("%w: point %d (%s) out of order", ErrCorrupt, i, p)
		}
		if !pointIsValid(grid, p, spacing) {
			Logger().Warn("bluenoise: rejecting stream", "point", p.String(), "min_spacing", spacing)
			return nil, fmt.Errorf("%w: point %d (%s) closer than %d to another point", ErrCorrupt, i, p, spacing)
		}
		grid.Set(p, true)
		n.points.Add(p)
		prev = &p
	}
	return n, nil
}
