package bluenoise

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vram-io/dtk/pkg/coord"
)

func encode(t *testing.T, n *Noise) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, n))
	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	for _, c := range []struct {
		size, spacing int
		seed          int64
	}{
		{256, 16, 42},
		{1, 0, 0},
		{3, 1, 9},
		{600, 70, 5},
		{300, 100, 2},
	} {
		n, err := New(c.size, c.spacing, c.seed)
		require.NoError(t, err)

		decoded, err := Decode(bytes.NewReader(encode(t, n)))
		require.NoError(t, err, "size %d spacing %d", c.size, c.spacing)

		assert.Equal(t, n.Size(), decoded.Size())
		assert.Equal(t, n.MinSpacing(), decoded.MinSpacing())
		assert.Equal(t, n.Points(), decoded.Points())
	}
}

func TestCodecLength(t *testing.T) {
	n, err := New(256, 16, 42)
	require.NoError(t, err)

	// 14 header bytes, then 16 bits per point for a 256 tile
	assert.Len(t, encode(t, n), 14+2*n.Len())
}

func TestDecodeBadMagic(t *testing.T) {
	n, err := New(32, 4, 1)
	require.NoError(t, err)
	b := encode(t, n)
	b[0] = 'X'

	_, err = Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeTruncated(t *testing.T) {
	n, err := New(32, 4, 1)
	require.NoError(t, err)
	require.True(t, n.Len() > 0)
	b := encode(t, n)

	for _, cut := range []int{0, 3, 10, 14} {
		_, err = Decode(bytes.NewReader(b[:cut]))
		assert.ErrorIs(t, err, ErrCorrupt, "cut at %d", cut)
	}
}

func crafted(size, spacing int, points ...coord.Point) *Noise {
	n := &Noise{size: size, minSpacing: spacing, points: newPointSet(size)}
	for _, p := range points {
		n.points.Add(p)
	}
	return n
}

func TestDecodeRejectsCloseNeighbours(t *testing.T) {
	b := encode(t, crafted(32, 5, coord.Point{X: 0, Y: 0}, coord.Point{X: 3, Y: 1}))
	_, err := Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, ErrCorrupt)

	// neighbours across the wrapped edge count too
	b = encode(t, crafted(32, 5, coord.Point{X: 1, Y: 0}, coord.Point{X: 30, Y: 0}))
	_, err = Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, ErrCorrupt)

	b = encode(t, crafted(32, 5, coord.Point{X: 0, Y: 0}, coord.Point{X: 6, Y: 0}))
	decoded, err := Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Len())
}

func TestDecodeHugeSpacing(t *testing.T) {
	b := encode(t, crafted(4, math.MaxInt32, coord.Point{X: 1, Y: 2}))
	decoded, err := Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, decoded.MinSpacing())
	assert.True(t, decoded.IsSet(1, 2))

	// on a tile this small every pair of points is too close
	b = encode(t, crafted(4, math.MaxInt32, coord.Point{X: 0, Y: 0}, coord.Point{X: 2, Y: 2}))
	_, err = Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeRejectsOversizedCount(t *testing.T) {
	b := encode(t, crafted(2, 0))
	// count is the last header word
	b[13] = 5
	_, err := Decode(bytes.NewReader(b))
	assert.ErrorIs(t, err, ErrCorrupt)
}
