package coord

type bitset struct {
	words []uint32
}

const (
	BITS_PER_WORD = 32
)

func newBitset(numBits uint) *bitset {
	// round up to a whole number of 32-bit words, as these should be aligned accesses
	numWords := numBits / BITS_PER_WORD
	if numBits%BITS_PER_WORD > 0 {
		numWords += 1
	}
	return &bitset{make([]uint32, numWords)}
}

func (b *bitset) Get(idx uint) bool {
	wordIdx := idx / BITS_PER_WORD
	wordOffset := idx % BITS_PER_WORD
	w := b.words[wordIdx]
	return ((w >> wordOffset) & 1) == 1
}

func (b *bitset) Set(idx uint, val bool) {
	wordIdx := idx / BITS_PER_WORD
	wordOffset := idx % BITS_PER_WORD
	w := b.words[wordIdx]

	if val {
		w = w | (uint32(1) << wordOffset)
	} else {
		w = w &^ (uint32(1) << wordOffset)
	}

	b.words[wordIdx] = w
}

// Grid is a dense occupancy bitmap over a size x size torus. Every access
// wraps its coordinates, so neighbours across an edge are one step away.
type Grid struct {
	torus Torus
	bits  *bitset
}

// NewGrid allocates an empty grid. Size must be in [1, MaxSize].
func NewGrid(size int) *Grid {
	if size <= 0 || size > MaxSize {
		panic("coord.Grid size must be in [1, MaxSize]")
	}
	return &Grid{
		torus: Torus{size},
		bits:  newBitset(uint(size) * uint(size)),
	}
}

// Torus returns the wrapping rules of the grid.
func (g *Grid) Torus() Torus {
	return g.torus
}

func (g *Grid) offset(p Point) uint {
	w := g.torus.Wrap(p)
	return uint(w.Y)*uint(g.torus.Size) + uint(w.X)
}

// Get reports whether the wrapped cell is occupied.
func (g *Grid) Get(p Point) bool {
	return g.bits.Get(g.offset(p))
}

// Set marks or clears the wrapped cell.
func (g *Grid) Set(p Point, val bool) {
	g.bits.Set(g.offset(p), val)
}
