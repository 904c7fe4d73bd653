// Package bluenoise generates tileable 2d blue noise with integer
// coordinates using Bridson's algorithm for Poisson disk sampling.
//
// Tiles wrap on both axes: distances are measured on a torus, so a tile
// repeats seamlessly. The result is stored sparsely, which keeps large
// tiles cheap to hold, but generation time grows with size squared.
package bluenoise

import (
	"errors"
	"fmt"
	"math"

	"github.com/vram-io/dtk/pkg/circle"
	"github.com/vram-io/dtk/pkg/coord"
	"github.com/vram-io/dtk/pkg/coord/gen"
)

// MaxTrials is the number of candidates tried around a frontier point
// before it is retired.
const MaxTrials = 60

var (
	ErrInvalidSize    = errors.New("invalid tile size")
	ErrInvalidSpacing = errors.New("invalid minimum spacing")
)

// Noise is an immutable set of points in a size x size tile. Every pair of
// points is more than MinSpacing apart, measured with wraparound.
type Noise struct {
	size       int
	minSpacing int
	points     *pointSet
}

// New generates the noise tile for the given parameters. The same
// arguments always produce the same points.
//
// Generation is synchronous and cannot be interrupted. Very large tiles
// with small spacing take a long time; see util.RunWithTimeout.
func New(size, minSpacing int, seed int64) (*Noise, error) {
	return NewWithSource(size, minSpacing, NewSource(seed))
}

// NewWithSource is New with a caller-supplied random source.
func NewWithSource(size, minSpacing int, src Source) (*Noise, error) {
	if err := Validate(size, minSpacing); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("nil random source")
	}
	g := generation{
		grid:       coord.NewGrid(size),
		minSpacing: reach(minSpacing, size),
		src:        src,
	}
	g.run()

	n := &Noise{
		size:       size,
		minSpacing: minSpacing,
		points:     newPointSet(size),
	}
	cells := gen.NewGridRange(size)
	for p := cells.Next(); p != nil; p = cells.Next() {
		if g.grid.Get(*p) {
			n.points.Add(*p)
		}
	}

	Logger().Debug("bluenoise: generated tile",
		"size", size,
		"min_spacing", minSpacing,
		"points", n.points.Len(),
		"trials", g.trials,
		"pops", g.pops)
	return n, nil
}

// Validate checks tile parameters without generating anything.
func Validate(size, minSpacing int) error {
	if size <= 0 || size > coord.MaxSize {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidSize, size, coord.MaxSize)
	}
	if minSpacing < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidSpacing, minSpacing)
	}
	return nil
}

// reach caps a spacing at the tile size. No two cells of a torus are
// further apart than size/sqrt(2), so any larger spacing rules out the
// same cells as size does.
func reach(spacing, size int) int {
	if spacing > size {
		return size
	}
	return spacing
}

// Size returns the edge length of the tile.
func (n *Noise) Size() int { return n.size }

// MinSpacing returns the spacing the tile was generated with.
func (n *Noise) MinSpacing() int { return n.minSpacing }

// Len returns the number of points.
func (n *Noise) Len() int { return n.points.Len() }

// IsSet reports whether the cell holds a point. Coordinates are wrapped to
// the tile, so any x, y is valid.
func (n *Noise) IsSet(x, y int) bool {
	return n.points.Contains(coord.Point{X: x, Y: y})
}

// Points returns every point sorted by (y, x).
func (n *Noise) Points() []coord.Point {
	return n.points.Points()
}

// generation holds the transient state of one run.
type generation struct {
	grid       *coord.Grid
	minSpacing int
	src        Source

	active []coord.Point
	trials int
	pops   int
}

func (g *generation) run() {
	size := g.grid.Torus().Size
	first := coord.Point{X: g.src.Intn(size), Y: g.src.Intn(size)}
	g.grid.Set(first, true)
	g.active = append(g.active, first)

	for len(g.active) > 0 {
		g.pops++
		subject := g.pop(g.src.Intn(len(g.active)))

		for i := 0; i < MaxTrials; i++ {
			g.trials++
			trial := g.pointAround(subject)

			if pointIsValid(g.grid, trial, g.minSpacing) {
				// the subject may still have room for more neighbours
				g.active = append(g.active, subject, trial)
				g.grid.Set(trial, true)
				break
			}
		}
	}
}

// pop removes the frontier entry at i. Order is not preserved.
func (g *generation) pop(i int) coord.Point {
	last := len(g.active) - 1
	p := g.active[i]
	g.active[i] = g.active[last]
	g.active = g.active[:last]
	return p
}

// pointAround picks a wrapped cell in the annulus [s, 2s] around p.
func (g *generation) pointAround(p coord.Point) coord.Point {
	radius := float64(g.minSpacing + g.src.Intn(g.minSpacing+1))
	angle := 2 * math.Pi * g.src.Float64()
	x := int(math.Round(float64(p.X) + radius*math.Cos(angle)))
	y := int(math.Round(float64(p.Y) + radius*math.Sin(angle)))
	return g.grid.Torus().Wrap(coord.Point{X: x, Y: y})
}

// pointIsValid reports whether no occupied cell lies within spacing of p,
// measured with wraparound. Small spacings walk the distance-sorted offset
// table; larger ones scan the bounding square. Both give the same answer.
func pointIsValid(grid *coord.Grid, p coord.Point, spacing int) bool {
	if spacing <= circle.MaxRadius {
		return validByTable(grid, p, spacing)
	}
	return validByScan(grid, p, spacing)
}

func validByTable(grid *coord.Grid, p coord.Point, spacing int) bool {
	limit := spacing * spacing
	for _, o := range circle.Within(spacing) {
		// the last ring of the prefix reaches just past spacing
		if o.X*o.X+o.Y*o.Y > limit {
			continue
		}
		if grid.Get(p.Add(o.X, o.Y)) {
			return false
		}
	}
	return true
}

func validByScan(grid *coord.Grid, p coord.Point, spacing int) bool {
	// the nearest copy of every cell is within size/2 on each axis
	r := reach(spacing, grid.Torus().Size)
	limit := spacing * spacing
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= limit && grid.Get(p.Add(dx, dy)) {
				return false
			}
		}
	}
	return true
}
