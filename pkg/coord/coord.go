package coord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxSize is the largest tile edge that still packs into (y<<16)|x.
const MaxSize = 1<<16 - 1

// Point contains the X, Y cell of a sample inside a square tile.
type Point struct {
	X, Y int
}

// Add returns the point displaced by dx, dy. The result is not wrapped.
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// String is the Point Stringer implementation.
// It returns the point in x/y.
func (p Point) String() string {
	return fmt.Sprintf("%d/%d", p.X, p.Y)
}

// LessYX returns true if the point is "less than" the argument.
// First y is considered, then x.
func (p Point) LessYX(o Point) bool {
	if p.Y < o.Y {
		return true
	} else if p.Y == o.Y {
		return p.X < o.X
	}
	return false
}

// ByYX is a wrapper type used for sorting.
type ByYX []Point

func (a ByYX) Len() int      { return len(a) }
func (a ByYX) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByYX) Less(i, j int) bool {
	return a[i].LessYX(a[j])
}

// Decode parses a point from a string.
// It expects the string to be in the form x/y.
func Decode(pointSpec string) (*Point, error) {
	fields := strings.Split(pointSpec, "/")
	if len(fields) != 2 {
		return nil, errors.New("Invalid number of fields")
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("Invalid x: %#v %s", fields[0], err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("Invalid y: %#v %s", fields[1], err)
	}
	return &Point{x, y}, nil
}

// Wrap folds v into [0, size). Negative values wrap from the far edge.
func Wrap(v, size int) int {
	return (v%size + size) % size
}

// Torus is a square tile whose edges wrap around.
type Torus struct {
	Size int
}

// Wrap folds both axes of p into the tile.
func (t Torus) Wrap(p Point) Point {
	return Point{Wrap(p.X, t.Size), Wrap(p.Y, t.Size)}
}

// Delta returns the shortest signed displacement from a to b along one
// wrapped axis.
func (t Torus) Delta(a, b int) int {
	d := Wrap(b-a, t.Size)
	if d > t.Size/2 {
		d -= t.Size
	}
	return d
}

// Dist2 returns the squared toroidal distance between a and b.
func (t Torus) Dist2(a, b Point) int {
	dx := t.Delta(a.X, b.X)
	dy := t.Delta(a.Y, b.Y)
	return dx*dx + dy*dy
}
