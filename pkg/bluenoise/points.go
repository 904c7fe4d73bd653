package bluenoise

import (
	"sort"

	"github.com/vram-io/dtk/pkg/coord"
	"github.com/vram-io/dtk/pkg/coord/pack"
)

// pointSet holds the points of a finished tile sparsely, keyed by the
// packed u32 form of each wrapped point. Large tiles hold few points, so
// this is much smaller than the generation grid.
type pointSet struct {
	torus   coord.Torus
	indices map[uint32]struct{}
}

func newPointSet(size int) *pointSet {
	return &pointSet{coord.Torus{Size: size}, make(map[uint32]struct{})}
}

func (s *pointSet) key(p coord.Point) uint32 {
	// a wrapped point is below MaxSize on both axes, which always packs
	k, _ := pack.ToU32(s.torus.Wrap(p))
	return k
}

func (s *pointSet) Add(p coord.Point) {
	s.indices[s.key(p)] = struct{}{}
}

func (s *pointSet) Contains(p coord.Point) bool {
	_, ok := s.indices[s.key(p)]
	return ok
}

func (s *pointSet) Len() int {
	return len(s.indices)
}

// Points returns the members sorted by (y, x).
func (s *pointSet) Points() []coord.Point {
	result := make([]coord.Point, 0, len(s.indices))
	for k := range s.indices {
		result = append(result, pack.FromU32(k))
	}
	sort.Sort(coord.ByYX(result))
	return result
}
