package cmp

import (
	"github.com/vram-io/dtk/pkg/coord"
	"github.com/vram-io/dtk/pkg/coord/gen"
)

// FindMissing compares two point generators to find the missing points.
// It reports the points yielded by exp that act never yields. Both
// generators must yield points sorted by (y, x).
func FindMissing(exp gen.Generator, act gen.Generator) []coord.Point {
	var result []coord.Point
	expP := exp.Next()
	actP := act.Next()
	for expP != nil {
		if actP == nil || expP.LessYX(*actP) {
			result = append(result, *expP)
			expP = exp.Next()
		} else if actP.LessYX(*expP) {
			actP = act.Next()
		} else {
			expP = exp.Next()
			actP = act.Next()
		}
	}
	return result
}
