package cmp

import (
	"testing"

	"github.com/vram-io/dtk/pkg/coord"
	"github.com/vram-io/dtk/pkg/coord/gen"
)

func TestFindMissing(t *testing.T) {
	exp := []coord.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 3}}
	act := []coord.Point{{X: 1, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 9}}

	missing := FindMissing(gen.NewSlice(exp), gen.NewSlice(act))
	want := []coord.Point{{X: 0, Y: 0}, {X: 2, Y: 1}}
	if len(missing) != len(want) {
		t.Fatalf("expected %v, got %v", want, missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("expected %v, got %v", want, missing)
		}
	}
}

func TestFindMissingAgainstGrid(t *testing.T) {
	// every cell of the tile except the points is missing from the points
	points := []coord.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
	missing := FindMissing(gen.NewGridRange(2), gen.NewSlice(points))
	if len(missing) != 2 || missing[0] != (coord.Point{X: 0, Y: 0}) || missing[1] != (coord.Point{X: 1, Y: 1}) {
		t.Errorf("unexpected %v", missing)
	}
}

func TestFindMissingEmpty(t *testing.T) {
	if len(FindMissing(gen.NewSlice(nil), gen.NewGridRange(4))) != 0 {
		t.Fail()
	}
}
