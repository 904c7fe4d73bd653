package circle

import (
	"errors"
	"math"
	"testing"
)

func TestOriginFirst(t *testing.T) {
	o, err := OffsetAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if o != (Offset{0, 0, 0}) {
		t.Errorf("expected origin at index 0, got %#v", o)
	}
}

func TestCount(t *testing.T) {
	// every (x, y) with x*x+y*y < 65*65
	if Count() != 13237 {
		t.Errorf("expected 13237 offsets, got %d", Count())
	}
}

func TestMonotonic(t *testing.T) {
	prev := -1
	for i := 0; i < Count(); i++ {
		o, _ := OffsetAt(i)
		if o.Dist < prev {
			t.Fatalf("distance decreases at index %d: %d after %d", i, o.Dist, prev)
		}
		prev = o.Dist
	}
}

func TestDistanceIsFloorOfLength(t *testing.T) {
	for i := 0; i < Count(); i++ {
		o, _ := OffsetAt(i)
		n := o.X*o.X + o.Y*o.Y
		if o.Dist != int(math.Sqrt(float64(n))) {
			t.Fatalf("offset %#v has wrong distance", o)
		}
		if o.Dist*o.Dist > n || (o.Dist+1)*(o.Dist+1) <= n {
			t.Fatalf("offset %#v distance is not the integer square root", o)
		}
	}
}

func TestCompletePrefixes(t *testing.T) {
	for r := 0; r <= MaxRadius; r++ {
		end := LastIndexAtRadius(r)

		seen := make(map[[2]int]bool, end)
		for i := 0; i < end; i++ {
			o, _ := OffsetAt(i)
			k := [2]int{o.X, o.Y}
			if seen[k] {
				t.Fatalf("radius %d: duplicate offset %v", r, k)
			}
			seen[k] = true
			if o.Dist > r {
				t.Fatalf("radius %d: offset %#v beyond radius inside prefix", r, o)
			}
		}

		exp := 0
		limit := (r + 1) * (r + 1)
		for x := -r; x <= r; x++ {
			for y := -r; y <= r; y++ {
				if x*x+y*y < limit {
					exp++
					if !seen[[2]int{x, y}] {
						t.Fatalf("radius %d: missing offset %d/%d", r, x, y)
					}
				}
			}
		}
		if exp != end {
			t.Fatalf("radius %d: expected %d offsets, got %d", r, exp, end)
		}
	}
}

func TestLastIndexAtRadius(t *testing.T) {
	cases := []struct{ r, exp int }{
		{-5, 1},
		{0, 1},
		{1, 9},
		{2, 25},
		{3, 45},
		{16, 889},
		{63, 12849},
		{64, 13237},
		{1000, 13237},
	}
	for _, c := range cases {
		if got := LastIndexAtRadius(c.r); got != c.exp {
			t.Errorf("LastIndexAtRadius(%d) = %d, expected %d", c.r, got, c.exp)
		}
	}
}

func TestWithin(t *testing.T) {
	w := Within(2)
	if len(w) != 25 {
		t.Fatalf("expected 25 offsets within 2, got %d", len(w))
	}
	if cap(w) != len(w) {
		t.Error("appending to Within must not clobber the shared table")
	}
}

func TestOffsetAtOutOfRange(t *testing.T) {
	for _, i := range []int{-1, Count(), Count() + 10} {
		_, err := OffsetAt(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("OffsetAt(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestFillDiskRepeats(t *testing.T) {
	// the sweep emits axis and diagonal cells more than once
	raw := fillDisk(4)
	uniq := make(map[[2]int]struct{})
	for _, p := range raw {
		uniq[p] = struct{}{}
	}
	if len(uniq) >= len(raw) {
		t.Errorf("expected repeats in the raw sweep, got %d unique of %d", len(uniq), len(raw))
	}
	if raw[0] != [2]int{0, 0} {
		t.Errorf("expected sweep to start at the origin, got %v", raw[0])
	}
}

func TestBuildTableDeterministic(t *testing.T) {
	a := buildTable(10)
	b := buildTable(10)
	if len(a) != len(b) {
		t.Fatal("table sizes differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tables differ at %d: %#v vs %#v", i, a[i], b[i])
		}
	}
}
