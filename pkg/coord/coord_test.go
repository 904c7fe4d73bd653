package coord

import (
	"sort"
	"testing"
	"testing/quick"
)

func TestLessYX(t *testing.T) {
	a := Point{3, 1}
	b := Point{1, 2}
	if !a.LessYX(b) {
		t.Fail()
	}
	if b.LessYX(a) {
		t.Fail()
	}
	if a.LessYX(a) {
		t.Fail()
	}
}

func TestSort(t *testing.T) {
	points := []Point{
		{3, 2},
		{2, 1},
		{1, 2},
		{0, 0},
	}
	sort.Sort(ByYX(points))
	for i := 0; i < len(points)-1; i++ {
		a := points[i]
		b := points[i+1]
		if !a.LessYX(b) {
			t.Fail()
		}
	}
}

func TestDecode(t *testing.T) {
	s := "2/-1"
	p, err := Decode(s)
	exp := Point{2, -1}
	if p == nil || err != nil || *p != exp {
		t.Fail()
	}

	bad := "3/2/1"
	p, err = Decode(bad)
	if p != nil || err == nil {
		t.Fail()
	}

	bad = "3/foo"
	p, err = Decode(bad)
	if p != nil || err == nil {
		t.Fail()
	}
}

func TestWrap(t *testing.T) {
	cases := []struct{ v, size, exp int }{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{12, 5, 2},
	}
	for _, c := range cases {
		if got := Wrap(c.v, c.size); got != c.exp {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", c.v, c.size, got, c.exp)
		}
	}
}

func TestDist2Wraps(t *testing.T) {
	torus := Torus{10}
	if d := torus.Dist2(Point{0, 0}, Point{9, 9}); d != 2 {
		t.Errorf("expected distance 2 across the corner, got %d", d)
	}
	if d := torus.Dist2(Point{1, 5}, Point{4, 5}); d != 9 {
		t.Errorf("expected distance 9, got %d", d)
	}
	if d := torus.Dist2(Point{0, 0}, Point{5, 0}); d != 25 {
		t.Errorf("expected distance 25 at half the tile, got %d", d)
	}
}

func TestDist2Symmetric(t *testing.T) {
	torus := Torus{37}
	f := func(ax, ay, bx, by int8) bool {
		a := Point{int(ax), int(ay)}
		b := Point{int(bx), int(by)}
		return torus.Dist2(a, b) == torus.Dist2(b, a)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}
