package shapes

import (
	"math"
	"testing"
)

// near compares coordinates with a tolerance wide enough for float32
// trig round-off.
func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func nearPoint(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestThickLineCornersHorizontal(t *testing.T) {
	corners := ThickLineCorners(Point{0, 0}, Point{10, 0}, 2)

	want := [4]Point{{0, 1}, {0, -1}, {10, -1}, {10, 1}}
	for i := range want {
		if !nearPoint(corners[i], want[i]) {
			t.Errorf("corner %d: expected %v, got %v", i, want[i], corners[i])
		}
	}
}

func TestThickLineCornersZeroLength(t *testing.T) {
	corners := ThickLineCorners(Point{5, 5}, Point{5, 5}, 2)

	// A point segment has no normal; the corners must still be finite.
	want := [4]Point{{6, 6}, {4, 4}, {4, 4}, {6, 6}}
	for i := range want {
		if math.IsNaN(float64(corners[i].X)) || math.IsNaN(float64(corners[i].Y)) {
			t.Fatalf("corner %d is NaN: %v", i, corners[i])
		}
		if !nearPoint(corners[i], want[i]) {
			t.Errorf("corner %d: expected %v, got %v", i, want[i], corners[i])
		}
	}
}

func TestThickLineStripPoints(t *testing.T) {
	points := PointList{{0, 0}, {10, 0}, {10, 10}}
	out := ThickLineStripPoints(points, 2)

	if len(out) != 4*(len(points)-1) {
		t.Fatalf("expected %d points, got %d", 4*(len(points)-1), len(out))
	}
	// Each quad leads with its second corner so strips chain with
	// consistent winding.
	if !nearPoint(out[0], Point{0, -1}) || !nearPoint(out[1], Point{0, 1}) {
		t.Errorf("first quad not reordered: got %v, %v", out[0], out[1])
	}

	if got := ThickLineStripPoints(PointList{{1, 1}}, 2); got != nil {
		t.Errorf("single point should produce nil, got %v", got)
	}
}

func TestThickOutlinePoints(t *testing.T) {
	points := PointList{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := ThickOutlinePoints(points, 2)

	if len(out) != 4*len(points)+1 {
		t.Fatalf("expected %d points, got %d", 4*len(points)+1, len(out))
	}
	// The closing point repeats the strip's first point so the outline
	// meets itself.
	if !nearPoint(out[len(out)-1], out[0]) {
		t.Errorf("outline does not close: first %v, last %v", out[0], out[len(out)-1])
	}
}

func TestArcFanPointsFullCircle(t *testing.T) {
	const segments = 16
	out := ArcFanPoints(Point{100, 50}, 20, 20, 0, 360, 0, segments)

	// Center plus segments+1 perimeter samples, first and last coincident.
	if len(out) != segments+2 {
		t.Fatalf("expected %d points for a full circle, got %d", segments+2, len(out))
	}
	if !nearPoint(out[0], Point{100, 50}) {
		t.Errorf("fan must start at the center, got %v", out[0])
	}
	if !nearPoint(out[1], out[len(out)-1]) {
		t.Errorf("full circle does not close: %v vs %v", out[1], out[len(out)-1])
	}
	if !nearPoint(out[1], Point{110, 50}) {
		t.Errorf("first sample should sit at angle zero, got %v", out[1])
	}
}

func TestArcFanPointsQuarter(t *testing.T) {
	const segments = 16
	out := ArcFanPoints(Point{0, 0}, 20, 10, 0, 90, 0, segments)

	// Segment indices 0 through floor(90/360*16) = 4, plus the center.
	if len(out) != 6 {
		t.Fatalf("expected 6 points for a quarter arc, got %d", len(out))
	}
	if !nearPoint(out[len(out)-1], Point{0, 5}) {
		t.Errorf("quarter arc should end at the top of the ellipse, got %v", out[len(out)-1])
	}
}

func TestArcFanPointsTilt(t *testing.T) {
	// Tilting a quarter arc 90 degrees clockwise moves the angle-zero
	// sample from (r, 0) down to (0, -r) before translation.
	out := ArcFanPoints(Point{100, 100}, 20, 20, 0, 90, 90, 16)

	if !nearPoint(out[1], Point{100, 90}) {
		t.Errorf("expected tilted first sample at (100, 90), got %v", out[1])
	}
}

func TestArcStripPoints(t *testing.T) {
	const segments = 16
	out := ArcStripPoints(Point{0, 0}, 20, 20, 0, 90, 4, 0, segments)

	// Two points per sampled boundary, five boundaries for a quarter.
	if len(out) != 10 {
		t.Fatalf("expected 10 points, got %d", len(out))
	}
	if len(out)%2 != 0 {
		t.Fatalf("strip must alternate inner/outer pairs, got odd count %d", len(out))
	}
	// The stroke straddles the nominal radius 10 with border 4.
	if !nearPoint(out[0], Point{9, 0}) {
		t.Errorf("expected inner point (9, 0), got %v", out[0])
	}
	if !nearPoint(out[1], Point{11, 0}) {
		t.Errorf("expected outer point (11, 0), got %v", out[1])
	}
}

func TestRotatePointClockwise(t *testing.T) {
	got := RotatePoint(Point{0, 1}, Point{}, 90)
	if !nearPoint(got, Point{1, 0}) {
		t.Errorf("expected (1, 0), got %v", got)
	}

	got = RotatePoint(Point{2, 1}, Point{1, 1}, 90)
	if !nearPoint(got, Point{1, 0}) {
		t.Errorf("rotation about pivot: expected (1, 0), got %v", got)
	}

	// Zero angle returns the point untouched.
	p := Point{3.25, -7.5}
	if RotatePoint(p, Point{1, 1}, 0) != p {
		t.Error("zero angle must be an exact identity")
	}
}

func TestRectOutlinePoints(t *testing.T) {
	r := Rect{Left: 0, Right: 10, Bottom: 0, Top: 10}
	out := RectOutlinePoints(r, 2, 0)

	if len(out) != 10 {
		t.Fatalf("expected 10 points, got %d", len(out))
	}
	// Outer then inner top-left corner, border straddling the edge.
	if !nearPoint(out[0], Point{-1, 11}) || !nearPoint(out[1], Point{1, 9}) {
		t.Errorf("top-left pair: got %v, %v", out[0], out[1])
	}
	// Strip closes on its first pair.
	if !nearPoint(out[8], out[0]) || !nearPoint(out[9], out[1]) {
		t.Errorf("strip does not close: %v %v vs %v %v", out[8], out[9], out[0], out[1])
	}
}

func TestRectOutlinePointsTilt(t *testing.T) {
	r := Rect{Left: 0, Right: 10, Bottom: 0, Top: 10}
	out := RectOutlinePoints(r, 2, 180)

	// A half turn about the center (5, 5) maps the outer top-left corner
	// (-1, 11) onto (11, -1).
	if !nearPoint(out[0], Point{11, -1}) {
		t.Errorf("expected (11, -1), got %v", out[0])
	}
}

func TestAutoSegmentsBounds(t *testing.T) {
	if got := autoSegments(1, 1); got != minAutoSegments {
		t.Errorf("tiny shape: expected %d segments, got %d", minAutoSegments, got)
	}
	if got := autoSegments(10000, 10000); got != maxAutoSegments {
		t.Errorf("huge shape: expected %d segments, got %d", maxAutoSegments, got)
	}

	// Counts never decrease as the shape grows.
	prev := 0
	for _, size := range []float32{1, 10, 50, 100, 500, 1000, 5000} {
		n := autoSegments(size, size)
		if n < prev {
			t.Errorf("segments dropped from %d to %d at size %g", prev, n, size)
		}
		prev = n
	}
}
