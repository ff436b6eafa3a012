package shapes_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/shapes"
)

func TestLRBT(t *testing.T) {
	r, err := shapes.LRBT(-5, 5, -10, 10)
	if err != nil {
		t.Fatalf("LRBT returned error: %v", err)
	}
	if r.Left != -5 || r.Right != 5 || r.Bottom != -10 || r.Top != 10 {
		t.Errorf("unexpected rect %+v", r)
	}

	// Crossed edges are rejected.
	if _, err := shapes.LRBT(5, -5, 0, 10); !errors.Is(err, shapes.ErrInvalidRect) {
		t.Errorf("crossed horizontal edges: expected ErrInvalidRect, got %v", err)
	}
	if _, err := shapes.LRBT(0, 10, 5, -5); !errors.Is(err, shapes.ErrInvalidRect) {
		t.Errorf("crossed vertical edges: expected ErrInvalidRect, got %v", err)
	}

	// Zero-area rects are fine.
	if _, err := shapes.LRBT(3, 3, 7, 7); err != nil {
		t.Errorf("degenerate rect should be valid, got %v", err)
	}
}

func TestLBWH(t *testing.T) {
	r, err := shapes.LBWH(10, 20, 30, 40)
	if err != nil {
		t.Fatalf("LBWH returned error: %v", err)
	}
	want := shapes.Rect{Left: 10, Right: 40, Bottom: 20, Top: 60}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}

	if _, err := shapes.LBWH(0, 0, -1, 5); !errors.Is(err, shapes.ErrInvalidRect) {
		t.Errorf("negative width: expected ErrInvalidRect, got %v", err)
	}
}

func TestXYWH(t *testing.T) {
	r, err := shapes.XYWH(0, 0, 10, 20)
	if err != nil {
		t.Fatalf("XYWH returned error: %v", err)
	}
	want := shapes.Rect{Left: -5, Right: 5, Bottom: -10, Top: 10}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}
}

func TestRectAccessors(t *testing.T) {
	r := shapes.Rect{Left: 10, Right: 40, Bottom: 20, Top: 60}

	if r.Width() != 30 {
		t.Errorf("Width: expected 30, got %g", r.Width())
	}
	if r.Height() != 40 {
		t.Errorf("Height: expected 40, got %g", r.Height())
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("center: expected (25, 40), got (%g, %g)", r.CenterX(), r.CenterY())
	}
	if r.Center() != (shapes.Point{X: 25, Y: 40}) {
		t.Errorf("Center: expected (25, 40), got %v", r.Center())
	}
}

func TestRectContains(t *testing.T) {
	r := shapes.Rect{Left: 0, Right: 10, Bottom: 0, Top: 10}

	cases := []struct {
		p    shapes.Point
		want bool
	}{
		{shapes.Point{X: 5, Y: 5}, true},
		{shapes.Point{X: 0, Y: 0}, true},   // left/bottom edges inside
		{shapes.Point{X: 10, Y: 5}, false}, // right edge outside
		{shapes.Point{X: 5, Y: 10}, false}, // top edge outside
		{shapes.Point{X: -1, Y: 5}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v): expected %v, got %v", tc.p, tc.want, got)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := shapes.Rect{Left: 0, Right: 10, Bottom: 0, Top: 10}

	overlapping := shapes.Rect{Left: 5, Right: 15, Bottom: 5, Top: 15}
	if !r.Intersects(overlapping) {
		t.Error("overlapping rects should intersect")
	}

	touching := shapes.Rect{Left: 10, Right: 20, Bottom: 0, Top: 10}
	if r.Intersects(touching) {
		t.Error("edge-touching rects should not intersect")
	}

	disjoint := shapes.Rect{Left: 20, Right: 30, Bottom: 20, Top: 30}
	if r.Intersects(disjoint) {
		t.Error("disjoint rects should not intersect")
	}
}

func TestNewRectCombos(t *testing.T) {
	want := shapes.Rect{Left: 10, Right: 30, Bottom: 5, Top: 25}

	cases := []struct {
		name   string
		bounds []shapes.Bound
	}{
		{"edges", []shapes.Bound{shapes.Left(10), shapes.Right(30), shapes.Bottom(5), shapes.Top(25)}},
		{"low and size", []shapes.Bound{shapes.Left(10), shapes.Width(20), shapes.Bottom(5), shapes.Height(20)}},
		{"high and size", []shapes.Bound{shapes.Right(30), shapes.Width(20), shapes.Top(25), shapes.Height(20)}},
		{"center and size", []shapes.Bound{shapes.CenterX(20), shapes.Width(20), shapes.CenterY(15), shapes.Height(20)}},
		{"low and center", []shapes.Bound{shapes.Left(10), shapes.CenterX(20), shapes.Bottom(5), shapes.CenterY(15)}},
		{"high and center", []shapes.Bound{shapes.Right(30), shapes.CenterX(20), shapes.Top(25), shapes.CenterY(15)}},
	}
	for _, tc := range cases {
		r, err := shapes.NewRect(tc.bounds...)
		if err != nil {
			t.Errorf("%s: NewRect returned error: %v", tc.name, err)
			continue
		}
		if r != want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, want, r)
		}
	}
}

func TestNewRectUnderdetermined(t *testing.T) {
	_, err := shapes.NewRect(shapes.Left(10), shapes.Bottom(5), shapes.Top(25))
	if !errors.Is(err, shapes.ErrInvalidRect) {
		t.Errorf("one horizontal bound: expected ErrInvalidRect, got %v", err)
	}

	_, err = shapes.NewRect()
	if !errors.Is(err, shapes.ErrInvalidRect) {
		t.Errorf("no bounds: expected ErrInvalidRect, got %v", err)
	}
}

func TestNewRectOverdetermined(t *testing.T) {
	_, err := shapes.NewRect(
		shapes.Left(10), shapes.Right(30), shapes.Width(20),
		shapes.Bottom(5), shapes.Top(25))
	if !errors.Is(err, shapes.ErrInvalidRect) {
		t.Errorf("three horizontal bounds: expected ErrInvalidRect, got %v", err)
	}
}

func TestNewRectCrossedEdges(t *testing.T) {
	_, err := shapes.NewRect(
		shapes.Left(30), shapes.Right(10),
		shapes.Bottom(5), shapes.Top(25))
	if !errors.Is(err, shapes.ErrInvalidRect) {
		t.Errorf("expected ErrInvalidRect for crossed edges, got %v", err)
	}
}
