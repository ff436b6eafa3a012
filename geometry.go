package shapes

import "math"

// Segment counts chosen automatically for curved shapes keep the sampled
// curve within segmentTolerance pixels of the true ellipse, clamped so
// tiny shapes stay smooth and huge shapes stay cheap.
const (
	segmentTolerance = 0.25
	minAutoSegments  = 8
	maxAutoSegments  = 256
)

// autoSegments picks a segment count for a curved shape from its extents.
// The count never decreases as the shape grows.
func autoSegments(width, height float32) int {
	r := float64(maxf(width, height)) / 2
	if r <= segmentTolerance {
		return minAutoSegments
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-segmentTolerance/r)))
	if n < minAutoSegments {
		n = minAutoSegments
	}
	if n > maxAutoSegments {
		n = maxAutoSegments
	}
	return n
}

// RotatePoint rotates p clockwise by the given angle in degrees about the
// given pivot. A zero angle returns p unchanged.
func RotatePoint(p, about Point, degrees float32) Point {
	if degrees == 0 {
		return p
	}
	sin, cos := math.Sincos(float64(degrees) * math.Pi / 180)
	dx := float64(p.X - about.X)
	dy := float64(p.Y - about.Y)
	return Point{
		X: about.X + float32(dx*cos+dy*sin),
		Y: about.Y + float32(dy*cos-dx*sin),
	}
}

// ThickLineCorners returns the four corners of the quad covering a line
// segment drawn with the given stroke width, in the order start side
// first: start+shift, start-shift, end-shift, end+shift. The shift is
// half the width along the segment's normal. A zero-length segment has
// no normal; the corners collapse onto a diagonal through the point so
// that every returned coordinate stays finite.
func ThickLineCorners(start, end Point, width float32) [4]Point {
	vx := start.X - end.X
	vy := start.Y - end.Y
	length := float32(math.Hypot(float64(vx), float64(vy)))
	nx, ny := float32(1), float32(1)
	if length != 0 {
		nx = vy / length
		ny = -vx / length
	}
	sx := nx * width / 2
	sy := ny * width / 2
	return [4]Point{
		{start.X + sx, start.Y + sy},
		{start.X - sx, start.Y - sy},
		{end.X - sx, end.Y - sy},
		{end.X + sx, end.Y + sy},
	}
}

// ThickLineStripPoints expands an open polyline into a run of quads, one
// per segment, ordered so the whole run renders as a single triangle
// strip. Each quad contributes its corners reordered as second, first,
// third, fourth, which keeps the strip's winding consistent from one
// segment to the next. The result has 4*(len(points)-1) points.
func ThickLineStripPoints(points PointList, width float32) PointList {
	if len(points) < 2 {
		return nil
	}
	out := make(PointList, 0, 4*(len(points)-1))
	for i := 0; i+1 < len(points); i++ {
		q := ThickLineCorners(points[i], points[i+1], width)
		out = append(out, q[1], q[0], q[2], q[3])
	}
	return out
}

// ThickOutlinePoints expands a closed polygon boundary into a triangle
// strip run like ThickLineStripPoints, adding the segment from the last
// point back to the first and one extra closing point so the strip meets
// itself. The result has 4*len(points)+1 points.
func ThickOutlinePoints(points PointList, width float32) PointList {
	if len(points) < 2 {
		return nil
	}
	n := len(points)
	out := make(PointList, 0, 4*n+1)
	for i := 0; i < n; i++ {
		q := ThickLineCorners(points[i], points[(i+1)%n], width)
		out = append(out, q[1], q[0], q[2], q[3])
	}
	q := ThickLineCorners(points[0], points[1], width)
	out = append(out, q[1])
	return out
}

// ArcFanPoints samples a filled elliptical arc as a triangle fan anchored
// at the ellipse center. The fan covers whole segments of a full ellipse
// split into the given segment count: segment indices run from
// floor(startAngle/360*segments) through floor(endAngle/360*segments)
// inclusive. Angles are in degrees, counter-clockwise from the positive
// x axis. A full circle therefore yields segments+2 points including the
// center. A non-positive segment count picks one automatically from the
// extents. Tilt rotates the finished fan clockwise about the center.
func ArcFanPoints(center Point, width, height, startAngle, endAngle, tilt float32, segments int) PointList {
	if segments <= 0 {
		segments = autoSegments(width, height)
	}
	n := float64(segments)
	first := int(math.Floor(float64(startAngle) / 360 * n))
	last := int(math.Floor(float64(endAngle) / 360 * n))

	capacity := last - first + 2
	if capacity < 1 {
		capacity = 1
	}
	out := make(PointList, 0, capacity)
	out = append(out, Point{})
	for s := first; s <= last; s++ {
		theta := 2 * math.Pi * float64(s) / n
		out = append(out, Point{
			X: float32(float64(width) * math.Cos(theta) / 2),
			Y: float32(float64(height) * math.Sin(theta) / 2),
		})
	}
	return placeArcPoints(out, center, tilt)
}

// ArcStripPoints samples an elliptical arc outline as a triangle strip of
// alternating inner and outer perimeter points. The stroke straddles the
// nominal ellipse: the inner extents are (dimension - borderWidth/2)/2
// and the outer extents (dimension + borderWidth/2)/2. Segment selection
// matches ArcFanPoints, so the result always holds an even number of
// points, two per sampled segment boundary.
func ArcStripPoints(center Point, width, height, startAngle, endAngle, borderWidth, tilt float32, segments int) PointList {
	if segments <= 0 {
		segments = autoSegments(width, height)
	}
	insideW := float64(width-borderWidth/2) / 2
	outsideW := float64(width+borderWidth/2) / 2
	insideH := float64(height-borderWidth/2) / 2
	outsideH := float64(height+borderWidth/2) / 2

	n := float64(segments)
	first := int(math.Floor(float64(startAngle) / 360 * n))
	last := int(math.Floor(float64(endAngle) / 360 * n))

	capacity := 2 * (last - first + 1)
	if capacity < 0 {
		capacity = 0
	}
	out := make(PointList, 0, capacity)
	for s := first; s <= last; s++ {
		theta := 2 * math.Pi * float64(s) / n
		sin, cos := math.Sincos(theta)
		out = append(out,
			Point{X: float32(insideW * cos), Y: float32(insideH * sin)},
			Point{X: float32(outsideW * cos), Y: float32(outsideH * sin)},
		)
	}
	return placeArcPoints(out, center, tilt)
}

// placeArcPoints moves origin-relative arc samples into place: tilt
// rotates about the origin, then the whole list translates to center.
func placeArcPoints(points PointList, center Point, tilt float32) PointList {
	if tilt != 0 {
		for i := range points {
			points[i] = RotatePoint(points[i], Point{}, tilt)
		}
	}
	for i := range points {
		points[i] = points[i].Add(center)
	}
	return points
}

// RectOutlinePoints returns the ten-point triangle strip outlining a
// rectangle with the given border width. The stroke straddles the edges,
// inset and outset by half the border. Points alternate outer, inner and
// walk top-left, top-right, bottom-right, bottom-left, repeating the
// first pair to close the loop. Tilt rotates the strip clockwise about
// the rectangle center.
func RectOutlinePoints(r Rect, borderWidth, tilt float32) PointList {
	hb := borderWidth / 2
	inL, inR := r.Left+hb, r.Right-hb
	inB, inT := r.Bottom+hb, r.Top-hb
	outL, outR := r.Left-hb, r.Right+hb
	outB, outT := r.Bottom-hb, r.Top+hb

	out := PointList{
		{outL, outT}, {inL, inT},
		{outR, outT}, {inR, inT},
		{outR, outB}, {inR, inB},
		{outL, outB}, {inL, inB},
		{outL, outT}, {inL, inT},
	}
	if tilt != 0 {
		c := r.Center()
		for i := range out {
			out[i] = RotatePoint(out[i], c, tilt)
		}
	}
	return out
}
