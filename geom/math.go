package geom

import "math"

// segmentTolerance is how far the summed sub-segment lengths may drift from
// the segment length before a point is considered off the segment.
const segmentTolerance = 0.01

// Angle returns the heading from a to b in degrees, in [0, 360).
func Angle(a, b Vec2) float64 {
	deg := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Move displaces p by distance pixels along direction (degrees). Each axis
// is rounded to the nearest whole pixel, ties to even.
func Move(p Vec2, distance int, direction float64) Vec2 {
	rad := direction * math.Pi / 180
	d := float64(distance)
	return Vec2{
		X: math.RoundToEven(p.X + d*math.Cos(rad)),
		Y: math.RoundToEven(p.Y + d*math.Sin(rad)),
	}
}

// Distance returns the straight-line distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// PointInRect truncates p to integer coordinates and reports whether it lies
// inside r.
func PointInRect(p Vec2, r Rect) bool {
	return r.Contains(int(p.X), int(p.Y))
}

// Percent returns value as a percentage of rng.
func Percent(value, rng float64) float64 {
	return value / rng * 100
}

// IntersectLines returns the intersection point of segments a-b and c-d.
// Parallel segments never intersect, and zero-length segments report no
// intersection.
func IntersectLines(a, b, c, d Vec2) (Vec2, bool) {
	xD1, yD1 := b.X-a.X, b.Y-a.Y
	xD2, yD2 := d.X-c.X, d.Y-c.Y
	xD3, yD3 := a.X-c.X, a.Y-c.Y

	len1 := math.Hypot(xD1, yD1)
	len2 := math.Hypot(xD2, yD2)
	if len1 == 0 || len2 == 0 {
		return Vec2{}, false
	}

	// |cos| == 1 means the lines are parallel.
	cos := (xD1*xD2 + yD1*yD2) / (len1 * len2)
	if math.Abs(cos) == 1 {
		return Vec2{}, false
	}

	div := yD2*xD1 - xD2*yD1
	if div == 0 {
		return Vec2{}, false
	}
	ua := (xD2*yD3 - yD2*xD3) / div
	pt := Vec2{a.X + ua*xD1, a.Y + ua*yD1}

	// The point is on a segment only when its distances to both ends add
	// up to the segment length.
	seg1 := Distance(pt, a) + Distance(pt, b)
	seg2 := Distance(pt, c) + Distance(pt, d)
	if math.Abs(len1-seg1) > segmentTolerance || math.Abs(len2-seg2) > segmentTolerance {
		return Vec2{}, false
	}
	return pt, true
}
