package physics

import (
	"image/color"
	"math"
	"slices"

	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/geom"
)

var rayColor = color.RGBA{255, 0, 0, 255}

// RayTracer casts a segment from Source and finds the nearest body edge it
// crosses. Hit holds the impact point after Trace, or the far end of the
// ray when nothing was hit.
type RayTracer struct {
	Source geom.Vec2
	// SourceBody is ignored by the trace, typically the body firing the ray.
	SourceBody *Body
	// Direction is the ray heading in degrees.
	Direction float64
	Radius    int
	// ZDiscard lists layers the ray passes through.
	ZDiscard []int

	world *World
	hit   geom.Vec2
	drawn bool
}

// NewRayTracer creates a ray tracer querying w.
func NewRayTracer(w *World) *RayTracer {
	return &RayTracer{world: w}
}

// Hit returns the impact point of the last trace.
func (r *RayTracer) Hit() geom.Vec2 { return r.hit }

// edge is one side of a candidate body's bounds.
type edge struct {
	a, b geom.Vec2
	body *Body
}

// Trace casts the ray and returns the nearest body hit, or nil. Disabled
// bodies, triggers, SourceBody and bodies on a discarded layer are skipped.
func (r *RayTracer) Trace() *Body {
	r.drawn = true
	area := r.rayArea()
	if r.world == nil {
		return nil
	}

	var edges []edge
	for _, b := range r.world.bodies {
		if b == r.SourceBody || !b.Enabled || b.Trigger || slices.Contains(r.ZDiscard, b.Z) {
			continue
		}
		if !area.Intersects(b.Bounds) {
			continue
		}
		l, rt := float64(b.Bounds.Left()), float64(b.Bounds.Right())
		t, bt := float64(b.Bounds.Top()), float64(b.Bounds.Bottom())
		edges = append(edges,
			edge{geom.Vec2{X: l, Y: t}, geom.Vec2{X: rt, Y: t}, b},
			edge{geom.Vec2{X: l, Y: t}, geom.Vec2{X: l, Y: bt}, b},
			edge{geom.Vec2{X: rt, Y: t}, geom.Vec2{X: rt, Y: bt}, b},
			edge{geom.Vec2{X: l, Y: bt}, geom.Vec2{X: rt, Y: bt}, b},
		)
	}

	var (
		nearest     *Body
		nearestDist = math.Inf(1)
		nearestPt   geom.Vec2
	)
	for _, e := range edges {
		p, ok := geom.IntersectLines(r.Source, r.hit, e.a, e.b)
		if !ok {
			continue
		}
		if d := geom.Distance(r.Source, p); d < nearestDist {
			nearest, nearestDist, nearestPt = e.body, d, p
		}
	}
	if nearest == nil {
		return nil
	}
	r.hit = nearestPt
	return nearest
}

// TraceTo aims the ray at target, with a radius equal to the truncated
// distance, and traces it.
func (r *RayTracer) TraceTo(target geom.Vec2) *Body {
	r.Direction = geom.Angle(r.Source, target)
	r.Radius = int(geom.Distance(r.Source, target))
	return r.Trace()
}

// rayArea sets hit to the far end of the ray and returns the box spanned by
// the ray. Axis-aligned rays are widened by a pixel each side so the box is
// never flat.
func (r *RayTracer) rayArea() geom.Rect {
	a := r.Source
	b := geom.Move(r.Source, r.Radius, math.Abs(r.Direction))
	r.hit = b

	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	switch int(r.Direction) {
	case 0, 180:
		a.Y--
		b.Y++
	case 90, 270:
		a.X--
		b.X++
	}
	return geom.Rect{
		X:      int(a.X),
		Y:      int(a.Y),
		Width:  int(b.X - a.X),
		Height: int(b.Y - a.Y),
	}
}

// Draw renders the last traced segment. Nothing is drawn before the first
// trace.
func (r *RayTracer) Draw(o engine.Overlay) {
	if o == nil || !r.drawn {
		return
	}
	o.DrawLine(r.Source, r.hit, rayColor)
}
