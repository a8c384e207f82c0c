// Package physics is a small axis-aligned box simulator. It applies gravity
// and decaying forces to movable bodies, separates overlapping boxes by the
// minimum penetration axis, and reports collisions, trigger overlaps and
// explosion hits through per-body callbacks.
//
// The world is single-threaded: callbacks run synchronously inside Update
// and may freely read or mutate bodies.
package physics

import (
	"time"

	"go.uber.org/zap"

	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/geom"
)

// forceDecay is the amount each force axis loses per tick.
const forceDecay = 0.5

// World owns a set of bodies and steps them once per Update.
type World struct {
	Gravity  geom.Vec2
	WorkArea geom.Rect
	Enabled  bool
	// Visible turns on the debug overlay drawn by Draw.
	Visible bool

	ctx    engine.Context
	bodies []*Body
	debug  bool
}

// tickStats holds per-tick counters. Only populated in debug mode.
type tickStats struct {
	active   int
	contacts int
	elapsed  time.Duration
}

// NewWorld creates an enabled, hidden world. Only bodies whose bounds
// intersect workArea are simulated.
func NewWorld(ctx engine.Context, gravity geom.Vec2, workArea geom.Rect) *World {
	return &World{
		Gravity:  gravity,
		WorkArea: workArea,
		Enabled:  true,
		ctx:      ctx,
	}
}

// SetDebugMode enables per-tick stats logging at debug level.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// NewBody creates a body, adds it to the world and returns it. The body
// starts enabled on layer 0 with no force.
func (w *World) NewBody(bounds geom.Rect, weight float64, fixed bool) *Body {
	if bounds.Width < 0 || bounds.Height < 0 {
		panic("bramble: body bounds must have a non-negative size")
	}
	b := &Body{
		ID:      nextBodyID(),
		Bounds:  bounds,
		Weight:  weight,
		Fixed:   fixed,
		Enabled: true,
		world:   w,
	}
	b.lastLocation = b.Location()
	w.bodies = append(w.bodies, b)
	w.ctx.Log().Debug("body added",
		zap.Uint32("id", b.ID), zap.Bool("fixed", fixed), zap.Float64("weight", weight))
	return b
}

// RemoveBody detaches b from the world. It reports false when b is nil or
// not owned by w.
func (w *World) RemoveBody(b *Body) bool {
	if b == nil || b.world != w {
		return false
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			b.world = nil
			w.ctx.Log().Debug("body removed", zap.Uint32("id", b.ID))
			return true
		}
	}
	return false
}

// Clear removes every body.
func (w *World) Clear() {
	for _, b := range w.bodies {
		b.world = nil
	}
	w.bodies = nil
}

// Bodies returns the bodies in creation order. The slice is shared; do not
// modify it.
func (w *World) Bodies() []*Body { return w.bodies }

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.bodies) }

// Update advances the simulation by one tick. Bodies are processed one
// after another, so a body sees the corrections already applied to the
// bodies before it.
func (w *World) Update(dt float64) {
	if !w.Enabled {
		return
	}
	var stats tickStats
	var start time.Time
	if w.debug {
		start = time.Now()
	}

	actives := w.actives()
	stats.active = len(actives)

	var collisions []*Body
	for _, a := range actives {
		if !a.Fixed && !a.Trigger {
			if !sensorCollides(actives, a) {
				weight := a.Weight
				if weight < 0 {
					weight = -weight
				}
				a.SetLocation(a.Location().Add(w.Gravity.Scale(weight)))
			}
			a.SetLocation(a.Location().Add(a.Force))
		}

		a.Force = geom.Vec2{X: decay(a.Force.X), Y: decay(a.Force.Y)}

		collisions = collisions[:0]
		for _, b := range actives {
			if b != a && a.Bounds.Intersects(b.Bounds) {
				collisions = append(collisions, b)
			}
		}
		stats.contacts += len(collisions)

		for _, b := range collisions {
			switch {
			case b.Trigger && a.OnTriggerCollision != nil:
				a.OnTriggerCollision(b)
			case a.OnCollision != nil:
				a.OnCollision(b, b.Force, b.Direction())
			}
			ResolveCollision(a, b)
		}
	}

	if w.debug {
		stats.elapsed = time.Since(start)
		w.debugLog(dt, stats)
	}
}

func (w *World) debugLog(dt float64, stats tickStats) {
	w.ctx.Log().Debug("physics tick",
		zap.Float64("dt", dt),
		zap.Int("bodies", len(w.bodies)),
		zap.Int("active", stats.active),
		zap.Int("contacts", stats.contacts),
		zap.Duration("elapsed", stats.elapsed))
}

// actives returns the enabled bodies inside the work area.
func (w *World) actives() []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b.Enabled && w.WorkArea.Intersects(b.Bounds) {
			out = append(out, b)
		}
	}
	return out
}

// sensorCollides reports whether b's ground probe touches any other
// non-trigger body in set.
func sensorCollides(set []*Body, b *Body) bool {
	sensor := b.Sensor()
	for _, o := range set {
		if o != b && !o.Trigger && sensor.Intersects(o.Bounds) {
			return true
		}
	}
	return false
}

// decay moves v half a unit toward zero without crossing it.
func decay(v float64) float64 {
	switch {
	case v > forceDecay:
		return v - forceDecay
	case v < -forceDecay:
		return v + forceDecay
	default:
		return 0
	}
}

// ResolveCollision pushes a out of b along the axis of least penetration.
// Triggers and bodies on another Z layer (unless b discards Z) get no
// response. Fixed and trigger bodies are never moved, but a body whose
// ground probe touches b still has its vertical force cancelled.
func ResolveCollision(a, b *Body) {
	if a == nil || b == nil || a == b {
		return
	}
	ix := geom.Intersect(a.Bounds, b.Bounds)
	if ix.IsEmpty() {
		return
	}
	if b.Trigger || (!b.ZDiscard && a.Z != b.Z) {
		return
	}

	delta := a.Location()
	switch {
	case ix.Height < ix.Width:
		if ix.Top() == a.Bounds.Top() {
			delta.Y += float64(ix.Height)
		} else if ix.Bottom() == a.Bounds.Bottom() {
			delta.Y -= float64(ix.Height)
		}
	case ix.Height > ix.Width:
		if ix.Left() == a.Bounds.Left() {
			delta.X += float64(ix.Width)
		} else if ix.Right() == a.Bounds.Right() {
			delta.X -= float64(ix.Width)
		}
	default:
		// Square overlap: every corner of a inside b contributes, so a box
		// swallowing several corners gets the corrections summed.
		w, h := float64(ix.Width), float64(ix.Height)
		l, r := float64(a.Bounds.Left()), float64(a.Bounds.Right())
		t, bt := float64(a.Bounds.Top()), float64(a.Bounds.Bottom())
		if geom.PointInRect(geom.Vec2{X: l, Y: t}, b.Bounds) {
			delta.X += w
			delta.Y += h
		}
		if geom.PointInRect(geom.Vec2{X: r, Y: t}, b.Bounds) {
			delta.X -= w
			delta.Y += h
		}
		if geom.PointInRect(geom.Vec2{X: l, Y: bt}, b.Bounds) {
			delta.X += w
			delta.Y -= h
		}
		if geom.PointInRect(geom.Vec2{X: r, Y: bt}, b.Bounds) {
			delta.X -= w
			delta.Y -= h
		}
	}

	if !a.Fixed && !a.Trigger {
		a.SetLocation(delta)
	}
	if a.Sensor().Intersects(b.Bounds) {
		a.Force.Y = 0
	}
}

// Draw renders every body's debug box when the world is visible.
func (w *World) Draw(o engine.Overlay) {
	if !w.Visible {
		return
	}
	for _, b := range w.bodies {
		b.Draw(o)
	}
}
