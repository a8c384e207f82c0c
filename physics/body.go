package physics

import (
	"fmt"
	"image/color"

	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/geom"
)

// CollisionHandler is called when a body overlaps a non-trigger body. force
// and direction are the other body's own force and heading.
type CollisionHandler func(other *Body, force geom.Vec2, direction float64)

// TriggerHandler is called when a body overlaps a trigger.
type TriggerHandler func(trigger *Body)

// HitHandler is called when an explosion or ray reaches the body.
type HitHandler func(source any, force, direction float64)

// bodyIDCounter is a plain counter (no atomic, the world is single-threaded).
var bodyIDCounter uint32

func nextBodyID() uint32 {
	bodyIDCounter++
	return bodyIDCounter
}

// Body is an axis-aligned box taking part in the simulation. Bodies are
// created with World.NewBody and belong to that world until removed.
type Body struct {
	ID     uint32
	Bounds geom.Rect
	Weight float64
	Force  geom.Vec2

	// Fixed bodies are never moved by gravity, force, or collision response.
	Fixed bool
	// Trigger bodies report overlaps but never push or get pushed.
	Trigger bool
	Enabled bool

	// Z is the collision layer. Bodies only respond to bodies on the same
	// layer unless the other body sets ZDiscard.
	Z        int
	ZDiscard bool

	Tag any

	OnCollision        CollisionHandler
	OnTriggerCollision TriggerHandler
	OnHit              HitHandler

	world        *World
	lastLocation geom.Vec2
	heading      float64
}

// World returns the world that owns b, or nil once it has been removed.
func (b *Body) World() *World { return b.world }

// Location returns the centre of the bounds.
func (b *Body) Location() geom.Vec2 { return b.Bounds.Center() }

// SetLocation moves the bounds so their centre sits at v, truncated to
// whole pixels.
func (b *Body) SetLocation(v geom.Vec2) {
	b.lastLocation = b.Location()
	b.Bounds.X = int(v.X) - b.Bounds.Width/2
	b.Bounds.Y = int(v.Y) - b.Bounds.Height/2
	if cur := b.Location(); cur != b.lastLocation {
		b.heading = geom.Angle(b.lastLocation, cur)
	}
}

// Size returns the bounds width and height.
func (b *Body) Size() geom.Vec2 {
	return geom.Vec2{X: float64(b.Bounds.Width), Y: float64(b.Bounds.Height)}
}

// SetSize resizes the bounds keeping the top-left corner.
func (b *Body) SetSize(size geom.Vec2) {
	b.Bounds.Width = int(size.X)
	b.Bounds.Height = int(size.Y)
}

// ApplyForce replaces the current force.
func (b *Body) ApplyForce(f geom.Vec2) {
	b.Force = f
}

// ApplyForceAngle sets the force from a magnitude and a direction in
// degrees. The result points from the displaced location back to the
// current one, so positive magnitudes push against direction.
func (b *Body) ApplyForceAngle(magnitude, direction float64) {
	loc := b.Location()
	b.ApplyForce(loc.Sub(geom.Move(loc, int(magnitude), direction)))
}

// Move teleports the body distance pixels along direction.
func (b *Body) Move(distance int, direction float64) {
	b.SetLocation(geom.Move(b.Location(), distance, direction))
}

// Direction returns the heading in degrees of the last location change that
// actually moved the body, or 0 if it never moved.
func (b *Body) Direction() float64 { return b.heading }

// DirectionVector returns the displacement of the last location change.
func (b *Body) DirectionVector() geom.Vec2 {
	return b.Location().Sub(b.lastLocation)
}

// Sensor is the one pixel high ground probe under the body, inset 8 pixels
// on each side. For bodies narrower than 16 pixels the width is negative:
// the probe's left edge lies right of its right edge, and it touches any
// body spanning both.
func (b *Body) Sensor() geom.Rect {
	return geom.Rect{
		X:      b.Bounds.Left() + 8,
		Y:      b.Bounds.Bottom(),
		Width:  b.Bounds.Width - 16,
		Height: 1,
	}
}

func (b *Body) String() string {
	return fmt.Sprintf("Body{ID: %d, Location: %v, Bounds: %v, Direction: %.2f}",
		b.ID, b.Location(), b.Bounds, b.Direction())
}

var (
	triggerColor  = color.RGBA{255, 255, 0, 255}
	fixedColor    = color.RGBA{0, 0, 255, 255}
	enabledColor  = color.RGBA{0, 255, 0, 255}
	disabledColor = color.RGBA{255, 0, 0, 255}
)

// Draw renders the debug box for b. Nothing is drawn unless the owning
// world is visible.
func (b *Body) Draw(o engine.Overlay) {
	if o == nil || b.world == nil || !b.world.Visible {
		return
	}
	var stroke color.RGBA
	switch {
	case b.Trigger && b.Enabled:
		stroke = triggerColor
	case b.Fixed && b.Enabled:
		stroke = fixedColor
	case b.Enabled:
		stroke = enabledColor
	default:
		stroke = disabledColor
	}
	// Half-transparent fill; color.RGBA is alpha-premultiplied.
	fill := color.RGBA{stroke.R / 2, stroke.G / 2, stroke.B / 2, 128}
	o.DrawRect(b.Bounds, stroke, fill)
}
