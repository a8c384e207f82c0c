package engine

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/bramble/geom"
)

// Camera maps world space onto a screen viewport. It implements Viewport, so
// a Stage culls against whatever the camera currently shows.
type Camera struct {
	// Center is the world point drawn at the middle of the viewport.
	Center geom.Vec2
	// Zoom scales world units to pixels. 1 draws the world unscaled.
	Zoom float64
	// Viewport is the screen rectangle the camera renders into.
	Viewport geom.Rect

	follow *follow
	scroll *scroll
	bounds *geom.Rect
}

type follow struct {
	target Locator
	offset geom.Vec2
	lerp   float64
}

// scroll eases Center toward a fixed point, one tween per axis.
type scroll struct {
	x, y         *gween.Tween
	doneX, doneY bool
}

func (s *scroll) step(c *geom.Vec2, dt float32) bool {
	if !s.doneX {
		v, done := s.x.Update(dt)
		c.X, s.doneX = float64(v), done
	}
	if !s.doneY {
		v, done := s.y.Update(dt)
		c.Y, s.doneY = float64(v), done
	}
	return s.doneX && s.doneY
}

// NewCamera returns a camera whose world and screen coordinates coincide.
func NewCamera(viewport geom.Rect) *Camera {
	return &Camera{
		Center:   viewport.Center(),
		Zoom:     1,
		Viewport: viewport,
	}
}

// Follow moves the camera toward target+offset every Update. lerp is the
// fraction of the remaining distance covered per update; 1 snaps.
func (c *Camera) Follow(target Locator, offset geom.Vec2, lerp float64) {
	c.follow = &follow{target: target, offset: offset, lerp: lerp}
}

// Unfollow stops tracking.
func (c *Camera) Unfollow() { c.follow = nil }

// ScrollTo eases Center to p over duration seconds. Following continues to
// apply, so callers usually Unfollow first.
func (c *Camera) ScrollTo(p geom.Vec2, duration float32, fn ease.TweenFunc) {
	c.scroll = &scroll{
		x: gween.New(float32(c.Center.X), float32(p.X), duration, fn),
		y: gween.New(float32(c.Center.Y), float32(p.Y), duration, fn),
	}
}

// Scrolling reports whether a ScrollTo is still running.
func (c *Camera) Scrolling() bool { return c.scroll != nil }

// SetBounds keeps the visible area inside bounds.
func (c *Camera) SetBounds(bounds geom.Rect) { c.bounds = &bounds }

// ClearBounds removes the limit set by SetBounds.
func (c *Camera) ClearBounds() { c.bounds = nil }

// Bounds returns the clamp rectangle and whether one is set.
func (c *Camera) Bounds() (geom.Rect, bool) {
	if c.bounds == nil {
		return geom.Rect{}, false
	}
	return *c.bounds, true
}

// Update applies following, then scrolling, then the bounds clamp.
func (c *Camera) Update(dt float64) {
	if f := c.follow; f != nil {
		goal := f.target.Location().Add(f.offset)
		c.Center = c.Center.Add(goal.Sub(c.Center).Scale(f.lerp))
	}
	if c.scroll != nil && c.scroll.step(&c.Center, float32(dt)) {
		c.scroll = nil
	}
	if c.bounds != nil {
		half := c.halfExtent()
		c.Center.X = clampAxis(c.Center.X, c.bounds.X, c.bounds.Width, half.X)
		c.Center.Y = clampAxis(c.Center.Y, c.bounds.Y, c.bounds.Height, half.Y)
	}
}

// halfExtent is half the visible area in world units.
func (c *Camera) halfExtent() geom.Vec2 {
	return geom.Vec2{
		X: float64(c.Viewport.Width) / (2 * c.Zoom),
		Y: float64(c.Viewport.Height) / (2 * c.Zoom),
	}
}

// clampAxis keeps a centre coordinate at least half away from both edges of
// [lo, lo+size]. A span narrower than the view centres on it.
func clampAxis(v float64, lo, size int, half float64) float64 {
	minV := float64(lo) + half
	maxV := float64(lo+size) - half
	if minV > maxV {
		return float64(lo) + float64(size)/2
	}
	return math.Max(minV, math.Min(v, maxV))
}

// WorldToScreen maps a world point to viewport pixels.
func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return c.Viewport.Center().Add(p.Sub(c.Center).Scale(c.Zoom))
}

// ScreenToWorld maps viewport pixels to a world point.
func (c *Camera) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	return c.Center.Add(p.Sub(c.Viewport.Center()).Scale(1 / c.Zoom))
}

// ScreenBounds returns the visible world rectangle, grown to whole pixels.
func (c *Camera) ScreenBounds() geom.Rect {
	half := c.halfExtent()
	left := int(math.Floor(c.Center.X - half.X))
	top := int(math.Floor(c.Center.Y - half.Y))
	right := int(math.Ceil(c.Center.X + half.X))
	bottom := int(math.Ceil(c.Center.Y + half.Y))
	return geom.Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
