// Package engine holds the collaborators the physics and scene packages are
// handed at construction time: the frame clock, the viewport used for
// visibility culling, the debug overlay renderer, the content cache, and the
// logger. Bundling them in a Context replaces process-wide singletons.
package engine

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/phanxgames/bramble/geom"
)

// Clock supplies the elapsed time, in seconds, since the previous tick.
type Clock interface {
	Delta() float64
}

// Viewport reports the world-space area currently on screen.
type Viewport interface {
	ScreenBounds() geom.Rect
}

// Overlay draws debug primitives. Bodies and rays draw through it so they
// can be rendered onto an ebiten image or recorded in tests.
type Overlay interface {
	DrawRect(r geom.Rect, stroke, fill color.RGBA)
	DrawLine(a, b geom.Vec2, c color.RGBA)
}

// ContentUnloader releases loaded textures and fonts.
type ContentUnloader interface {
	Unload()
}

// Locator is anything with a world-space position the camera can follow.
type Locator interface {
	Location() geom.Vec2
}

// Context bundles the engine collaborators. Any field may be nil; the
// consumers treat a nil collaborator as "not available".
type Context struct {
	Clock    Clock
	Viewport Viewport
	Content  ContentUnloader
	Logger   *zap.Logger
}

// Log returns the configured logger, or a no-op logger when none is set.
func (c Context) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Delta returns the clock's delta, or 0 when no clock is set.
func (c Context) Delta() float64 {
	if c.Clock == nil {
		return 0
	}
	return c.Clock.Delta()
}

// StaticViewport is a fixed screen-bounds rectangle.
type StaticViewport geom.Rect

// ScreenBounds returns the rectangle itself.
func (v StaticViewport) ScreenBounds() geom.Rect { return geom.Rect(v) }
