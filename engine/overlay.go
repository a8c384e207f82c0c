package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/bramble/geom"
)

// ScreenOverlay draws debug primitives onto an ebiten image, offset by an
// optional camera so world-space shapes line up with the scene.
type ScreenOverlay struct {
	Target *ebiten.Image
	Camera *Camera
}

// NewOverlay returns an overlay that draws onto target through cam. cam may
// be nil for an identity mapping.
func NewOverlay(target *ebiten.Image, cam *Camera) *ScreenOverlay {
	return &ScreenOverlay{Target: target, Camera: cam}
}

func (o *ScreenOverlay) toScreen(x, y float64) (float32, float32) {
	if o.Camera == nil {
		return float32(x), float32(y)
	}
	p := o.Camera.WorldToScreen(geom.Vec2{X: x, Y: y})
	return float32(p.X), float32(p.Y)
}

func (o *ScreenOverlay) zoom() float32 {
	if o.Camera == nil {
		return 1
	}
	return float32(o.Camera.Zoom)
}

// DrawRect fills r with fill and outlines it with stroke.
func (o *ScreenOverlay) DrawRect(r geom.Rect, stroke, fill color.RGBA) {
	if o.Target == nil {
		return
	}
	x, y := o.toScreen(float64(r.X), float64(r.Y))
	z := o.zoom()
	w, h := float32(r.Width)*z, float32(r.Height)*z
	vector.DrawFilledRect(o.Target, x, y, w, h, fill, false)
	vector.StrokeRect(o.Target, x, y, w, h, 1, stroke, false)
}

// DrawLine draws a one-pixel line from a to b.
func (o *ScreenOverlay) DrawLine(a, b geom.Vec2, c color.RGBA) {
	if o.Target == nil {
		return
	}
	x0, y0 := o.toScreen(a.X, a.Y)
	x1, y1 := o.toScreen(b.X, b.Y)
	vector.StrokeLine(o.Target, x0, y0, x1, y1, 1, c, false)
}
