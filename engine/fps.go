package engine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSCounter counts drawn frames over a rolling one-second window.
type FPSCounter struct {
	frames  int
	rate    int
	elapsed float64
	img     *ebiten.Image
}

// Update advances the window by dt seconds. Call it once per drawn frame.
func (f *FPSCounter) Update(dt float64) {
	f.frames++
	f.elapsed += dt
	if f.elapsed >= 1 {
		f.elapsed -= 1
		f.rate = f.frames
		f.frames = 0
	}
}

// FPS returns the frame count of the last completed window.
func (f *FPSCounter) FPS() int {
	return f.rate
}

// Draw prints the counter and ebiten's measured rates in the top-left corner.
func (f *FPSCounter) Draw(screen *ebiten.Image) {
	// 120x48 is enough for three short lines of debug text.
	if f.img == nil {
		f.img = ebiten.NewImage(120, 48)
	}
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %d\nActual: %.1f\nTPS: %.1f",
		f.rate, ebiten.ActualFPS(), ebiten.ActualTPS()))
	screen.DrawImage(f.img, nil)
}
