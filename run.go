package bramble

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bramble/engine"
	"github.com/phanxgames/bramble/geom"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the fixed update rate. Zero keeps ebiten's default of 60.
	TPS int
	// Resizable lets the user resize the window. The logical screen size
	// stays Width x Height.
	Resizable bool
}

// WindowRunConfig builds a RunConfig from the window section of cfg.
func WindowRunConfig(cfg engine.Config) RunConfig {
	return RunConfig{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		TPS:    cfg.Window.TPS,
	}
}

// Run opens a window and runs g until the window is closed or g.Quit is
// called. g is closed before Run returns.
func Run(g *Game, cfg RunConfig) error {
	if g == nil {
		panic("bramble: cannot run nil game")
	}
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}

func engineRect(cfg engine.Config) geom.Rect {
	return geom.Rect{Width: cfg.Window.Width, Height: cfg.Window.Height}
}
