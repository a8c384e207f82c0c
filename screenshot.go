package bramble

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Screenshot asks for the next drawn frame to be saved as a PNG in
// ScreenshotDir. The file is named after the time and label.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots saves screen once per queued label. Failures are logged
// and the queue is emptied regardless.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 || screen == nil {
		return
	}
	labels := g.screenshotQueue
	g.screenshotQueue = g.screenshotQueue[:0]

	log := g.ctx.Log()
	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		log.Warn("screenshot", zap.String("dir", g.ScreenshotDir), zap.Error(err))
		return
	}

	// image.RGBA is premultiplied like ebiten's pixels, so no conversion.
	frame := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(frame.Pix)

	prefix := time.Now().Format("20060102_150405")
	for _, label := range labels {
		name := prefix + "_" + sanitizeLabel(label) + ".png"
		path := filepath.Join(g.ScreenshotDir, name)
		if err := savePNG(path, frame); err != nil {
			log.Warn("screenshot", zap.String("label", label), zap.Error(err))
			continue
		}
		log.Info("screenshot saved", zap.String("path", path))
	}
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel makes label safe for a file name. Characters other than
// ASCII letters, digits, '-' and '.' become '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.') {
			return r
		}
		return '_'
	}, label)
}
