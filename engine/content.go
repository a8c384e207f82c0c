package engine

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// ErrContentNotFound is returned when a named asset has not been loaded.
var ErrContentNotFound = errors.New("content not found")

// Content is a named image cache. A state change unloads everything, so
// assets live only as long as the state that loaded them.
type Content struct {
	images map[string]*ebiten.Image
	log    *zap.Logger
}

// NewContent creates an empty cache. logger may be nil.
func NewContent(logger *zap.Logger) *Content {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Content{images: make(map[string]*ebiten.Image), log: logger}
}

// LoadImage reads an image file and stores it under name. Loading a name
// that is already cached returns the cached image without touching disk.
func (c *Content) LoadImage(name, path string) (*ebiten.Image, error) {
	if img, ok := c.images[name]; ok {
		return img, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	c.images[name] = img
	c.log.Debug("content loaded", zap.String("name", name), zap.String("path", path))
	return img, nil
}

// Add stores an already created image under name, replacing any previous one.
func (c *Content) Add(name string, img *ebiten.Image) {
	c.images[name] = img
}

// Image returns the image stored under name.
func (c *Content) Image(name string) (*ebiten.Image, error) {
	img, ok := c.images[name]
	if !ok {
		return nil, fmt.Errorf("image %q: %w", name, ErrContentNotFound)
	}
	return img, nil
}

// Len returns the number of cached images.
func (c *Content) Len() int {
	return len(c.images)
}

// Unload deallocates and forgets every cached image.
func (c *Content) Unload() {
	n := len(c.images)
	for name, img := range c.images {
		if img != nil {
			img.Deallocate()
		}
		delete(c.images, name)
	}
	if n > 0 {
		c.log.Debug("content unloaded", zap.Int("images", n))
	}
}
