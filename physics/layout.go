package physics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/bramble/geom"
)

// BodySpec describes one body in a level layout.
type BodySpec struct {
	Name     string  `yaml:"name"`
	X        int     `yaml:"x"`
	Y        int     `yaml:"y"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Weight   float64 `yaml:"weight"`
	Fixed    bool    `yaml:"fixed"`
	Trigger  bool    `yaml:"trigger"`
	Z        int     `yaml:"z"`
	ZDiscard bool    `yaml:"z_discard"`
}

// Layout is level geometry loaded from YAML. Gravity and WorkArea are nil
// when the file leaves them out.
type Layout struct {
	Gravity  *geom.Vec2 `yaml:"gravity"`
	WorkArea *geom.Rect `yaml:"work_area"`
	Bodies   []BodySpec `yaml:"bodies"`
}

// LoadLayoutFile reads and parses a layout file.
func LoadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	l, err := LoadLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// LoadLayout parses YAML layout data.
func LoadLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	for i, b := range l.Bodies {
		if b.Width < 0 || b.Height < 0 {
			return nil, fmt.Errorf("body %d (%q): negative size %dx%d", i, b.Name, b.Width, b.Height)
		}
	}
	if l.WorkArea != nil && (l.WorkArea.Width < 0 || l.WorkArea.Height < 0) {
		return nil, fmt.Errorf("work area: negative size %dx%d", l.WorkArea.Width, l.WorkArea.Height)
	}
	return &l, nil
}

// Populate creates the layout's bodies in w, in file order, and applies the
// layout's gravity and work area when set. Each body's Tag is its name.
func (w *World) Populate(l *Layout) []*Body {
	if l == nil {
		return nil
	}
	if l.Gravity != nil {
		w.Gravity = *l.Gravity
	}
	if l.WorkArea != nil {
		w.WorkArea = *l.WorkArea
	}
	out := make([]*Body, 0, len(l.Bodies))
	for _, s := range l.Bodies {
		b := w.NewBody(geom.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}, s.Weight, s.Fixed)
		b.Trigger = s.Trigger
		b.Z = s.Z
		b.ZDiscard = s.ZDiscard
		b.Tag = s.Name
		out = append(out, b)
	}
	return out
}
