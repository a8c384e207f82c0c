package engine

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/bramble/geom"
)

// Config is the engine configuration, usually read from a TOML file.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Physics PhysicsConfig `toml:"physics"`
	Logging LoggingConfig `toml:"logging"`
	Debug   bool          `toml:"debug"` // physics overlay, FPS counter, per-tick stats
}

// WindowConfig is the [window] section.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`
}

// PhysicsConfig is the [physics] section.
type PhysicsConfig struct {
	Gravity geom.Vec2 `toml:"gravity"`
	// WorkArea defaults to the window when left empty.
	WorkArea geom.Rect `toml:"work_area"`
}

// LoggingConfig is the [logging] section.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// LoadConfig reads a TOML file over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data over DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Physics.WorkArea = geom.Rect{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Physics.WorkArea.IsEmpty() {
		cfg.Physics.WorkArea = geom.Rect{Width: cfg.Window.Width, Height: cfg.Window.Height}
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "bramble",
			Width:  640,
			Height: 480,
			TPS:    60,
		},
		Physics: PhysicsConfig{
			Gravity:  geom.Vec2{X: 0, Y: 1},
			WorkArea: geom.Rect{Width: 640, Height: 480},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
