package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravbox/internal/physics"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	// Width and Height are fixed: the gravity center sits at a constant
	// point of this window.
	Width            = 1920
	Height           = 980
	DefaultFrameRate = 60
)

// Config holds display settings only; physics constants are fixed.
type Config struct {
	Window    WindowConfig `yaml:"window"`
	FrameRate int          `yaml:"frame_rate"`
	Colors    ColorConfig  `yaml:"colors"`
}

type WindowConfig struct {
	Title string `yaml:"title"`
	VSync bool   `yaml:"vsync"`
}

// ColorConfig holds hex colors such as "#ff0000".
type ColorConfig struct {
	Background   string `yaml:"background"`
	Outline      string `yaml:"outline"`
	Velocity     string `yaml:"velocity"`
	Acceleration string `yaml:"acceleration"`
	Trail        string `yaml:"trail"`
}

// DefaultConfig parses the embedded defaults.
func DefaultConfig() *Config {
	cfg, err := Parse(defaultsYAML, fallback())
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

func fallback() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "gravbox",
			VSync: true,
		},
		FrameRate: DefaultFrameRate,
		Colors: ColorConfig{
			Background:   "#000000",
			Outline:      "#ffffff",
			Velocity:     "#0000ff",
			Acceleration: "#ff0000",
			Trail:        "#ffffff",
		},
	}
}

// Parse overlays data onto base and validates the result. Unknown keys are
// rejected.
func Parse(data []byte, base *Config) (*Config, error) {
	cfg := *base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, DefaultConfig())
}

func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: frame rate must be positive, got %d", c.FrameRate)
	}
	for name, hex := range c.Colors.named() {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("config: color %s: %w", name, err)
		}
	}
	return nil
}

func (cc ColorConfig) named() map[string]string {
	return map[string]string{
		"background":   cc.Background,
		"outline":      cc.Outline,
		"velocity":     cc.Velocity,
		"acceleration": cc.Acceleration,
		"trail":        cc.Trail,
	}
}

// ParseColor converts a hex string to an opaque RGBA color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Background must only be called on a validated config.
func (c *Config) Background() color.RGBA {
	return mustColor(c.Colors.Background)
}

// Palette must only be called on a validated config.
func (c *Config) Palette() physics.Palette {
	return physics.Palette{
		Outline:      mustColor(c.Colors.Outline),
		Velocity:     mustColor(c.Colors.Velocity),
		Acceleration: mustColor(c.Colors.Acceleration),
		Trail:        mustColor(c.Colors.Trail),
	}
}
