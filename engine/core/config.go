package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// EyeConfig is the near-plane rect of one eye, as tangents of the half angles.
type EyeConfig struct {
	TopLeft     [2]float32 `toml:"top_left"`
	BottomRight [2]float32 `toml:"bottom_right"`
}

func (e EyeConfig) empty() bool {
	return e.TopLeft[0] == e.BottomRight[0] || e.TopLeft[1] == e.BottomRight[1]
}

type EyesConfig struct {
	Left  EyeConfig `toml:"left"`
	Right EyeConfig `toml:"right"`
}

type ProjectionConfig struct {
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

// TrackingConfig places the tracking origin. Angles are radians, offset is metres.
type TrackingConfig struct {
	Yaw    float64    `toml:"yaw"`
	Pitch  float64    `toml:"pitch"`
	Roll   float64    `toml:"roll"`
	Offset [3]float64 `toml:"offset"`
}

type Config struct {
	LogLevel   string           `toml:"log_level"`
	Watch      bool             `toml:"watch"`
	Projection ProjectionConfig `toml:"projection"`
	Eyes       EyesConfig       `toml:"eyes"`
	Tracking   TrackingConfig   `toml:"tracking"`
}

// DefaultConfig returns a symmetric 90 degree frustum for both eyes.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Projection: ProjectionConfig{
			Near: 0.1,
			Far:  100.0,
		},
		Eyes: EyesConfig{
			Left:  EyeConfig{TopLeft: [2]float32{-1, -1}, BottomRight: [2]float32{1, 1}},
			Right: EyeConfig{TopLeft: [2]float32{-1, -1}, BottomRight: [2]float32{1, 1}},
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Projection.Near <= 0 {
		return fmt.Errorf("%w: projection.near must be > 0, got %g", ErrInvalidConfig, c.Projection.Near)
	}
	if c.Projection.Far <= c.Projection.Near {
		return fmt.Errorf("%w: projection.far (%g) must be greater than projection.near (%g)", ErrInvalidConfig, c.Projection.Far, c.Projection.Near)
	}
	if c.Eyes.Left.empty() {
		return fmt.Errorf("%w: eyes.left has an empty rect", ErrInvalidConfig)
	}
	if c.Eyes.Right.empty() {
		return fmt.Errorf("%w: eyes.right has an empty rect", ErrInvalidConfig)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrInvalidLogLevel, c.LogLevel)
		}
	}
	return nil
}
