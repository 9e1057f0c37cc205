package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
log_level = "debug"
watch = true

[projection]
near = 0.05
far = 250.0

[eyes.left]
top_left = [-1.39, -1.47]
bottom_right = [1.24, 1.17]

[eyes.right]
top_left = [-1.24, -1.47]
bottom_right = [1.39, 1.17]

[tracking]
yaw = 1.5707963
offset = [0.0, 1.6, 0.0]
`

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Watch)
	assert.Equal(t, float32(0.1), cfg.Projection.Near)
	assert.Equal(t, float32(100), cfg.Projection.Far)
	assert.Equal(t, cfg.Eyes.Left, cfg.Eyes.Right)
	assert.Equal(t, TrackingConfig{}, cfg.Tracking)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Watch)
	assert.Equal(t, ProjectionConfig{Near: 0.05, Far: 250}, cfg.Projection)
	assert.Equal(t, [2]float32{-1.39, -1.47}, cfg.Eyes.Left.TopLeft)
	assert.Equal(t, [2]float32{1.39, 1.17}, cfg.Eyes.Right.BottomRight)
	assert.InDelta(t, 1.5707963, cfg.Tracking.Yaw, 1e-12)
	assert.Zero(t, cfg.Tracking.Pitch)
	assert.Equal(t, [3]float64{0, 1.6, 0}, cfg.Tracking.Offset)
}

func TestParseConfig_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader("[projection]\nfar = 20.0\n"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Projection.Near, cfg.Projection.Near)
	assert.Equal(t, float32(20), cfg.Projection.Far)
	assert.Equal(t, def.Eyes, cfg.Eyes)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)

	cfg, err = ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"unknown key", "fov = 90\n", ErrInvalidConfig},
		{"unknown table key", "[projection]\nnear = 0.1\naspect = 1.0\n", ErrInvalidConfig},
		{"malformed toml", "[projection\nnear = 0.1\n", ErrInvalidConfig},
		{"wrong type", "[projection]\nnear = \"close\"\n", ErrInvalidConfig},
		{"zero near", "[projection]\nnear = 0.0\n", ErrInvalidConfig},
		{"negative near", "[projection]\nnear = -1.0\n", ErrInvalidConfig},
		{"far before near", "[projection]\nnear = 10.0\nfar = 5.0\n", ErrInvalidConfig},
		{"far equals near", "[projection]\nnear = 1.0\nfar = 1.0\n", ErrInvalidConfig},
		{"empty left rect", "[eyes.left]\ntop_left = [0.5, -1.0]\nbottom_right = [0.5, 1.0]\n", ErrInvalidConfig},
		{"empty right rect", "[eyes.right]\ntop_left = [-1.0, 1.0]\nbottom_right = [1.0, 1.0]\n", ErrInvalidConfig},
		{"bad log level", "log_level = \"chatty\"\n", ErrInvalidLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(strings.NewReader(tt.input))
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParseConfig_UnknownKeyIsNamed(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("[projection]\naspect = 1.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aspect")
}

func TestValidate_ErrorNamesTheEye(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Eyes.Right.BottomRight = cfg.Eyes.Right.TopLeft
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "eyes.right")
}

func TestValidate_EmptyLogLevelIsAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = ""
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "eyes.toml")
		require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, float32(250), cfg.Projection.Far)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file names the path", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[projection]\nnear = -1.0\n"), 0o644))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), path)
	})
}
