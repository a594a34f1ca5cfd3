// Package config loads the game settings from a TOML file laid over defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"
)

var ErrInvalid = errors.New("config: invalid value")

// MinArenaRadius is the tower's outer radius plus the paddle gap and width.
// Smaller arenas put the paddles inside the brick ring.
const MinArenaRadius = 5.5

type Config struct {
	Window WindowConfig `toml:"window"`
	Loop   LoopConfig   `toml:"loop"`
	Camera CameraConfig `toml:"camera"`
	Arena  ArenaConfig  `toml:"arena"`
	Audio  AudioConfig  `toml:"audio"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Title         string `toml:"title"`
	Fullscreen    bool   `toml:"fullscreen"`
	Wireframe     bool   `toml:"wireframe"`
	CullBackFaces bool   `toml:"cull_back_faces"`
}

type LoopConfig struct {
	TickRate float64 `toml:"tick_rate"`
}

type CameraConfig struct {
	FOV       float64    `toml:"fov"`
	Near      float64    `toml:"near"`
	Far       float64    `toml:"far"`
	Position  [3]float64 `toml:"position"`
	Ortho     bool       `toml:"orthographic"`
	OrthoSize float64    `toml:"ortho_size"`
}

type ArenaConfig struct {
	Seed          uint64  `toml:"seed"`
	Radius        float64 `toml:"radius"`
	TowerBase     int     `toml:"tower_base"`
	TowerStack    int     `toml:"tower_stack"`
	BrickStrength int     `toml:"brick_strength"`
	PaddleSpeed   float64 `toml:"paddle_speed"`
	BallSpeed     float64 `toml:"ball_speed"`
	BallRadius    float64 `toml:"ball_radius"`
	Lives         int     `toml:"lives"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

type LogConfig struct {
	Dev   bool   `toml:"dev"`
	Level string `toml:"level"`
}

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Arc Breaker"},
		Loop:   LoopConfig{TickRate: 60},
		Camera: CameraConfig{
			FOV:       45,
			Near:      0.1,
			Far:       1000,
			Position:  [3]float64{0, 14, 14},
			OrthoSize: 24,
		},
		Arena: ArenaConfig{
			Seed:          1,
			Radius:        12,
			TowerBase:     6,
			TowerStack:    3,
			BrickStrength: 3,
			PaddleSpeed:   0.1,
			BallSpeed:     6,
			BallRadius:    0.3,
			Lives:         3,
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.5, SampleRate: 44100},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes TOML from r over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, cfg.Validate()
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks every section and reports the first bad value
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Loop.TickRate <= 0:
		return invalid("tick rate must be positive, got %g", c.Loop.TickRate)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return invalid("camera fov must be in (0, 180), got %g", c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return invalid("camera clip planes must satisfy 0 < near < far, got %g and %g", c.Camera.Near, c.Camera.Far)
	case c.Camera.Ortho && c.Camera.OrthoSize <= 0:
		return invalid("ortho size must be positive, got %g", c.Camera.OrthoSize)
	case c.Arena.TowerBase <= 0 || c.Arena.TowerStack <= 0:
		return invalid("tower must have at least one brick, got %dx%d", c.Arena.TowerBase, c.Arena.TowerStack)
	case c.Arena.BrickStrength < 0:
		return invalid("brick strength must not be negative, got %d", c.Arena.BrickStrength)
	case c.Arena.BallRadius <= 0:
		return invalid("ball radius must be positive, got %g", c.Arena.BallRadius)
	case c.Arena.Lives <= 0:
		return invalid("lives must be positive, got %d", c.Arena.Lives)
	case c.Arena.Radius <= MinArenaRadius:
		return invalid("arena radius must exceed %g to fit the tower and paddles, got %g", MinArenaRadius, c.Arena.Radius)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return invalid("audio volume must be in [0, 1], got %g", c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return invalid("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return invalid("log level: %v", err)
	}
	return nil
}
