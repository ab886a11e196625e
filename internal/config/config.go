// Package config handles viewer and simulation configuration.
package config

import (
	"fmt"

	"github.com/smarkuck/Tessendorf-Waves/pkg/ocean"
)

// Config holds all settings.
type Config struct {
	Ocean    OceanConfig    `yaml:"ocean"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OceanConfig holds the sea state parameters.
type OceanConfig struct {
	DomainWidth  float64 `yaml:"domain_width"`
	DomainLength float64 `yaml:"domain_length"`
	SamplesX     int     `yaml:"samples_x"`
	SamplesY     int     `yaml:"samples_y"`
	WindSpeed    float64 `yaml:"wind_speed"`
	MinWaveSize  float64 `yaml:"min_wave_size"`
	Amplitude    float64 `yaml:"amplitude"`
	Seed         uint64  `yaml:"seed"` // 0 = seed from the clock
}

// ViewerConfig holds camera and scene settings.
type ViewerConfig struct {
	Tiles            int        `yaml:"tiles"`      // Tiles per side
	TimeScale        float64    `yaml:"time_scale"` // Simulation seconds per wall-clock second
	CameraFar        float32    `yaml:"camera_far"`
	FOV              float32    `yaml:"fov"` // Vertical, degrees
	FPSLimit         int        `yaml:"fps_limit"`
	Start            [3]float32 `yaml:"start"`
	PlayerSpeed      float32    `yaml:"player_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	LineMode         bool       `yaml:"line_mode"`
	SunAzimuth       float32    `yaml:"sun_azimuth"`   // Degrees about +Y from +Z
	SunElevation     float32    `yaml:"sun_elevation"` // Degrees above the horizon
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AudioConfig holds ambient sound settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	AmbientPath string  `yaml:"ambient_path"` // WAV file looped in the background
	Volume      float64 `yaml:"volume"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := ocean.DefaultParams()
	return &Config{
		Ocean: OceanConfig{
			DomainWidth:  p.DomainWidth,
			DomainLength: p.DomainLength,
			SamplesX:     p.SamplesX,
			SamplesY:     p.SamplesY,
			WindSpeed:    p.WindSpeed,
			MinWaveSize:  p.MinWaveSize,
			Amplitude:    p.Amplitude,
		},
		Viewer: ViewerConfig{
			Tiles:            1,
			TimeScale:        0.6,
			CameraFar:        1000,
			FOV:              45,
			FPSLimit:         100,
			Start:            [3]float32{-1000, -65, -1000},
			PlayerSpeed:      20,
			MouseSensitivity: 0.01,
			SunAzimuth:       200,
			SunElevation:     18,
		},
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
			Console:    true,
		},
	}
}

// Params converts the ocean section to simulation parameters.
func (c OceanConfig) Params() ocean.Params {
	return ocean.Params{
		DomainWidth:  c.DomainWidth,
		DomainLength: c.DomainLength,
		SamplesX:     c.SamplesX,
		SamplesY:     c.SamplesY,
		WindSpeed:    c.WindSpeed,
		MinWaveSize:  c.MinWaveSize,
		Amplitude:    c.Amplitude,
	}
}

// Options returns the construction options implied by the ocean section.
func (c OceanConfig) Options() []ocean.Option {
	if c.Seed == 0 {
		return nil
	}
	return []ocean.Option{ocean.WithSeed(c.Seed)}
}

// Validate checks values that would otherwise fail deep inside the viewer.
func (c *Config) Validate() error {
	if err := c.Ocean.Params().Validate(); err != nil {
		return fmt.Errorf("ocean: %w", err)
	}
	if c.Viewer.Tiles < 1 {
		return fmt.Errorf("viewer: tiles must be at least 1, got %d", c.Viewer.Tiles)
	}
	if c.Viewer.CameraFar <= 0 {
		return fmt.Errorf("viewer: camera_far must be positive, got %g", c.Viewer.CameraFar)
	}
	return nil
}
