package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSamples    = flag.Int("samples", 0, "Samples per side (power of two)")
	flagWind       = flag.Float64("wind", 0, "Wind speed in m/s")
	flagAmplitude  = flag.Float64("amplitude", 0, "Wave amplitude constant")
	flagTiles      = flag.Int("tiles", 0, "Ocean tiles per side")
	flagSeed       = flag.Uint64("seed", 0, "Spectrum seed (0 = clock)")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMute       = flag.Bool("mute", false, "Disable ambient sound")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSamples > 0 {
		cfg.Ocean.SamplesX = *flagSamples
		cfg.Ocean.SamplesY = *flagSamples
	}
	if *flagWind > 0 {
		cfg.Ocean.WindSpeed = *flagWind
	}
	if *flagAmplitude > 0 {
		cfg.Ocean.Amplitude = *flagAmplitude
	}
	if *flagTiles > 0 {
		cfg.Viewer.Tiles = *flagTiles
	}
	if *flagSeed != 0 {
		cfg.Ocean.Seed = *flagSeed
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
}
