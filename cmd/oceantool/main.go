// oceantool is a headless CLI for inspecting and benchmarking ocean surfaces.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/smarkuck/Tessendorf-Waves/internal/config"
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/debug"
	"github.com/smarkuck/Tessendorf-Waves/internal/logger"
	"github.com/smarkuck/Tessendorf-Waves/pkg/ocean"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "bench":
		err = cmdBench(args)
	case "snapshot", "snap":
		err = cmdSnapshot(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oceantool - Tessendorf ocean surface utility

Usage:
  oceantool <command> [options]

Commands:
  info                         Show parameters and mesh layout
  bench [-frames N]            Time SetHeightsAtTime + GenerateNormals per frame
  snapshot [-t secs] [-o file] Write the height field as a grayscale PNG

Shared options:
  -config file   YAML config whose ocean section is used as the base
  -samples N     Samples per side (power of two)
  -wind V        Wind speed in m/s
  -amplitude A   Wave amplitude constant
  -size L        Tile width and length in meters
  -seed S        Spectrum seed (0 = clock)
  -v             Debug logging

Examples:
  oceantool info -samples 128
  oceantool bench -frames 500 -wind 30
  oceantool snapshot -t 12.5 -seed 7 -o sea.png`)
}

// oceanFlags are the parameter overrides shared by every command.
type oceanFlags struct {
	configPath string
	samples    int
	wind       float64
	amplitude  float64
	size       float64
	seed       uint64
	verbose    bool
}

func (f *oceanFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.IntVar(&f.samples, "samples", 0, "Samples per side (power of two)")
	fs.Float64Var(&f.wind, "wind", 0, "Wind speed in m/s")
	fs.Float64Var(&f.amplitude, "amplitude", 0, "Wave amplitude constant")
	fs.Float64Var(&f.size, "size", 0, "Tile width and length in meters")
	fs.Uint64Var(&f.seed, "seed", 0, "Spectrum seed (0 = clock)")
	fs.BoolVar(&f.verbose, "v", false, "Debug logging")
}

// build resolves the flags into a configured ocean and sets up logging.
func (f *oceanFlags) build() (*ocean.Ocean, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(f.configPath); err != nil {
			return nil, err
		}
	}

	oc := &cfg.Ocean
	if f.samples > 0 {
		oc.SamplesX, oc.SamplesY = f.samples, f.samples
	}
	if f.wind > 0 {
		oc.WindSpeed = f.wind
	}
	if f.amplitude > 0 {
		oc.Amplitude = f.amplitude
	}
	if f.size > 0 {
		oc.DomainWidth, oc.DomainLength = f.size, f.size
	}
	if f.seed != 0 {
		oc.Seed = f.seed
	}

	lc := config.LoggingConfig{Level: "warn", Console: true}
	if f.verbose {
		lc.Level = "debug"
	}
	if err := logger.Init(lc); err != nil {
		return nil, err
	}

	start := time.Now()
	o, err := ocean.New(oc.Params(), oc.Options()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("ocean built", zap.Duration("elapsed", time.Since(start)))
	return o, nil
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	var of oceanFlags
	of.register(fs)
	fs.Parse(args)

	o, err := of.build()
	if err != nil {
		return err
	}
	defer o.Close()

	p := o.Params()
	fmt.Printf("Domain:       %g x %g m\n", p.DomainWidth, p.DomainLength)
	fmt.Printf("Samples:      %d x %d\n", p.SamplesX, p.SamplesY)
	fmt.Printf("Wind speed:   %g m/s\n", p.WindSpeed)
	fmt.Printf("Min wave:     %g m\n", p.MinWaveSize)
	fmt.Printf("Amplitude:    %g\n", p.Amplitude)
	if seed, ok := o.Seed(); ok {
		fmt.Printf("Seed:         %d\n", seed)
	}
	fmt.Printf("Vertices:     %d\n", o.VertexCount())
	fmt.Printf("Strips:       %d x %d vertices\n", o.Strips(), o.StripLength())
	fmt.Printf("Buffer size:  %d bytes (positions + normals)\n", 2*3*4*o.VertexCount())
	return nil
}

func cmdBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	var of oceanFlags
	of.register(fs)
	frames := fs.Int("frames", 200, "Number of frames to simulate")
	step := fs.Float64("dt", 1.0/60, "Simulated seconds per frame")
	fs.Parse(args)

	if *frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", *frames)
	}

	o, err := of.build()
	if err != nil {
		return err
	}
	defer o.Close()

	mesh, _ := o.GenerateMesh()
	durations := make([]float64, *frames)

	for i := range durations {
		start := time.Now()
		if err := o.SetHeightsAtTime(mesh, float64(i)*(*step)); err != nil {
			return err
		}
		if _, err := o.GenerateNormals(mesh); err != nil {
			return err
		}
		durations[i] = float64(time.Since(start)) / float64(time.Millisecond)
	}

	mean := floats.Sum(durations) / float64(len(durations))
	p := o.Params()
	fmt.Printf("%dx%d samples, %d frames\n", p.SamplesX, p.SamplesY, *frames)
	fmt.Printf("ms/frame: mean %.3f  min %.3f  max %.3f\n", mean, floats.Min(durations), floats.Max(durations))
	if mean > 0 {
		fmt.Printf("max rate: %.1f fps\n", 1000/mean)
	}
	return nil
}

func cmdSnapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	var of oceanFlags
	of.register(fs)
	t := fs.Float64("t", 0, "Simulation time in seconds")
	out := fs.String("o", "ocean.png", "Output PNG path")
	fs.Parse(args)

	o, err := of.build()
	if err != nil {
		return err
	}
	defer o.Close()

	mesh, _ := o.GenerateMesh()
	if err := o.SetHeightsAtTime(mesh, *t); err != nil {
		return err
	}

	p := o.Params()
	cols, rows := p.SamplesX, p.SamplesY
	heights := make([]float64, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			heights[row*cols+col] = o.HeightAt(col, row)
		}
	}

	img, err := debug.Heightmap(heights, cols, rows)
	if err != nil {
		return err
	}
	if err := debug.WritePNG(*out, img); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%dx%d, t=%gs)\n", *out, cols, rows, *t)
	fmt.Printf("Height: min %.4f  max %.4f  mean %.4f\n",
		floats.Min(heights), floats.Max(heights), floats.Sum(heights)/float64(len(heights)))
	return nil
}
