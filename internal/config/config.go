// Package config resolves the engine's recognized option set from
// defaults, an optional .env file, environment variables, and command
// line flags — in that increasing order of precedence, via a single
// struct, a single Parse, and a single Validate.
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/0x5844/physics2d/internal/collision"
)

// Config is the full recognized option set: population generation,
// worker/tick control, and the sink and boundary-consumer selectors.
type Config struct {
	TotalCircles int
	SpawnSeed    int64

	XSpawnRangeLo, XSpawnRangeHi float64
	YSpawnRangeLo, YSpawnRangeHi float64

	XVelocityRangeLo, XVelocityRangeHi float64
	YVelocityRangeLo, YVelocityRangeHi float64

	RadiusFixed   float64
	RadiusUniform bool
	RadiusLo      float64
	RadiusHi      float64

	MaxWorkers       int
	EmitPerCollision bool
	PauseAfterTick   bool

	Ticks int

	Sink      string
	SinkPath  string
	Visualize string

	EnvFile   string
	SceneFile string
}

// Default returns the engine's built-in defaults, used to seed the flag
// set so every option has a sensible value even when unset.
func Default() Config {
	return Config{
		TotalCircles:     2000,
		SpawnSeed:        1,
		XSpawnRangeLo:    -500,
		XSpawnRangeHi:    500,
		YSpawnRangeLo:    -500,
		YSpawnRangeHi:    500,
		XVelocityRangeLo: -2,
		XVelocityRangeHi: 2,
		YVelocityRangeLo: -2,
		YVelocityRangeHi: 2,
		RadiusFixed:      1,
		MaxWorkers:       defaultWorkers(),
		Ticks:            0,
		Sink:             "log",
		Visualize:        "none",
	}
}

// defaultWorkers queries the hardware thread count and falls back to a
// sentinel of 8 if the host reports zero, since a worker count of zero
// would leave the pool unable to run even the orchestrator's own slice.
func defaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		fmt.Fprintln(os.Stderr, "config: runtime.NumCPU() reported 0 usable threads, falling back to 8")
		return 8
	}
	if n > collision.MaxWorkers {
		return collision.MaxWorkers
	}
	return n
}

// Parse loads .env (if present), applies environment variable overrides,
// then parses command-line flags over the result — flags win.
func Parse(args []string) (Config, error) {
	cfg := Default()

	envFile := ".env"
	for i, a := range args {
		if a == "-env" && i+1 < len(args) {
			envFile = args[i+1]
		}
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}
	cfg.applyEnv()

	fs := flag.NewFlagSet("physics2d", flag.ContinueOnError)
	fs.IntVar(&cfg.TotalCircles, "total-circles", cfg.TotalCircles, "total circle count, split floor(n/2) stationary / ceil(n/2) moving")
	fs.Int64Var(&cfg.SpawnSeed, "spawn-seed", cfg.SpawnSeed, "seed for the deterministic population generator")
	fs.Float64Var(&cfg.XSpawnRangeLo, "x-spawn-lo", cfg.XSpawnRangeLo, "x spawn range lower bound")
	fs.Float64Var(&cfg.XSpawnRangeHi, "x-spawn-hi", cfg.XSpawnRangeHi, "x spawn range upper bound")
	fs.Float64Var(&cfg.YSpawnRangeLo, "y-spawn-lo", cfg.YSpawnRangeLo, "y spawn range lower bound")
	fs.Float64Var(&cfg.YSpawnRangeHi, "y-spawn-hi", cfg.YSpawnRangeHi, "y spawn range upper bound")
	fs.Float64Var(&cfg.XVelocityRangeLo, "x-vel-lo", cfg.XVelocityRangeLo, "x velocity range lower bound")
	fs.Float64Var(&cfg.XVelocityRangeHi, "x-vel-hi", cfg.XVelocityRangeHi, "x velocity range upper bound")
	fs.Float64Var(&cfg.YVelocityRangeLo, "y-vel-lo", cfg.YVelocityRangeLo, "y velocity range lower bound")
	fs.Float64Var(&cfg.YVelocityRangeHi, "y-vel-hi", cfg.YVelocityRangeHi, "y velocity range upper bound")
	fs.Float64Var(&cfg.RadiusFixed, "radius", cfg.RadiusFixed, "fixed radius (ignored if -radius-uniform is set)")
	fs.BoolVar(&cfg.RadiusUniform, "radius-uniform", cfg.RadiusUniform, "sample radius uniformly from [radius-lo, radius-hi)")
	fs.Float64Var(&cfg.RadiusLo, "radius-lo", cfg.RadiusLo, "uniform radius lower bound")
	fs.Float64Var(&cfg.RadiusHi, "radius-hi", cfg.RadiusHi, "uniform radius upper bound")
	fs.IntVar(&cfg.MaxWorkers, "max-workers", cfg.MaxWorkers, "worker pool size, orchestrator included")
	fs.BoolVar(&cfg.EmitPerCollision, "emit-per-collision", cfg.EmitPerCollision, "push one record per collision to the sink")
	fs.BoolVar(&cfg.PauseAfterTick, "pause-after-tick", cfg.PauseAfterTick, "wait for external input between ticks")
	fs.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "number of ticks to run (0 = run until interrupted)")
	fs.StringVar(&cfg.Sink, "sink", cfg.Sink, "metrics sink: log, sqlite, or ws")
	fs.StringVar(&cfg.SinkPath, "sink-target", cfg.SinkPath, "sqlite file path or websocket URL, depending on -sink")
	fs.StringVar(&cfg.Visualize, "visualize", cfg.Visualize, "boundary consumer: none, tui, or gui")
	fs.StringVar(&cfg.EnvFile, "env", envFile, ".env file to load before flags")
	fs.StringVar(&cfg.SceneFile, "scene-file", cfg.SceneFile, "JSON scene file declaring stationary/moving circles directly, bypassing the seeded generator")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("PHYSICS2D_TOTAL_CIRCLES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.TotalCircles = n
		}
	}
	if v, ok := os.LookupEnv("PHYSICS2D_SPAWN_SEED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.SpawnSeed = n
		}
	}
	if v, ok := os.LookupEnv("PHYSICS2D_MAX_WORKERS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxWorkers = n
		}
	}
	if v, ok := os.LookupEnv("PHYSICS2D_SINK"); ok {
		c.Sink = v
	}
	if v, ok := os.LookupEnv("PHYSICS2D_SINK_TARGET"); ok {
		c.SinkPath = v
	}
}

// Validate checks the option set for ConfigurationInvalid conditions
// (fewer than 2 circles, inverted ranges, a non-positive fixed radius,
// worker count outside bounds, an unknown sink or visualize value) before
// any store is constructed. No upper limit on the circle count is checked.
func Validate(c Config) error {
	if c.TotalCircles < 2 {
		return fmt.Errorf("config: total-circles must be at least 2, got %d", c.TotalCircles)
	}
	if c.XSpawnRangeLo > c.XSpawnRangeHi || c.YSpawnRangeLo > c.YSpawnRangeHi {
		return fmt.Errorf("config: inverted spawn range")
	}
	if c.XVelocityRangeLo > c.XVelocityRangeHi || c.YVelocityRangeLo > c.YVelocityRangeHi {
		return fmt.Errorf("config: inverted velocity range")
	}
	if c.RadiusUniform && c.RadiusLo > c.RadiusHi {
		return fmt.Errorf("config: inverted radius range")
	}
	if !c.RadiusUniform && c.RadiusFixed <= 0 {
		return fmt.Errorf("config: fixed radius must be positive")
	}
	if c.MaxWorkers < 1 || c.MaxWorkers > collision.MaxWorkers {
		return fmt.Errorf("config: max-workers must be within [1, %d], got %d", collision.MaxWorkers, c.MaxWorkers)
	}
	switch c.Sink {
	case "log", "sqlite", "ws":
	default:
		return fmt.Errorf("config: unknown sink %q", c.Sink)
	}
	switch c.Visualize {
	case "none", "tui", "gui":
	default:
		return fmt.Errorf("config: unknown visualize %q", c.Visualize)
	}
	return nil
}
