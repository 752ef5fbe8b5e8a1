package app

import (
	"flag"

	"tricell/internal/sims/automata"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
	Workers int
	Paused  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := automata.DefaultConfig()
	return &Config{
		Width:   def.Width,
		Height:  def.Height,
		Scale:   3,
		TPS:     60,
		Seed:    def.Seed,
		Workers: def.Workers,
		Paused:  true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells seeded alive at start (0 starts empty)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}

// SimConfig converts the flags into a world configuration.
func (c *Config) SimConfig() automata.Config {
	return automata.Config{
		Width:   c.Width,
		Height:  c.Height,
		Workers: c.Workers,
		Density: c.Density,
		Seed:    c.Seed,
	}
}
