package automata

import (
	"runtime"
	"strconv"
)

// Config holds construction parameters for a World.
type Config struct {
	Width  int
	Height int

	// Workers bounds the goroutines used per generation.
	Workers int

	// Density is the fraction of cells seeded Alive; zero starts empty.
	Density float64
	Seed    int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:   300,
		Height:  200,
		Workers: runtime.GOMAXPROCS(0),
		Seed:    42,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
