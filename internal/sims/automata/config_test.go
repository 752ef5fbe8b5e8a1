package automata

import (
	"errors"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "64",
		"h":       "32",
		"workers": "3",
		"density": "0.25",
		"seed":    "-9",
	})
	if c.Width != 64 || c.Height != 32 || c.Workers != 3 || c.Density != 0.25 || c.Seed != -9 {
		t.Fatalf("FromMap = %+v", c)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":       "0",
		"h":       "tall",
		"workers": "-1",
		"density": "1.5",
		"seed":    "x",
	})
	if c != def {
		t.Fatalf("FromMap with invalid values = %+v, want defaults %+v", c, def)
	}
	if FromMap(nil) != def {
		t.Fatalf("FromMap(nil) should return defaults")
	}
}

func TestFromConfigSeedsDeterministically(t *testing.T) {
	cfg := Config{Width: 20, Height: 10, Workers: 2, Density: 0.5, Seed: 11}
	a, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	b, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if a.Population() == 0 {
		t.Fatalf("density 0.5 produced an empty world")
	}
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("same seed produced different cell %d", i)
		}
	}
	if a.Workers() != 2 {
		t.Fatalf("Workers = %d, want 2", a.Workers())
	}
}

func TestFromConfigRejectsEmpty(t *testing.T) {
	if _, err := FromConfig(Config{Width: 0, Height: 3}); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestSeedKeepsImmutable(t *testing.T) {
	w := mustWorld(t, 8, 8)
	w.SetCellState(9, Immutable)
	Seed(w, 3, 1)
	if s, _ := w.State(9); s != Immutable {
		t.Fatalf("Seed overwrote an immutable cell with %v", s)
	}
	if w.Population() != 63 {
		t.Fatalf("density 1 population = %d, want 63", w.Population())
	}
	Seed(w, 3, 0)
	if w.Population() != 0 {
		t.Fatalf("density 0 population = %d, want 0", w.Population())
	}
}
