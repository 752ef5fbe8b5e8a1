package ui

import (
	"strings"

	"tricell/internal/core"
)

// StatusLine formats the world counters for a single-line status bar.
func StatusLine(snap core.ParameterSnapshot) string {
	var b strings.Builder
	for _, key := range []string{"generation", "population"} {
		v, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(labelFor(snap, key))
		b.WriteString(" ")
		b.WriteString(v)
	}
	if v, ok := snap.Lookup("paused"); ok && v == "true" {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString("[paused]")
	}
	return b.String()
}

func labelFor(snap core.ParameterSnapshot, key string) string {
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key == key && p.Label != "" {
				return strings.ToLower(p.Label)
			}
		}
	}
	return key
}
