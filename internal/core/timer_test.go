package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatalf("first poll should step")
	}
	if fs.ShouldStep() {
		t.Fatalf("second poll at the same instant should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatalf("half an interval should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatalf("a full interval should step")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(10 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps != 1 {
		t.Fatalf("stall produced %d steps, want 1", steps)
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("Interval = %v, want %v", fs.Interval(), time.Second/60)
	}
}
