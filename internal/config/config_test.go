package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c := defaults()
	if c.MoveStepsPerSecond != 60 {
		t.Errorf("MoveStepsPerSecond = %d, want 60", c.MoveStepsPerSecond)
	}
	if c.TypeKeyDelay != 10*time.Millisecond {
		t.Errorf("TypeKeyDelay = %v, want 10ms", c.TypeKeyDelay)
	}
	if c.ClipboardReadTimeout != time.Second {
		t.Errorf("ClipboardReadTimeout = %v, want 1s", c.ClipboardReadTimeout)
	}
	if c.ClipboardServiceIterations != 10 {
		t.Errorf("ClipboardServiceIterations = %d, want 10", c.ClipboardServiceIterations)
	}
}

func TestLoad_ClampsNonPositiveValues(t *testing.T) {
	t.Setenv("DESKHAND_MOVE_STEPS_PER_SECOND", "-5")
	t.Setenv("DESKHAND_CLIPBOARD_SERVICE_ITERATIONS", "0")
	c := load()
	if c.MoveStepsPerSecond <= 0 {
		t.Errorf("MoveStepsPerSecond = %d, want positive", c.MoveStepsPerSecond)
	}
	if c.ClipboardServiceIterations <= 0 {
		t.Errorf("ClipboardServiceIterations = %d, want positive", c.ClipboardServiceIterations)
	}
}

func TestGet_ReturnsSameInstance(t *testing.T) {
	if Get() != Get() {
		t.Error("Get should memoize the configuration")
	}
}
