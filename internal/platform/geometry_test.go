package platform

import (
	"testing"
	"time"
)

func TestPathSteps(t *testing.T) {
	tests := []struct {
		duration time.Duration
		rate     int
		want     int
	}{
		{time.Second, 60, 60},
		{2 * time.Second, 60, 120},
		{50 * time.Millisecond, 60, 10}, // floor
		{0, 60, 10},
	}
	for _, tt := range tests {
		if got := PathSteps(tt.duration, tt.rate); got != tt.want {
			t.Errorf("PathSteps(%v, %d) = %d, want %d", tt.duration, tt.rate, got, tt.want)
		}
	}
}

func TestPathPoint_EndsExactlyOnTarget(t *testing.T) {
	start := Point{0, 0}
	end := Point{100, 37}
	if got := PathPoint(start, end, 10, 10); got != end {
		t.Errorf("final sample = %v, want %v", got, end)
	}
}

func TestPathPoint_Monotonic(t *testing.T) {
	start := Point{10, 10}
	end := Point{110, 10}
	prev := start
	for i := 1; i <= 20; i++ {
		p := PathPoint(start, end, i, 20)
		if p.X < prev.X {
			t.Fatalf("sample %d moved backwards: %v after %v", i, p, prev)
		}
		prev = p
	}
}

func TestVirtualRect(t *testing.T) {
	tests := []struct {
		name     string
		displays []DisplayInfo
		want     Rect
	}{
		{
			"empty",
			nil,
			Rect{},
		},
		{
			"single monitor equals bounds",
			[]DisplayInfo{{Bounds: Rect{0, 0, 1920, 1080}}},
			Rect{0, 0, 1920, 1080},
		},
		{
			"side by side",
			[]DisplayInfo{
				{Bounds: Rect{0, 0, 1920, 1080}},
				{Bounds: Rect{1920, 0, 2560, 1440}},
			},
			Rect{0, 0, 4480, 1440},
		},
		{
			"negative origin",
			[]DisplayInfo{
				{Bounds: Rect{-1920, -200, 1920, 1080}},
				{Bounds: Rect{0, 0, 1920, 1080}},
			},
			Rect{-1920, -200, 3840, 1280},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VirtualRect(tt.displays)
			if got != tt.want {
				t.Errorf("VirtualRect = %+v, want %+v", got, tt.want)
			}
			// No display bound may exceed the virtual rect on any edge.
			for _, d := range tt.displays {
				if d.Bounds.X < got.X || d.Bounds.Y < got.Y ||
					d.Bounds.X+d.Bounds.Width > got.X+got.Width ||
					d.Bounds.Y+d.Bounds.Height > got.Y+got.Height {
					t.Errorf("display %+v escapes virtual rect %+v", d.Bounds, got)
				}
			}
		})
	}
}

func TestNormalizePrimary(t *testing.T) {
	t.Run("none marked", func(t *testing.T) {
		d := []DisplayInfo{{ID: "a"}, {ID: "b"}}
		NormalizePrimary(d)
		if !d[0].IsPrimary || d[1].IsPrimary {
			t.Errorf("first display should become primary: %+v", d)
		}
	})

	t.Run("several marked", func(t *testing.T) {
		d := []DisplayInfo{{ID: "a", IsPrimary: true}, {ID: "b", IsPrimary: true}}
		NormalizePrimary(d)
		if !d[0].IsPrimary || d[1].IsPrimary {
			t.Errorf("first marked display should win: %+v", d)
		}
	})

	t.Run("exactly one stays put", func(t *testing.T) {
		d := []DisplayInfo{{ID: "a"}, {ID: "b", IsPrimary: true}}
		NormalizePrimary(d)
		if d[0].IsPrimary || !d[1].IsPrimary {
			t.Errorf("existing primary should be preserved: %+v", d)
		}
	})

	t.Run("empty is a no-op", func(t *testing.T) {
		NormalizePrimary(nil)
	})

	t.Run("invariant holds", func(t *testing.T) {
		d := []DisplayInfo{{ID: "a"}, {ID: "b", IsPrimary: true}, {ID: "c", IsPrimary: true}}
		NormalizePrimary(d)
		count := 0
		for _, di := range d {
			if di.IsPrimary {
				count++
			}
		}
		if count != 1 {
			t.Errorf("want exactly one primary, got %d", count)
		}
	})
}
