package platform

import "time"

// PathSteps returns the number of interpolation samples for a timed cursor
// move: duration × rate, with a floor of 10 so short moves still animate.
func PathSteps(duration time.Duration, stepsPerSecond int) int {
	steps := int(duration.Seconds() * float64(stepsPerSecond))
	if steps < 10 {
		steps = 10
	}
	return steps
}

// PathPoint returns the i-th of n sample points on the linear path from start
// to end, for i in [1, n]. The final sample lands exactly on end.
func PathPoint(start, end Point, i, n int) Point {
	t := float64(i) / float64(n)
	return Point{
		X: start.X + int(float64(end.X-start.X)*t),
		Y: start.Y + int(float64(end.Y-start.Y)*t),
	}
}

// VirtualRect returns the bounding box enclosing every display's bounds.
// An empty display list yields the zero rectangle.
func VirtualRect(displays []DisplayInfo) Rect {
	if len(displays) == 0 {
		return Rect{}
	}
	minX, minY := displays[0].Bounds.X, displays[0].Bounds.Y
	maxX := displays[0].Bounds.X + displays[0].Bounds.Width
	maxY := displays[0].Bounds.Y + displays[0].Bounds.Height
	for _, d := range displays[1:] {
		if d.Bounds.X < minX {
			minX = d.Bounds.X
		}
		if d.Bounds.Y < minY {
			minY = d.Bounds.Y
		}
		if x := d.Bounds.X + d.Bounds.Width; x > maxX {
			maxX = x
		}
		if y := d.Bounds.Y + d.Bounds.Height; y > maxY {
			maxY = y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// NormalizePrimary enforces the exactly-one-primary invariant on an
// enumeration result in place: when the platform marked none, the first
// display becomes primary; when it marked several, the first marked one wins.
func NormalizePrimary(displays []DisplayInfo) {
	if len(displays) == 0 {
		return
	}
	seen := false
	for i := range displays {
		if displays[i].IsPrimary {
			if seen {
				displays[i].IsPrimary = false
			}
			seen = true
		}
	}
	if !seen {
		displays[0].IsPrimary = true
	}
}
