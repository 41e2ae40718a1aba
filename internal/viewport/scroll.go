package viewport

import "math"

// Scroll is a container scroll offset in element pixels.
type Scroll struct {
	X float64
	Y float64
}

// Container is the visible size of the scrolling box around the surface element.
type Container struct {
	Width  float64
	Height float64
}

// CenterOn returns the scroll offset that puts the surface position (sx, sy)
// in the middle of the container, clamped to the scrollable range.
//
// The target is taken straight from the shared world mapping and ignores the
// view window: container scrolling and window pan/zoom are separate
// navigation mechanisms and both stay valid at the same time.
func CenterOn(sx, sy float64, s Surface, c Container) Scroll {
	return Clamp(Scroll{X: sx - c.Width/2, Y: sy - c.Height/2}, s, c)
}

// Clamp keeps a scroll offset inside [0, content - container].
func Clamp(sc Scroll, s Surface, c Container) Scroll {
	maxX := math.Max(0, s.Width-c.Width)
	maxY := math.Max(0, s.Height-c.Height)
	sc.X = math.Min(math.Max(sc.X, 0), maxX)
	sc.Y = math.Min(math.Max(sc.Y, 0), maxY)
	return sc
}

// ScrollAnimation eases a scroll offset toward its target over a fixed number
// of frames.
type ScrollAnimation struct {
	from   Scroll
	to     Scroll
	frames int
	frame  int
}

// NewScrollAnimation animates from -> to; frames < 1 jumps immediately.
func NewScrollAnimation(from, to Scroll, frames int) *ScrollAnimation {
	if frames < 1 {
		frames = 1
	}
	return &ScrollAnimation{from: from, to: to, frames: frames}
}

// Target is the final offset.
func (a *ScrollAnimation) Target() Scroll { return a.to }

// Done reports whether the last frame was produced.
func (a *ScrollAnimation) Done() bool { return a.frame >= a.frames }

// Step advances one frame and returns the offset to show.
func (a *ScrollAnimation) Step() (Scroll, bool) {
	if a.frame < a.frames {
		a.frame++
	}
	t := float64(a.frame) / float64(a.frames)
	e := 1 - (1-t)*(1-t)*(1-t) // ease-out cubic
	sc := Scroll{
		X: a.from.X + (a.to.X-a.from.X)*e,
		Y: a.from.Y + (a.to.Y-a.from.Y)*e,
	}
	if a.Done() {
		sc = a.to
	}
	return sc, a.Done()
}
