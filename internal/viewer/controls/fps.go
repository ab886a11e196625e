package controls

import "time"

// FPSCounter averages the frame rate over a fixed number of frames.
type FPSCounter struct {
	Window int // Frames per measurement

	frames int
	base   time.Time
}

// NewFPSCounter starts counting at now.
func NewFPSCounter(window int, now time.Time) *FPSCounter {
	return &FPSCounter{Window: window, base: now}
}

// Tick records a finished frame. Every Window frames it returns the average
// rate since the previous report and true.
func (c *FPSCounter) Tick(now time.Time) (float64, bool) {
	c.frames++
	if c.frames < c.Window {
		return 0, false
	}

	elapsed := now.Sub(c.base).Seconds()
	frames := c.frames
	c.frames = 0
	c.base = now

	if elapsed <= 0 {
		return 0, false
	}
	return float64(frames) / elapsed, true
}

// FrameBudget returns the minimum frame duration for a frame rate cap.
// A non-positive limit means uncapped.
func FrameBudget(limit int) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}
