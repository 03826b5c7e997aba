package core

import "time"

// statsWindow is how often the averaged readings refresh.
const statsWindow = 500 * time.Millisecond

// FrameStats accumulates frame timings and publishes averaged readings at a
// fixed cadence, suitable for a window-title readout.
type FrameStats struct {
	frames      int
	windowStart time.Time

	// Published readings, refreshed once per window.
	FrameMS float32
	FPS     float32
}

// Tick records one presented frame. It returns true when a stats window has
// just closed and FrameMS/FPS hold fresh values.
func (s *FrameStats) Tick(now time.Time) bool {
	if s.windowStart.IsZero() {
		s.windowStart = now
		return false
	}

	s.frames++
	elapsed := now.Sub(s.windowStart)
	if elapsed < statsWindow {
		return false
	}

	sec := float32(elapsed.Seconds())
	s.FPS = float32(s.frames) / sec
	s.FrameMS = sec * 1000 / float32(s.frames)
	s.frames = 0
	s.windowStart = now
	return true
}
