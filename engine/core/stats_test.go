package core

import (
	"testing"
	"time"
)

func TestFrameStatsPublishOncePerWindow(t *testing.T) {
	var s FrameStats
	start := time.Unix(0, 0)

	if s.Tick(start) {
		t.Error("first tick published readings")
	}

	// 30 frames at ~16.7ms spread over the 500ms window.
	now := start
	published := 0
	for i := 1; i <= 30; i++ {
		now = start.Add(time.Duration(i) * 500 * time.Millisecond / 30)
		if s.Tick(now) {
			published++
		}
	}
	if published != 1 {
		t.Fatalf("published %d times over one window, want 1", published)
	}
	if s.FPS < 55 || s.FPS > 65 {
		t.Errorf("FPS = %v, want around 60", s.FPS)
	}
	if s.FrameMS < 15 || s.FrameMS > 18 {
		t.Errorf("FrameMS = %v, want around 16.7", s.FrameMS)
	}
}
