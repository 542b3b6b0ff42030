package orion

import (
	"time"
)

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	lastTime time.Time
}

// NewFrameTimes starts measuring at the given time. The first
// frame reports its delta relative to start.
func NewFrameTimes(start time.Time) FrameTimes {
	return FrameTimes{lastTime: start}
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records a new frame at the given time and returns the
// time elapsed since the previous frame.
func (t *FrameTimes) Tick(now time.Time) time.Duration {
	// never go back in time, even if the clock does
	dt := max(now.Sub(t.lastTime), 0)

	t.update(dt)

	t.lastTime = now
	t.FrameCount += 1

	return dt
}
