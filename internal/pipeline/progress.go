package pipeline

import (
	"sync"
	"time"
)

// windowSize bounds the rolling window of recent per-frame durations. Ten
// frames is enough to smooth per-frame jitter while still tracking drift in
// upscaler speed.
const windowSize = 10

// Window tracks the most recent per-frame durations and derives the rolling
// average and remaining-time estimate. All workers record into the same
// window, so it is mutex-guarded. It is created once per run and never
// persisted.
type Window struct {
	mu        sync.Mutex
	durations []time.Duration
}

// NewWindow returns an empty progress window.
func NewWindow() *Window {
	return &Window{durations: make([]time.Duration, 0, windowSize)}
}

// Record appends one frame duration, evicting the oldest entry once the
// window is full.
func (w *Window) Record(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.durations) == windowSize {
		copy(w.durations, w.durations[1:])
		w.durations = w.durations[:windowSize-1]
	}
	w.durations = append(w.durations, d)
}

// Len reports how many durations the window currently holds.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.durations)
}

// Average returns the arithmetic mean of the current window, 0 when empty.
func (w *Window) Average() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.averageLocked()
}

func (w *Window) averageLocked() time.Duration {
	if len(w.durations) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range w.durations {
		sum += d
	}
	return sum / time.Duration(len(w.durations))
}

// Estimate returns the rolling average frame time and the projected
// remaining wall-clock time for the frames not yet completed, assuming
// roughly uniform per-frame cost and linear speedup across workers. Worker
// counts below 1 are treated as 1.
func (w *Window) Estimate(completed, total, workers int) (avg, remaining time.Duration) {
	if workers < 1 {
		workers = 1
	}
	left := total - completed
	if left < 0 {
		left = 0
	}

	w.mu.Lock()
	avg = w.averageLocked()
	w.mu.Unlock()

	remaining = avg * time.Duration(left) / time.Duration(workers)
	return avg, remaining
}
