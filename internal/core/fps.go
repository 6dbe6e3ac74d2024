package core

import "time"

// frameWindow is the number of recent frames averaged into the reported
// rate.
const frameWindow = 20

// FrameRate derives a rolling-average frames-per-second figure from frame
// durations recorded by the host. It implements MetricSource. The host
// should keep recording regardless of whether the overlay is visible.
type FrameRate struct {
	samples [frameWindow]time.Duration
	next    int
	count   int
}

// NewFrameRate constructs an empty sampler.
func NewFrameRate() *FrameRate { return &FrameRate{} }

// Record adds one frame duration to the window. Zero and negative
// durations are discarded.
func (f *FrameRate) Record(frame time.Duration) {
	if frame <= 0 {
		return
	}
	f.samples[f.next] = frame
	f.next = (f.next + 1) % frameWindow
	if f.count < frameWindow {
		f.count++
	}
}

// CurrentAverage reports the mean rate over the recorded window, or false
// while no frame has been recorded yet.
func (f *FrameRate) CurrentAverage() (float64, bool) {
	if f.count == 0 {
		return 0, false
	}
	var total time.Duration
	for i := 0; i < f.count; i++ {
		total += f.samples[i]
	}
	return float64(f.count) / total.Seconds(), true
}
