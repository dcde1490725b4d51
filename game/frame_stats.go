package game

// FrameStats measures frames per second over a fixed window of frames and
// keeps a history of past measurements, newest first.
type FrameStats struct {
	Window  int
	samples []float64
	index   int

	// FPS is the rate over the last completed window; zero until the first
	// window completes.
	FPS     float64
	History []float32
	Frames  int64
}

func NewFrameStats(window, history int) FrameStats {
	window = max(window, 1)
	return FrameStats{
		Window:  window,
		samples: make([]float64, window),
		History: make([]float32, max(history, 1)),
	}
}

// Push records one frame's duration in seconds and reports whether it
// completed a window.
func (f *FrameStats) Push(dt float64) bool {
	f.Frames++
	f.samples[f.index] = dt
	f.index = (f.index + 1) % f.Window
	if f.index != 0 {
		return false
	}

	var sum float64
	for _, s := range f.samples {
		sum += s
	}
	if sum > 0 {
		f.FPS = float64(f.Window) / sum
	} else {
		f.FPS = 0
	}

	copy(f.History[1:], f.History[:len(f.History)-1])
	f.History[0] = float32(f.FPS)
	return true
}

// Millis converts the FPS history to frame times in milliseconds and returns
// them with their maximum. Empty history slots read as zero.
func (f *FrameStats) Millis() ([]float32, float32) {
	out := make([]float32, len(f.History))
	var peak float32
	for i, fps := range f.History {
		if fps <= 0 {
			continue
		}
		out[i] = 1000 / fps
		peak = max(peak, out[i])
	}
	return out, peak
}
