package probe

import "strconv"

// Result holds the source video properties the pipeline needs: the frame
// rate drives the final merge; the dimensions and frame count are
// informational.
type Result struct {
	Width     int
	Height    int
	Duration  float64 // Seconds; 0 when the container does not report it.
	FrameRate float64 // Frames per second from avg_frame_rate.
	NbFrames  int     // Container-reported frame count; 0 when unknown.
	HasAudio  bool
}

// Resolution returns "WxH" for display, or "unknown" when not probed.
func (r *Result) Resolution() string {
	if r.Width <= 0 || r.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(r.Width) + "x" + strconv.Itoa(r.Height)
}
