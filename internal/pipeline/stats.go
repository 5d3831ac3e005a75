package pipeline

// RunStats tracks aggregate counters for one pipeline run.
type RunStats struct {
	Total    int // Frames discovered in the staging directory.
	Upscaled int // Frames actually sent through the upscaler.
	Skipped  int // Frames below the resume offset.
	Failed   int // 0 or 1: the run aborts on the first failure.
}

// Completed returns the number of frames accounted for, upscaled or skipped.
func (s *RunStats) Completed() int {
	return s.Upscaled + s.Skipped
}

// Remaining returns the number of frames not yet accounted for.
func (s *RunStats) Remaining() int {
	r := s.Total - s.Completed()
	if r < 0 {
		return 0
	}
	return r
}
