package pipeline

import "context"

// Job is a single frame upscale work unit. Jobs are immutable once enqueued
// and are never re-enqueued.
type Job struct {
	// Index is the 0-based frame sequence position. It decides resume
	// skipping and progress accounting only; completion order across
	// workers is unordered.
	Index int

	InputPath  string
	OutputPath string
}

// Queue is the FIFO of frame jobs shared by all workers. Closing the queue
// after the final enqueue is the shutdown signal: every worker draining it
// observes end-of-work, for any worker count, without a sentinel value that
// could be confused with real data.
type Queue struct {
	ch chan Job
}

// NewQueue returns a queue with room for capacity jobs. The orchestrator
// sizes it to the full frame count so the queue is fully populated before
// any worker starts.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{ch: make(chan Job, capacity)}
}

// Enqueue adds one job. Must not be called after Close.
func (q *Queue) Enqueue(j Job) {
	q.ch <- j
}

// Close marks the end of work. No further Enqueue calls are allowed.
func (q *Queue) Close() {
	close(q.ch)
}

// Dequeue blocks until a job is available, the queue is closed, or ctx is
// cancelled. ok is false when there is no more work to take.
func (q *Queue) Dequeue(ctx context.Context) (Job, bool) {
	select {
	case <-ctx.Done():
		return Job{}, false
	case j, ok := <-q.ch:
		return j, ok
	}
}

// Len reports the number of jobs currently waiting.
func (q *Queue) Len() int {
	return len(q.ch)
}
