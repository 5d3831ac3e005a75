package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/scaleup/internal/display"
	"github.com/backmassage/scaleup/internal/logging"
)

// UpscaleFunc upscales one frame to completion. The pipeline aborts on the
// first non-nil return.
type UpscaleFunc func(ctx context.Context, inputPath, outputPath string) error

// pool coordinates the fixed worker set over the shared queue. Workers never
// communicate with each other; the queue, the progress window, and the
// counters below are the only shared mutable state.
type pool struct {
	queue   *Queue
	window  *Window
	upscale UpscaleFunc
	log     *logging.Logger
	bar     *progressbar.ProgressBar // nil in verbose mode (log lines instead)

	startIndex int
	total      int
	workers    int

	// abort cancels the invocation context, stopping sibling upscaler
	// processes once one frame has fatally failed.
	abort context.CancelFunc

	mu        sync.Mutex
	upscaled  int
	skipped   int
	firstErr  error
	failedJob Job
}

// worker is one member of the fixed pool. ctx is the user-interrupt context,
// checked cooperatively between jobs; invokeCtx is the run-abort context the
// upscaler is invoked under, so an interrupt lets an in-flight frame finish
// while a fatal error elsewhere stops it.
func (p *pool) worker(ctx, invokeCtx context.Context) {
	for {
		if ctx.Err() != nil || invokeCtx.Err() != nil {
			return
		}

		job, ok := p.queue.Dequeue(ctx)
		if !ok {
			return
		}

		// Resume short-circuit: frames below the offset are already on
		// disk from a previous run. No invocation, no window update.
		if job.Index < p.startIndex {
			p.markSkipped()
			continue
		}

		start := time.Now()
		if err := p.upscale(invokeCtx, job.InputPath, job.OutputPath); err != nil {
			if invokeCtx.Err() != nil {
				// A sibling already failed and tore down the run.
				return
			}
			p.fail(job, err)
			return
		}
		p.markDone(job, time.Since(start))
	}
}

// markSkipped accounts for a frame satisfied by the resume offset.
func (p *pool) markSkipped() {
	p.mu.Lock()
	p.skipped++
	completed := p.upscaled + p.skipped
	p.mu.Unlock()

	p.report(completed, 0)
}

// markDone records the frame duration and emits a progress report.
func (p *pool) markDone(job Job, elapsed time.Duration) {
	p.window.Record(elapsed)

	p.mu.Lock()
	p.upscaled++
	completed := p.upscaled + p.skipped
	p.mu.Unlock()

	p.report(completed, elapsed)

	avg, remaining := p.window.Estimate(completed, p.total, p.workers)
	p.log.Frame("Frame %d/%d: %s in %s (avg %s/frame, ETA %s)",
		completed, p.total, job.InputPath,
		display.FormatSeconds(elapsed), display.FormatSeconds(avg),
		display.FormatClock(remaining))
}

// report advances the progress bar and refreshes its ETA description.
func (p *pool) report(completed int, _ time.Duration) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
	_, remaining := p.window.Estimate(completed, p.total, p.workers)
	p.bar.Describe(fmt.Sprintf("upscaling (ETA %s)", display.FormatClock(remaining)))
}

// fail records the first fatal error and tears the run down.
func (p *pool) fail(job Job, err error) {
	p.mu.Lock()
	if p.firstErr == nil {
		p.firstErr = err
		p.failedJob = job
	}
	p.mu.Unlock()
	p.abort()
}
