package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/scaleup/internal/config"
	"github.com/backmassage/scaleup/internal/display"
	"github.com/backmassage/scaleup/internal/ffmpeg"
	"github.com/backmassage/scaleup/internal/frames"
	"github.com/backmassage/scaleup/internal/invoke"
	"github.com/backmassage/scaleup/internal/logging"
	"github.com/backmassage/scaleup/internal/probe"
	"github.com/backmassage/scaleup/internal/upscale"
)

// Tools bundles the external collaborators so tests can substitute fakes
// for the real ffmpeg/ffprobe/upscaler invocations.
type Tools struct {
	Probe   func(ctx context.Context, path string) (*probe.Result, error)
	Extract func(ctx context.Context, inputVideo, stagingDir string) error
	Upscale UpscaleFunc
	Merge   func(ctx context.Context, outputVideo, audioSource, framesDir string, fps float64) error
}

// DefaultTools wires the real collaborator commands from cfg.
func DefaultTools(cfg *config.Config) Tools {
	up := &upscale.Upscaler{
		Bin:     cfg.UpscalerBin,
		Model:   cfg.Model,
		Scale:   cfg.ScaleFactor,
		GPU:     cfg.GPUID,
		Verbose: cfg.Verbose,
	}
	return Tools{
		Probe: probe.Probe,
		Extract: func(ctx context.Context, inputVideo, stagingDir string) error {
			return ffmpeg.Extract(ctx, inputVideo, stagingDir, cfg.Verbose)
		},
		Upscale: up.Run,
		Merge: func(ctx context.Context, outputVideo, audioSource, framesDir string, fps float64) error {
			return ffmpeg.Merge(ctx, outputVideo, audioSource, framesDir, fps, cfg.Verbose)
		},
	}
}

// Run is the top-level orchestrator: probe → extract (unless staged) →
// inventory → dispatch → worker pool → merge. Cancelling ctx is a user
// interrupt: workers wind down after their in-flight frame, the merge is
// skipped, and Run returns nil so the process exits cleanly with the
// on-disk frames ready for a resumed run.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, tools Tools) (RunStats, error) {
	var stats RunStats
	runID := uuid.NewString()[:8]

	src, err := tools.Probe(ctx, cfg.InputVideo)
	if err != nil {
		return stats, fmt.Errorf("probe source: %w", err)
	}
	log.Info("Run %s: %s, %s @ %.3f fps", runID, cfg.InputVideo, src.Resolution(), src.FrameRate)
	if !src.HasAudio {
		log.Warn("Source has no audio track; output will be video-only")
	}

	if _, statErr := os.Stat(cfg.TmpFramesDir); errors.Is(statErr, os.ErrNotExist) {
		log.Info("Extracting frames to %s…", cfg.TmpFramesDir)
		if err := tools.Extract(ctx, cfg.InputVideo, cfg.TmpFramesDir); err != nil {
			// The extract runs under the interrupt context, so SIGINT kills
			// the ffmpeg child and surfaces here as its error. That is a
			// cancellation, not a failure.
			if ctx.Err() != nil {
				log.Warn("Interrupted during frame extraction; staging may be partial, use --reset before rerunning")
				return stats, nil
			}
			return stats, fmt.Errorf("extract frames: %w", err)
		}
	} else {
		log.Info("Staging directory %s exists, skipping extraction", cfg.TmpFramesDir)
	}
	if ctx.Err() != nil {
		log.Warn("Interrupted before upscaling started")
		return stats, nil
	}

	inv, err := frames.Take(cfg.TmpFramesDir, cfg.OutFramesDir)
	if err != nil {
		return stats, err
	}
	stats.Total = inv.Total
	if inv.Total == 0 {
		return stats, fmt.Errorf("no frames found in %s", cfg.TmpFramesDir)
	}
	if inv.StartIndex > 0 {
		log.Info("Resuming: skipping the first %d frames (already upscaled)", inv.StartIndex)
	}
	log.Info("Upscaling %d frames with %d workers (model %s, x%d, GPU %s)",
		inv.Total, cfg.Workers, cfg.Model, cfg.ScaleFactor, cfg.GPUID)

	// The queue holds the entire run before any worker starts, then closes:
	// end-of-work is the closed channel, observed by every worker.
	queue := NewQueue(inv.Total)
	for i, name := range inv.Names {
		queue.Enqueue(Job{
			Index:      i,
			InputPath:  filepath.Join(cfg.TmpFramesDir, name),
			OutputPath: filepath.Join(cfg.OutFramesDir, name),
		})
	}
	queue.Close()

	// Invocation context, detached from the interrupt context: a user
	// interrupt lets in-flight upscaler processes finish, while a fatal
	// frame error cancels it to stop the siblings immediately.
	invokeCtx, abort := context.WithCancel(context.Background())
	defer abort()

	p := &pool{
		queue:      queue,
		window:     NewWindow(),
		upscale:    tools.Upscale,
		log:        log,
		bar:        newBar(inv.Total, cfg.Verbose),
		startIndex: inv.StartIndex,
		total:      inv.Total,
		workers:    cfg.Workers,
		abort:      abort,
	}

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, invokeCtx)
		}()
	}
	wg.Wait()
	if p.bar != nil {
		_ = p.bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	stats.Upscaled = p.upscaled
	stats.Skipped = p.skipped

	if p.firstErr != nil {
		stats.Failed = 1
		logToolFailure(log, p.failedJob, p.firstErr)
		return stats, fmt.Errorf("upscale frame %d: %w", p.failedJob.Index, p.firstErr)
	}
	if ctx.Err() != nil {
		log.Warn("Interrupted: %d/%d frames done; rerun with the same directories to resume",
			stats.Completed(), stats.Total)
		return stats, nil
	}

	log.Info("Merging video with audio…")
	if err := tools.Merge(ctx, cfg.OutputVideo, cfg.InputVideo, cfg.OutFramesDir, src.FrameRate); err != nil {
		if ctx.Err() != nil {
			log.Warn("Interrupted during merge; rerun to remerge from the upscaled frames")
			return stats, nil
		}
		return stats, fmt.Errorf("merge output: %w", err)
	}

	if fi, statErr := os.Stat(cfg.OutputVideo); statErr == nil {
		log.Success("Wrote %s (%s)", cfg.OutputVideo, display.FormatBytes(fi.Size()))
	} else {
		log.Success("Wrote %s", cfg.OutputVideo)
	}
	return stats, nil
}

// newBar builds the console progress bar. Verbose mode logs per-frame lines
// instead, so no bar is drawn.
func newBar(total int, verbose bool) *progressbar.ProgressBar {
	if verbose {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("upscaling"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "▐",
			BarEnd:        "▌",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// logToolFailure reports the fatal frame error, including the tail of the
// tool's stderr when available.
func logToolFailure(log *logging.Logger, job Job, err error) {
	log.Error("Frame %d failed: %v", job.Index, err)
	var te *invoke.ToolError
	if errors.As(err, &te) && te.Stderr != "" {
		log.Error("Last %s output:", te.Name)
		for _, line := range strings.Split(invoke.Tail(te.Stderr, 20), "\n") {
			log.Error("  %s", line)
		}
	}
}
