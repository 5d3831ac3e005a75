// Package pipeline is the frame-processing core: a resumable, concurrent
// work-distribution engine that schedules per-frame upscale jobs across a
// fixed worker pool, tracks progress with a time-windowed estimator, and
// supports cooperative cancellation.
//
// Control flow: Run populates the queue with every staged frame and closes
// it, launches the worker pool, blocks until the queue drains and all
// workers exit, then triggers the final video/audio merge. Workers skip
// frames below the resume offset, invoke the upscaler for the rest, and
// feed each frame's wall-clock duration to the shared progress window.
//
// Failure semantics: the first collaborator error aborts the whole run
// (no retry, no partial continuation). A user interrupt is not a failure:
// in-flight frames finish, the merge is skipped, and the frames already on
// disk make the next run resumable.
package pipeline
