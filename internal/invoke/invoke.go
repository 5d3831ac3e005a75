// Package invoke runs external collaborator commands (ffmpeg, ffprobe, the
// upscaler) to completion and turns non-zero exits into errors that carry
// the captured diagnostics.
package invoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result holds the outcome of a single external invocation.
type Result struct {
	Stderr string
}

// ToolError reports a collaborator process that exited non-zero. The run is
// fatal on the first ToolError anywhere in the pipeline: a missing frame
// would desynchronize the sequential numbering the final merge relies on.
type ToolError struct {
	Name     string
	ExitCode int
	Stderr   string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
}

// Run executes name with args and waits for completion. Stderr is captured
// for error reporting; when tee is true it is also mirrored to os.Stderr in
// real time (verbose mode). A non-zero exit returns a *ToolError; failing to
// start the process at all (e.g. binary not on PATH) returns the wrapped
// exec error.
func Run(ctx context.Context, tee bool, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderrBuf bytes.Buffer
	if tee {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	res := Result{Stderr: stderrBuf.String()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return res, &ToolError{
			Name:     name,
			ExitCode: exitErr.ExitCode(),
			Stderr:   res.Stderr,
		}
	}
	return res, fmt.Errorf("run %s: %w", name, err)
}

// Tail returns the last n lines of s, for logging tool diagnostics without
// flooding the console.
func Tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
