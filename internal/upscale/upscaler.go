// Package upscale invokes the external Real-ESRGAN style upscaler for a
// single frame. The binary is treated as a black box: one input image in,
// one upscaled image out, non-zero exit on failure.
package upscale

import (
	"context"
	"strconv"

	"github.com/backmassage/scaleup/internal/invoke"
)

// Upscaler holds the invocation settings shared by every frame of a run.
type Upscaler struct {
	Bin     string // Binary name or path, e.g. "realesrgan-ncnn-vulkan".
	Model   string
	Scale   int
	GPU     string // Device selector passed to -g verbatim.
	Verbose bool
}

// Args returns the upscaler command line for one frame.
func (u *Upscaler) Args(inputFrame, outputFrame string) []string {
	return []string{
		"-i", inputFrame,
		"-o", outputFrame,
		"-n", u.Model,
		"-s", strconv.Itoa(u.Scale),
		"-f", "png",
		"-g", u.GPU,
	}
}

// Run upscales one frame to completion. A non-zero exit surfaces as a
// *invoke.ToolError carrying the captured stderr.
func (u *Upscaler) Run(ctx context.Context, inputFrame, outputFrame string) error {
	_, err := invoke.Run(ctx, u.Verbose, u.Bin, u.Args(inputFrame, outputFrame)...)
	return err
}
