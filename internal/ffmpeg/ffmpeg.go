// Package ffmpeg builds and runs the ffmpeg collaborator commands for frame
// extraction and final video/audio assembly. Both sides of the pipeline rely
// on the sequential frame naming scheme from the frames package: extraction
// writes it, assembly reads it back in the same order.
package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/backmassage/scaleup/internal/frames"
	"github.com/backmassage/scaleup/internal/invoke"
)

// DefaultFrameRate is used for the merge when the source frame rate could
// not be probed.
const DefaultFrameRate = 30

// ExtractArgs returns the ffmpeg arguments that decompose inputVideo into
// sequentially numbered full-quality JPEG frames under stagingDir.
func ExtractArgs(inputVideo, stagingDir string) []string {
	return []string{
		"-hide_banner", "-nostdin",
		"-i", inputVideo,
		"-qscale:v", "1", "-qmin", "1", "-qmax", "1",
		"-vsync", "0",
		filepath.Join(stagingDir, frames.Pattern),
	}
}

// MergeArgs returns the ffmpeg arguments that reassemble the upscaled frames
// in framesDir with the audio from audioSource into outputVideo. fps values
// at or below zero fall back to [DefaultFrameRate].
func MergeArgs(outputVideo, audioSource, framesDir string, fps float64) []string {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return []string{
		"-hide_banner", "-nostdin", "-y",
		"-framerate", strconv.FormatFloat(fps, 'f', -1, 64),
		"-i", filepath.Join(framesDir, frames.Pattern),
		"-i", audioSource,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-shortest",
		outputVideo,
	}
}

// Extract decomposes inputVideo into frames under stagingDir, creating the
// directory first. Verbose mirrors ffmpeg's stderr to the console.
func Extract(ctx context.Context, inputVideo, stagingDir string, verbose bool) error {
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	_, err := invoke.Run(ctx, verbose, "ffmpeg", ExtractArgs(inputVideo, stagingDir)...)
	return err
}

// Merge assembles the final video from the upscaled frames and the original
// audio track.
func Merge(ctx context.Context, outputVideo, audioSource, framesDir string, fps float64, verbose bool) error {
	_, err := invoke.Run(ctx, verbose, "ffmpeg", MergeArgs(outputVideo, audioSource, framesDir, fps)...)
	return err
}
