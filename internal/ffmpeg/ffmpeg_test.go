package ffmpeg

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestExtractArgs(t *testing.T) {
	args := ExtractArgs("input.mp4", "tmp_frames")

	want := []string{
		"-hide_banner", "-nostdin",
		"-i", "input.mp4",
		"-qscale:v", "1", "-qmin", "1", "-qmax", "1",
		"-vsync", "0",
		filepath.Join("tmp_frames", "frame%08d.jpg"),
	}
	if !slices.Equal(args, want) {
		t.Errorf("ExtractArgs = %v, want %v", args, want)
	}
}

func TestMergeArgs(t *testing.T) {
	args := MergeArgs("output.mp4", "input.mp4", "out_frames", 23.976)

	want := []string{
		"-hide_banner", "-nostdin", "-y",
		"-framerate", "23.976",
		"-i", filepath.Join("out_frames", "frame%08d.jpg"),
		"-i", "input.mp4",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-shortest",
		"output.mp4",
	}
	if !slices.Equal(args, want) {
		t.Errorf("MergeArgs = %v, want %v", args, want)
	}
}

func TestMergeArgs_FrameRateFormatting(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		want string
	}{
		{"integer", 30, "30"},
		{"fractional", 29.97002997002997, "29.97002997002997"},
		{"zero falls back", 0, "30"},
		{"negative falls back", -1, "30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := MergeArgs("o.mp4", "i.mp4", "d", tt.fps)
			i := slices.Index(args, "-framerate")
			if i < 0 || i+1 >= len(args) {
				t.Fatal("-framerate flag missing")
			}
			if args[i+1] != tt.want {
				t.Errorf("framerate = %q, want %q", args[i+1], tt.want)
			}
		})
	}
}
