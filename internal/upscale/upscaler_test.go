package upscale

import (
	"slices"
	"testing"
)

func TestArgs(t *testing.T) {
	u := &Upscaler{
		Bin:   "realesrgan-ncnn-vulkan",
		Model: "realesr-animevideov3-x4",
		Scale: 4,
		GPU:   "0",
	}

	args := u.Args("tmp_frames/frame00000042.jpg", "out_frames/frame00000042.jpg")
	want := []string{
		"-i", "tmp_frames/frame00000042.jpg",
		"-o", "out_frames/frame00000042.jpg",
		"-n", "realesr-animevideov3-x4",
		"-s", "4",
		"-f", "png",
		"-g", "0",
	}
	if !slices.Equal(args, want) {
		t.Errorf("Args = %v, want %v", args, want)
	}
}

func TestArgs_ScaleAndGPU(t *testing.T) {
	u := &Upscaler{Bin: "up", Model: "m", Scale: 2, GPU: "1"}
	args := u.Args("a.jpg", "b.jpg")

	if i := slices.Index(args, "-s"); i < 0 || args[i+1] != "2" {
		t.Errorf("scale argument wrong: %v", args)
	}
	if i := slices.Index(args, "-g"); i < 0 || args[i+1] != "1" {
		t.Errorf("gpu argument wrong: %v", args)
	}
}
