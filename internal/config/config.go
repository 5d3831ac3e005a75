// Package config holds runtime configuration: defaults, an optional YAML
// config file layer, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// MaxScaleFactor is the largest scale factor the upscaler models support.
const MaxScaleFactor = 4

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], and then mutated by [ParseFlags] before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (set from -i/-o).
	InputVideo  string `yaml:"input"`
	OutputVideo string `yaml:"output"`

	// Frame directories. The output frames directory doubles as resume
	// state: the contiguous prefix of non-empty frame files in it is
	// treated as already upscaled.
	TmpFramesDir string `yaml:"tmp_frames"` // Default: "tmp_frames".
	OutFramesDir string `yaml:"out_frames"` // Default: "out_frames".

	// Upscaler settings.
	UpscalerBin string `yaml:"upscaler"` // Default: "realesrgan-ncnn-vulkan".
	Model       string `yaml:"model"`    // Default: "realesr-animevideov3-x4".
	ScaleFactor int    `yaml:"scale"`    // Default: 4. Range: 1..MaxScaleFactor.
	GPUID       string `yaml:"gpu"`      // Default: "0". Passed to -g verbatim.

	// Worker pool size. The upscaler is GPU-bound, so the default stays
	// conservative.
	Workers int `yaml:"workers"` // Default: 1. Must be >= 1.

	// Behavior flags.
	Reset bool `yaml:"-"` // Delete prior staging/output state after confirmation.

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"` // Default: "auto".
	LogFile   string    `yaml:"log"`   // Optional log file path.
	CheckOnly bool      `yaml:"-"`     // Run --check diagnostics and exit.

	// Config file path (flag only).
	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns a Config with all defaults matching the legacy
// scaleup script. Used as the base before [LoadFile] and [ParseFlags] apply
// overrides.
func DefaultConfig() Config {
	return Config{
		TmpFramesDir: "tmp_frames",
		OutFramesDir: "out_frames",
		UpscalerBin:  "realesrgan-ncnn-vulkan",
		Model:        "realesr-animevideov3-x4",
		ScaleFactor:  4,
		GPUID:        "0",
		Workers:      1,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and range fields. When not in CheckOnly mode it also
// requires the input and output video paths.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.ScaleFactor < 1 || c.ScaleFactor > MaxScaleFactor {
		return fmt.Errorf("invalid scale factor %d (use 1-%d)", c.ScaleFactor, MaxScaleFactor)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid worker count %d (need at least 1)", c.Workers)
	}
	if c.Model == "" {
		return errors.New("model name must not be empty")
	}
	if c.UpscalerBin == "" {
		return errors.New("upscaler binary must not be empty")
	}
	if c.TmpFramesDir == "" || c.OutFramesDir == "" {
		return errors.New("frame directories must not be empty")
	}
	if c.TmpFramesDir == c.OutFramesDir {
		return errors.New("tmp and output frame directories must differ")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputVideo == "" {
		return errors.New("input video is required (-i)")
	}
	if c.OutputVideo == "" {
		return errors.New("output video is required (-o)")
	}
	if c.InputVideo == c.OutputVideo {
		return errors.New("output video must differ from input video")
	}
	return nil
}
