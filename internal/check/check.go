// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation for ffmpeg, ffprobe, and the upscaler binary.
package check

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/backmassage/scaleup/internal/config"
	"github.com/backmassage/scaleup/internal/display"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound   = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound  = errors.New("ffprobe not found on PATH")
	ErrUpscalerNotFound = errors.New("upscaler binary not found")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: availability of ffmpeg,
// ffprobe, and the upscaler binary, plus a host resource report. Returns
// false when any required tool is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkFfmpeg(log)
	ok = checkFfprobe(log) && ok
	ok = checkUpscaler(cfg, log) && ok
	reportHost(cfg, log)
	return ok
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) bool {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return false
	}
	cmd := exec.Command("ffmpeg", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return true
	}
	log.Success("ffmpeg: %s", firstLine(string(out)))
	return true
}

func checkFfprobe(log Logger) bool {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Error("ffprobe not found")
		return false
	}
	log.Success("ffprobe: available")
	return true
}

// checkUpscaler verifies the configured upscaler binary exists. The binary
// has no version flag, so presence is all we can report.
func checkUpscaler(cfg *config.Config, log Logger) bool {
	path, err := resolveBinary(cfg.UpscalerBin)
	if err != nil {
		log.Error("upscaler %q not found", cfg.UpscalerBin)
		return false
	}
	log.Success("upscaler: %s", path)
	return true
}

// reportHost logs CPU, memory, and load figures plus a worker-count hint.
// Informational only: failures to read host metrics are warnings.
func reportHost(cfg *config.Config, log Logger) {
	cores, err := cpu.Counts(true)
	if err != nil {
		log.Warn("Could not read CPU count: %v", err)
		return
	}
	log.Info("CPU: %d logical cores", cores)

	if vm, err := mem.VirtualMemory(); err == nil {
		log.Info("Memory: %s total, %.0f%% used",
			display.FormatBytes(int64(vm.Total)), vm.UsedPercent)
	}
	if avg, err := load.Avg(); err == nil {
		log.Info("Load average: %.2f", avg.Load1)
	}

	suggested := SuggestWorkers(cores)
	if cfg.Workers != suggested {
		log.Info("Workers: %d configured (suggested: %d)", cfg.Workers, suggested)
	} else {
		log.Info("Workers: %d", cfg.Workers)
	}
}

// SuggestWorkers returns a worker-count hint. Upscaling is GPU-bound, so
// more than a few concurrent feeders rarely helps regardless of core count.
func SuggestWorkers(cores int) int {
	w := cores / 2
	if w < 1 {
		w = 1
	}
	if w > 4 {
		w = 4
	}
	return w
}

// CheckDeps is the pre-pipeline validation: ffmpeg, ffprobe, and the
// configured upscaler binary must all be resolvable. Returns a sentinel
// error on the first missing tool.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if _, err := resolveBinary(cfg.UpscalerBin); err != nil {
		return ErrUpscalerNotFound
	}
	return nil
}

// resolveBinary locates bin: names are looked up on PATH, while anything
// containing a path separator is stat'ed directly.
func resolveBinary(bin string) (string, error) {
	if strings.ContainsRune(bin, os.PathSeparator) {
		if _, err := os.Stat(bin); err != nil {
			return "", err
		}
		return bin, nil
	}
	return exec.LookPath(bin)
}

// firstLine returns the first line of s, trimmed.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
