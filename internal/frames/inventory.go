// Package frames enumerates the staging and output frame directories and
// derives the resume offset for interrupted runs.
//
// Frame files in both directories follow the same zero-padded sequential
// naming scheme, so lexicographic order equals frame sequence order. That
// ordering is load-bearing: the resume offset and the final audio/video
// re-sync both depend on it.
package frames

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Pattern is the printf-style frame naming scheme shared by extraction,
// upscaling, and assembly.
const Pattern = "frame%08d.jpg"

// ErrNoStaging is returned when the staging directory is missing or
// unreadable.
var ErrNoStaging = errors.New("staging directory missing or unreadable")

// Inventory describes the staging frames and resume state for one run.
type Inventory struct {
	// Names holds the staging frame filenames in sequence order: index i
	// in Names is frame i.
	Names []string

	// Total is the number of staging frames.
	Total int

	// StartIndex is the resume offset: the length of the contiguous prefix
	// of staging frames that already have a non-empty counterpart in the
	// output directory. Frames below it are treated as done; a gap or an
	// empty (truncated) output file ends the prefix, so everything from
	// there on is redone.
	StartIndex int
}

// Take lists stagingDir in sorted order and verifies the output directory
// against it to derive the resume offset. The output directory is created if
// absent; a missing or unreadable staging directory returns an error wrapping
// [ErrNoStaging].
func Take(stagingDir, outputDir string) (*Inventory, error) {
	names, err := listFiles(stagingDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStaging, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	return &Inventory{
		Names:      names,
		Total:      len(names),
		StartIndex: verifiedPrefix(names, outputDir),
	}, nil
}

// verifiedPrefix returns how many leading staging frames have a non-empty
// same-named file in outputDir. Zero-size files count as not done: an
// aborted upscaler can leave a truncated output behind.
func verifiedPrefix(names []string, outputDir string) int {
	for i, name := range names {
		fi, err := os.Stat(filepath.Join(outputDir, name))
		if err != nil || fi.Size() == 0 {
			return i
		}
	}
	return len(names)
}

// listFiles returns the regular-file entries of dir in lexicographic order
// (os.ReadDir sorts by filename). Subdirectories are ignored.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
