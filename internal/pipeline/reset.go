package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/scaleup/internal/config"
	"github.com/backmassage/scaleup/internal/logging"
)

// Reset deletes the prior output video, the staging directory, and the
// output frames directory. Destructive and not undoable: callers must have
// obtained explicit user confirmation first.
func Reset(cfg *config.Config, log *logging.Logger) error {
	for _, path := range []string{cfg.OutputVideo, cfg.TmpFramesDir, cfg.OutFramesDir} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		log.Info("Removing %s", path)
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("reset %s: %w", path, err)
		}
	}
	return nil
}
