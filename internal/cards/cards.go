// Package cards assembles the individual profile SVG cards and writes
// them into the assets directory.
package cards

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// writeSVG writes one card, creating the output directory on demand.
func writeSVG(dir, name, svg string, log *zap.Logger) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("card written", zap.String("path", path))
	return path, nil
}
