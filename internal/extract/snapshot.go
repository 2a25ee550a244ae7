package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"arredo/internal/infrastructure/storage/registry"
)

// snapshotFile is the on-disk shape shared with the registry loader.
type snapshotFile struct {
	registry.Meta
	Records any `json:"records"`
}

// WriteSnapshot writes one registry snapshot with a fresh provenance
// stamp. The output is reviewed by hand before replacing the embedded
// data; extraction never feeds the engine directly.
func WriteSnapshot(dir, name, version string, records any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	file := snapshotFile{
		Meta: registry.Meta{
			Version:    version,
			Provenance: "extracted from legacy site on " + time.Now().Format("2006-01-02"),
		},
		Records: records,
	}

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}
