package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yoshi-675/sl-political-war-tracker/internal/domain"
	"github.com/yoshi-675/sl-political-war-tracker/internal/ports"
)

// Writer persists the run output as a single indented JSON document,
// replacing any previous snapshot at the same path.
type Writer struct {
	path string
}

var _ ports.SnapshotWriter = (*Writer)(nil)

// NewWriter records the target file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Write marshals the snapshot and writes it atomically enough for a
// single-writer run: parent directories are created on demand.
func (w *Writer) Write(_ context.Context, snap domain.Snapshot) error {
	if w.path == "" {
		return fmt.Errorf("snapshot path is not configured")
	}

	payload, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if dir := filepath.Dir(w.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	if err := os.WriteFile(w.path, payload, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}
