// Package backup implements the snapshotter port by writing timestamped
// JSON copies of a project to disk before destructive merges. The files are
// the rollback-by-hand artifact; nothing in plume reads them back.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
	"github.com/plume-labs/plume-cli/internal/logger"
)

// Ensure FileSnapshotter implements the interface.
var _ driven.Snapshotter = (*FileSnapshotter)(nil)

// FileSnapshotter captures project snapshots as JSON files.
type FileSnapshotter struct {
	store driven.ProjectStore
	dir   string
}

// NewFileSnapshotter creates a snapshotter writing into the given directory.
// If dir is empty, defaults to ~/.plume/backups.
func NewFileSnapshotter(store driven.ProjectStore, dir string) (*FileSnapshotter, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".plume", "backups")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}

	return &FileSnapshotter{store: store, dir: dir}, nil
}

// Dir returns the backup directory.
func (s *FileSnapshotter) Dir() string {
	return s.dir
}

// Snapshot loads the project, writes a timestamped JSON copy to disk and
// returns a deep, detached copy. Any failure aborts without touching the
// project.
func (s *FileSnapshotter) Snapshot(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.store.Get(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("snapshot project %s: %w", projectID, err)
	}

	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot project %s: %w", projectID, err)
	}

	name := fmt.Sprintf("%s-%s.json", projectID, time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("snapshot project %s: %w", projectID, err)
	}

	logger.Debug("Wrote snapshot %s", path)
	clone := project.Clone()
	return &clone, nil
}
