// Package storage persists run artifacts on the local filesystem.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactStore saves the outputs of a pipeline run.
type ArtifactStore interface {
	// SavePDF writes the rendered document and returns its path.
	SavePDF(runID string, pdf []byte) (string, error)
	// SaveAudit writes the run audit record as JSON and returns its path.
	SaveAudit(runID string, record any) (string, error)
	// LoadAudit reads a previously saved audit record into out.
	LoadAudit(runID string, out any) error
}

// LocalArtifactStore keeps one directory per run under a base directory.
type LocalArtifactStore struct {
	dir string
}

// NewLocalArtifactStore creates a store rooted at dir, creating it if
// needed.
func NewLocalArtifactStore(dir string) (*LocalArtifactStore, error) {
	if dir == "" {
		dir = "artifacts"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}
	return &LocalArtifactStore{dir: dir}, nil
}

// SavePDF writes <dir>/<runID>/resume.pdf.
func (s *LocalArtifactStore) SavePDF(runID string, pdf []byte) (string, error) {
	runDir, err := s.runDir(runID)
	if err != nil {
		return "", err
	}
	path := filepath.Join(runDir, "resume.pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write pdf artifact: %w", err)
	}
	return path, nil
}

// SaveAudit writes <dir>/<runID>/audit.json with indented JSON.
func (s *LocalArtifactStore) SaveAudit(runID string, record any) (string, error) {
	runDir, err := s.runDir(runID)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode audit record: %w", err)
	}
	path := filepath.Join(runDir, "audit.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audit artifact: %w", err)
	}
	return path, nil
}

// LoadAudit reads <dir>/<runID>/audit.json into out. A missing record
// returns os.ErrNotExist through the wrapped error.
func (s *LocalArtifactStore) LoadAudit(runID string, out any) error {
	path := filepath.Join(s.dir, runID, "audit.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read audit record for run %s: %w", runID, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse audit record for run %s: %w", runID, err)
	}
	return nil
}

func (s *LocalArtifactStore) runDir(runID string) (string, error) {
	runDir := filepath.Join(s.dir, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}
	return runDir, nil
}
