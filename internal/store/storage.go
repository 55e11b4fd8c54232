// Package store persists computed charts and scoring reports as JSON blobs.
// Backends share one interface so the daemon can run against the local
// filesystem in development and object storage in production.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for charts and reports.
// Blobs are keyed by owner and id.
type StorageClient interface {
	PutChart(ctx context.Context, ownerID, chartID string, data []byte) error
	GetChart(ctx context.Context, ownerID, chartID string) ([]byte, error)
	PutReport(ctx context.Context, ownerID, reportID string, data []byte) error
	GetReport(ctx context.Context, ownerID, reportID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(ownerID, kind, id string) string {
	return filepath.Join(s.BaseDir, ownerID, kind, id+".json")
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutChart stores a chart blob.
func (s *LocalStorage) PutChart(ctx context.Context, ownerID, chartID string, data []byte) error {
	return s.put(s.path(ownerID, "charts", chartID), data)
}

// GetChart retrieves a chart blob.
func (s *LocalStorage) GetChart(ctx context.Context, ownerID, chartID string) ([]byte, error) {
	return os.ReadFile(s.path(ownerID, "charts", chartID))
}

// PutReport stores a report blob.
func (s *LocalStorage) PutReport(ctx context.Context, ownerID, reportID string, data []byte) error {
	return s.put(s.path(ownerID, "reports", reportID), data)
}

// GetReport retrieves a report blob.
func (s *LocalStorage) GetReport(ctx context.Context, ownerID, reportID string) ([]byte, error) {
	return os.ReadFile(s.path(ownerID, "reports", reportID))
}
