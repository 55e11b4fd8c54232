package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetChart(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"longitudes":[0,0,0,0,0,0,0,0]}`)
	if err := s.PutChart(ctx, "owner1", "chart1", data); err != nil {
		t.Fatalf("PutChart: %v", err)
	}

	got, err := s.GetChart(ctx, "owner1", "chart1")
	if err != nil {
		t.Fatalf("GetChart: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetChart = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "owner1", "charts", "chart1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStoragePutGetReport(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"sav":{"grand_total":337}}`)
	if err := s.PutReport(ctx, "owner1", "report1", data); err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	got, err := s.GetReport(ctx, "owner1", "report1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetReport = %q, want %q", got, data)
	}

	expectedPath := filepath.Join(dir, "owner1", "reports", "report1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetNotFound(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	_, err := s.GetReport(ctx, "owner1", "nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent report")
	}
}
