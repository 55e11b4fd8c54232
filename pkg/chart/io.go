package chart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes a chart to disk as JSON.
func Save(path string, c *Chart) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for chart: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling chart: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}

	return nil
}

// Load reads a chart from disk and revalidates its longitudes, so a
// hand-edited file cannot smuggle in non-finite or mis-resolved positions.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}

	var raw Chart
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling chart: %w", err)
	}

	c, err := New(raw.Longitudes[:])
	if err != nil {
		return nil, fmt.Errorf("validating chart %s: %w", path, err)
	}
	c.CastAt = raw.CastAt
	c.Location = raw.Location
	return c, nil
}
