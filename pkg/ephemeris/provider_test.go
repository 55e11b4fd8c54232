package ephemeris_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/grahabala/grahabala/pkg/chart"
	"github.com/grahabala/grahabala/pkg/ephemeris"
)

var testLoc = chart.Location{Latitude: 12.97, Longitude: 77.59, Timezone: "Asia/Kolkata"}

func TestStatic_CopiesPositions(t *testing.T) {
	longs := []float64{10, 45, 100, 170, 200, 250, 300, 355}
	p := &ephemeris.Static{Longitudes: longs}

	got, err := p.Positions(context.Background(), time.Now(), testLoc)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}

	got[0] = 999 // mutating the result must not touch the provider
	again, err := p.Positions(context.Background(), time.Now(), testLoc)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if again[0] != 10 {
		t.Errorf("provider positions mutated: got %v", again[0])
	}
}

func TestFileProvider_ReadsChart(t *testing.T) {
	c, err := chart.New([]float64{0, 30, 60, 90, 120, 150, 180, 210})
	if err != nil {
		t.Fatalf("chart.New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "chart.json")
	if err := chart.Save(path, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p := &ephemeris.FileProvider{Path: path}
	got, err := p.Positions(context.Background(), time.Now(), testLoc)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(got) != chart.NumBodies {
		t.Fatalf("got %d longitudes, want %d", len(got), chart.NumBodies)
	}
	if got[7] != 210 {
		t.Errorf("ascendant longitude = %v, want 210", got[7])
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	p := &ephemeris.FileProvider{Path: filepath.Join(t.TempDir(), "nope.json")}
	if _, err := p.Positions(context.Background(), time.Now(), testLoc); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestHTTPProvider_FetchesPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("at") == "" {
			http.Error(w, "missing query params", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"longitudes": [1, 31, 61, 91, 121, 151, 181, 211], "ayanamsa": "lahiri"}`))
	}))
	defer srv.Close()

	p := &ephemeris.HTTPProvider{Endpoint: srv.URL, Timeout: 5 * time.Second}
	got, err := p.Positions(context.Background(), time.Date(1990, 3, 14, 6, 30, 0, 0, time.UTC), testLoc)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if got[0] != 1 || got[7] != 211 {
		t.Errorf("unexpected longitudes %v", got)
	}
}

func TestHTTPProvider_WrongArity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"longitudes": [1, 2, 3]}`))
	}))
	defer srv.Close()

	p := &ephemeris.HTTPProvider{Endpoint: srv.URL}
	if _, err := p.Positions(context.Background(), time.Now(), testLoc); err == nil {
		t.Error("expected error for short longitude array, got nil")
	}
}

func TestHTTPProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ephemeris offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := &ephemeris.HTTPProvider{Endpoint: srv.URL}
	if _, err := p.Positions(context.Background(), time.Now(), testLoc); err == nil {
		t.Error("expected error for 503, got nil")
	}
}

func TestHTTPProvider_NoEndpoint(t *testing.T) {
	p := &ephemeris.HTTPProvider{}
	if _, err := p.Positions(context.Background(), time.Now(), testLoc); err == nil {
		t.Error("expected error for empty endpoint, got nil")
	}
}
