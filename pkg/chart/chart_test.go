package chart_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grahabala/grahabala/pkg/chart"
)

func TestSignOf_Boundaries(t *testing.T) {
	cases := []struct {
		lon  float64
		want chart.Sign
	}{
		{0, 0},
		{29.999, 0},
		{30, 1},
		{359.999, 11},
		{360, 0},
		{745, 0},  // 745 - 720 = 25 degrees
		{-15, 11}, // wraps to 345
		{-360, 0},
	}

	for _, c := range cases {
		got := chart.SignOf(c.lon)
		if got != c.want {
			t.Errorf("SignOf(%v) = %v, want %v", c.lon, got, c.want)
		}
	}
}

func TestSignOf_FullTurnInvariance(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 7.3 {
		base := chart.SignOf(lon)
		for _, k := range []float64{-2, -1, 1, 3, 10} {
			got := chart.SignOf(lon + k*360)
			if got != base {
				t.Errorf("SignOf(%v + %v*360) = %v, want %v", lon, k, got, base)
			}
		}
	}
}

func TestRelativeHouse_Range(t *testing.T) {
	for from := chart.Sign(0); from < chart.NumSigns; from++ {
		for to := chart.Sign(0); to < chart.NumSigns; to++ {
			h := chart.RelativeHouse(from, to)
			if h < 1 || h > 12 {
				t.Fatalf("RelativeHouse(%v, %v) = %d, outside [1,12]", from, to, h)
			}
		}
	}
}

func TestRelativeHouse_OwnSignIsFirst(t *testing.T) {
	for s := chart.Sign(0); s < chart.NumSigns; s++ {
		if h := chart.RelativeHouse(s, s); h != 1 {
			t.Errorf("RelativeHouse(%v, %v) = %d, want 1", s, s, h)
		}
	}
}

func TestRelativeHouse_Wraps(t *testing.T) {
	// Counting from Pisces (11) to Aries (0) is house 2.
	if h := chart.RelativeHouse(11, 0); h != 2 {
		t.Errorf("RelativeHouse(Pisces, Aries) = %d, want 2", h)
	}
	// Counting from Aries to Pisces is house 12.
	if h := chart.RelativeHouse(0, 11); h != 12 {
		t.Errorf("RelativeHouse(Aries, Pisces) = %d, want 12", h)
	}
}

func TestNew_ResolvesSigns(t *testing.T) {
	longs := []float64{10, 45, 100, 170, 200, 250, 300, 355}
	c, err := chart.New(longs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := [chart.NumBodies]chart.Sign{0, 1, 3, 5, 6, 8, 10, 11}
	for i, s := range c.Signs {
		if s != want[i] {
			t.Errorf("sign for %v = %v, want %v", chart.Body(i), s, want[i])
		}
	}
}

func TestNew_WrongArity(t *testing.T) {
	if _, err := chart.New([]float64{1, 2, 3}); err == nil {
		t.Error("expected error for 3 longitudes, got nil")
	}
	if _, err := chart.New(make([]float64, 9)); err == nil {
		t.Error("expected error for 9 longitudes, got nil")
	}
}

func TestNew_NonFinite(t *testing.T) {
	longs := []float64{0, 0, 0, math.NaN(), 0, 0, 0, 0}
	_, err := chart.New(longs)
	if err == nil {
		t.Fatal("expected error for NaN longitude, got nil")
	}
	// The error must identify the offending body.
	if got := err.Error(); !strings.Contains(got, "Mercury") {
		t.Errorf("error %q does not name Mercury", got)
	}

	longs[3] = math.Inf(1)
	if _, err := chart.New(longs); err == nil {
		t.Error("expected error for +Inf longitude, got nil")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	c, err := chart.New([]float64{12.5, 98.1, 200.7, 33.3, 271.0, 145.9, 310.2, 5.5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "chart.json")
	if err := chart.Save(path, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := chart.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Longitudes != c.Longitudes {
		t.Errorf("longitudes = %v, want %v", loaded.Longitudes, c.Longitudes)
	}
	if loaded.Signs != c.Signs {
		t.Errorf("signs = %v, want %v", loaded.Signs, c.Signs)
	}
}
