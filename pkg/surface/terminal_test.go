package surface_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grahabala/grahabala/pkg/ashtakavarga"
	"github.com/grahabala/grahabala/pkg/chart"
	"github.com/grahabala/grahabala/pkg/surface"
)

func testReport(t *testing.T) *ashtakavarga.Report {
	t.Helper()
	engine, err := ashtakavarga.NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	c, err := chart.New([]float64{10, 45, 100, 170, 200, 250, 300, 355})
	if err != nil {
		t.Fatalf("chart.New: %v", err)
	}
	report, err := engine.Score(c)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	return report
}

func TestTerminalRenderer_SAVOnly(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	report := testReport(t)

	var buf bytes.Buffer
	r := &surface.TerminalRenderer{}
	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Sarvashtakavarga") {
		t.Error("output missing Sarvashtakavarga header")
	}
	for _, sign := range []string{"Aries", "Virgo", "Pisces"} {
		if !strings.Contains(out, sign) {
			t.Errorf("output missing sign %s", sign)
		}
	}
	if strings.Contains(out, "Bhinnashtakavarga") {
		t.Error("BAV grids rendered without ShowBAV")
	}
}

func TestTerminalRenderer_WithBAV(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	report := testReport(t)

	var buf bytes.Buffer
	r := &surface.TerminalRenderer{ShowBAV: true}
	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, p := range chart.Planets() {
		want := "Bhinnashtakavarga of " + p.String()
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderBAV_NilMatrix(t *testing.T) {
	var buf bytes.Buffer
	if err := surface.RenderBAV(&buf, nil); err == nil {
		t.Error("expected error for nil matrix, got nil")
	}
}

func TestJSONRenderer_RoundTrips(t *testing.T) {
	report := testReport(t)

	var buf bytes.Buffer
	r := &surface.JSONRenderer{}
	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"grand_total"`) {
		t.Error("JSON output missing grand_total field")
	}
	if !strings.Contains(out, `"sign_scores"`) {
		t.Error("JSON output missing sign_scores field")
	}
}
