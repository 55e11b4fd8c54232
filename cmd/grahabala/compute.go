package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/grahabala/grahabala/pkg/ashtakavarga"
	"github.com/grahabala/grahabala/pkg/chart"
	"github.com/grahabala/grahabala/pkg/config"
	"github.com/grahabala/grahabala/pkg/ephemeris"
	"github.com/grahabala/grahabala/pkg/surface"
)

func newComputeCmd() *cobra.Command {
	var (
		chartPath string
		endpoint  string
		atStr     string
		lat       float64
		lon       float64
		tz        string
		outputFmt string
		showBAV   bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Full Ashtakavarga pipeline for one chart",
		Long:  `Acquires sidereal positions, scores all seven planets, aggregates the Sarvashtakavarga, and renders the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.Context(), computeOpts{
				chartPath: chartPath,
				endpoint:  endpoint,
				atStr:     atStr,
				lat:       lat,
				lon:       lon,
				tz:        tz,
				outputFmt: outputFmt,
				showBAV:   showBAV,
			})
		},
	}

	cmd.Flags().StringVar(&chartPath, "chart", "", "Path to a chart JSON file (skips the positions service)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Positions service URL")
	cmd.Flags().StringVar(&atStr, "at", "", "Instant to cast for, RFC3339 (default: now)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in degrees")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA timezone of the location")
	cmd.Flags().StringVar(&outputFmt, "output", "", "Output format: text or json")
	cmd.Flags().BoolVar(&showBAV, "show-bav", false, "Include the seven per-planet bindu grids")

	return cmd
}

type computeOpts struct {
	chartPath string
	endpoint  string
	atStr     string
	lat       float64
	lon       float64
	tz        string
	outputFmt string
	showBAV   bool
}

func runCompute(ctx context.Context, opts computeOpts) error {
	cfg := loadConfig()

	at := time.Now().UTC()
	if opts.atStr != "" {
		parsed, err := time.Parse(time.RFC3339, opts.atStr)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
		at = parsed
	}
	loc := chart.Location{Latitude: opts.lat, Longitude: opts.lon, Timezone: opts.tz}

	provider, err := selectProvider(cfg, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Step 1/3: Acquiring positions...\n")
	longitudes, err := provider.Positions(ctx, at, loc)
	if err != nil {
		return fmt.Errorf("acquiring positions: %w", err)
	}

	c, err := chart.New(longitudes)
	if err != nil {
		return fmt.Errorf("building chart: %w", err)
	}
	c.CastAt = at
	c.Location = loc

	fmt.Fprintf(os.Stderr, "Step 2/3: Scoring...\n")
	engine, err := ashtakavarga.NewEngine(nil)
	if err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}

	report, err := engine.Score(c)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Step 3/3: Rendering...\n")
	saveReport(report)
	if path, err := saveChart(config.ChartDir(), report); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save chart: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Chart saved: %s\n", path)
	}

	format := opts.outputFmt
	if format == "" {
		format = cfg.Output.Format
	}

	switch format {
	case "json":
		renderer := &surface.JSONRenderer{}
		if err := renderer.Render(os.Stdout, report); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	default:
		renderer := &surface.TerminalRenderer{ShowBAV: opts.showBAV}
		if err := renderer.Render(os.Stdout, report); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}

	return nil
}

// loadConfig finds and loads the nearest config file, falling back to defaults.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	path := config.FindConfigFile(cwd)
	if path == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// selectProvider picks the positions provider from flags and config.
// An explicit --chart wins, then --endpoint, then the configured source.
func selectProvider(cfg *config.Config, opts computeOpts) (ephemeris.Provider, error) {
	if opts.chartPath != "" {
		return &ephemeris.FileProvider{Path: opts.chartPath}, nil
	}
	if opts.endpoint != "" {
		return &ephemeris.HTTPProvider{Endpoint: opts.endpoint, Timeout: time.Duration(cfg.Ephemeris.Timeout) * time.Second}, nil
	}

	switch cfg.Ephemeris.Source {
	case "http":
		if cfg.Ephemeris.Endpoint == "" {
			return nil, fmt.Errorf("ephemeris source is http but no endpoint is configured")
		}
		return &ephemeris.HTTPProvider{Endpoint: cfg.Ephemeris.Endpoint, Timeout: time.Duration(cfg.Ephemeris.Timeout) * time.Second}, nil
	case "static":
		if got := len(cfg.Ephemeris.Longitudes); got != chart.NumBodies {
			return nil, fmt.Errorf("static ephemeris source requires %d configured longitudes, got %d", chart.NumBodies, got)
		}
		return &ephemeris.Static{Longitudes: cfg.Ephemeris.Longitudes}, nil
	case "file", "":
		return nil, fmt.Errorf("no chart file given; pass --chart or configure an ephemeris endpoint")
	default:
		return nil, fmt.Errorf("unknown ephemeris source %q", cfg.Ephemeris.Source)
	}
}

// saveChart persists the cast chart under the report's ID, so a later
// `grahabala bav --chart` can replay it.
func saveChart(dir string, report *ashtakavarga.Report) (string, error) {
	path := filepath.Join(dir, report.ID+".json")
	if err := chart.Save(path, report.Chart); err != nil {
		return "", err
	}
	return path, nil
}

// saveReport persists a report to the local report cache directory.
func saveReport(report *ashtakavarga.Report) {
	dir := config.ReportDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create report dir: %v\n", err)
		return
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to marshal report: %v\n", err)
		return
	}

	path := filepath.Join(dir, report.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save report: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Report saved: %s\n", path)
}
