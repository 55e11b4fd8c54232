// Package registry manages persistent state for the hosted service: owners
// (API consumers) and the chart runs computed for them.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Service provides owner and chart-run management backed by Postgres.
type Service struct {
	db *sql.DB
}

// Owner represents one API consumer of the hosted service.
type Owner struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
}

// ChartRun is the persisted record of one scoring computation. The heavy
// payloads (chart and report JSON) live in blob storage; the registry keeps
// the metadata needed for listing and lookup.
type ChartRun struct {
	ID         string
	OwnerID    string
	Name       string
	CastAt     time.Time
	Latitude   float64
	Longitude  float64
	Timezone   string
	ReportID   string
	GrandTotal int
	CreatedAt  time.Time
}

// NewService creates a new registry Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateOwner creates a new owner.
func (s *Service) CreateOwner(ctx context.Context, displayName string) (*Owner, error) {
	o := &Owner{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO owners (display_name)
		 VALUES ($1)
		 RETURNING id, display_name, created_at`,
		displayName,
	).Scan(&o.ID, &o.DisplayName, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}
	return o, nil
}

// GetOwner retrieves an owner by ID.
func (s *Service) GetOwner(ctx context.Context, id string) (*Owner, error) {
	o := &Owner{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, display_name, created_at FROM owners WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.DisplayName, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get owner %s: %w", id, err)
	}
	return o, nil
}

// CreateChartRun records a completed scoring computation.
func (s *Service) CreateChartRun(ctx context.Context, run *ChartRun) (*ChartRun, error) {
	out := &ChartRun{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO chart_runs (owner_id, name, cast_at, latitude, longitude, timezone, report_id, grand_total)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, owner_id, name, cast_at, latitude, longitude, timezone, report_id, grand_total, created_at`,
		run.OwnerID, run.Name, run.CastAt, run.Latitude, run.Longitude, run.Timezone, run.ReportID, run.GrandTotal,
	).Scan(&out.ID, &out.OwnerID, &out.Name, &out.CastAt, &out.Latitude, &out.Longitude,
		&out.Timezone, &out.ReportID, &out.GrandTotal, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create chart run: %w", err)
	}
	return out, nil
}

// GetChartRun retrieves a chart run by owner and ID.
func (s *Service) GetChartRun(ctx context.Context, ownerID, id string) (*ChartRun, error) {
	out := &ChartRun{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, cast_at, latitude, longitude, timezone, report_id, grand_total, created_at
		 FROM chart_runs WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	).Scan(&out.ID, &out.OwnerID, &out.Name, &out.CastAt, &out.Latitude, &out.Longitude,
		&out.Timezone, &out.ReportID, &out.GrandTotal, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get chart run %s: %w", id, err)
	}
	return out, nil
}

// ListChartRuns returns an owner's chart runs, newest first.
func (s *Service) ListChartRuns(ctx context.Context, ownerID string, limit int) ([]ChartRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, name, cast_at, latitude, longitude, timezone, report_id, grand_total, created_at
		 FROM chart_runs WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`,
		ownerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list chart runs: %w", err)
	}
	defer rows.Close()

	var runs []ChartRun
	for rows.Next() {
		var r ChartRun
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.Name, &r.CastAt, &r.Latitude, &r.Longitude,
			&r.Timezone, &r.ReportID, &r.GrandTotal, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chart run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chart runs: %w", err)
	}
	return runs, nil
}

// DeleteChartRun removes a chart run record. The blobs in storage are left
// for the storage lifecycle policy to reap.
func (s *Service) DeleteChartRun(ctx context.Context, ownerID, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM chart_runs WHERE owner_id = $1 AND id = $2`,
		ownerID, id,
	)
	if err != nil {
		return fmt.Errorf("delete chart run %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("chart run %s not found", id)
	}
	return nil
}
