package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/grahabala/grahabala/pkg/chart"
)

// HTTPProvider fetches positions from a JSON positions service. The service
// owns the ayanamsa convention; responses are passed through unmodified.
type HTTPProvider struct {
	// Endpoint is the positions URL, e.g. "https://positions.example.com/v1".
	Endpoint string
	// Client is the HTTP client to use; http.DefaultClient if nil.
	Client *http.Client
	// Timeout bounds a single request when no deadline is set on the context.
	Timeout time.Duration
}

// positionsResponse is the wire format of the positions service.
type positionsResponse struct {
	Longitudes []float64 `json:"longitudes"`
	Ayanamsa   string    `json:"ayanamsa,omitempty"`
}

func (p *HTTPProvider) Positions(ctx context.Context, at time.Time, loc chart.Location) ([]float64, error) {
	if p.Endpoint == "" {
		return nil, fmt.Errorf("ephemeris endpoint not configured")
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	u, err := url.Parse(p.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing ephemeris endpoint: %w", err)
	}
	q := u.Query()
	q.Set("at", at.UTC().Format(time.RFC3339))
	q.Set("lat", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	if loc.Timezone != "" {
		q.Set("tz", loc.Timezone)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building positions request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching positions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("positions service returned %d: %s", resp.StatusCode, body)
	}

	var pr positionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decoding positions response: %w", err)
	}

	if len(pr.Longitudes) != chart.NumBodies {
		return nil, fmt.Errorf("positions service returned %d longitudes, want %d",
			len(pr.Longitudes), chart.NumBodies)
	}

	return pr.Longitudes, nil
}
