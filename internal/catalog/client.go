// Package catalog provides the HTTP client for the external skill catalog.
// The catalog is a black box: one search endpoint, one detail endpoint.
// No retries here; a failed search is final for that call.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/telemetry"
)

// ErrUnavailable indicates the catalog service is unreachable.
var ErrUnavailable = errors.New("skill catalog unavailable")

// ErrNotFound indicates the catalog has no skill with the requested id.
var ErrNotFound = errors.New("skill not found")

const (
	defaultTimeout = 5 * time.Second
	defaultRPS     = 10
)

// Config holds catalog client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RPS caps outgoing search requests per second. The per-category
	// fan-out can issue many searches at once; the limiter smooths them.
	RPS int
	// Telemetry records search durations and failures when set.
	Telemetry *telemetry.Provider
}

// Client is an HTTP client for the skill catalog.
type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	telemetry *telemetry.Provider
}

// searchResponse is the catalog's search result envelope.
type searchResponse struct {
	Results []searchHit `json:"results"`
}

type searchHit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Relevance   float64  `json:"relevance"`
}

// NewClient creates a catalog client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rps := cfg.RPS
	if rps <= 0 {
		rps = defaultRPS
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		http:      &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), rps),
		telemetry: cfg.Telemetry,
	}
}

// Search queries the catalog and returns candidates in the catalog's own
// relevance order. The upstream order is preserved because it is the final
// tie-breaker downstream.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.CandidateItem, error) {
	start := time.Now()
	items, err := c.search(ctx, query, limit)
	if c.telemetry != nil {
		c.telemetry.RecordCatalogSearch(time.Since(start), err)
	}
	return items, err
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]domain.CandidateItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + "/skills/search?q=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned %d", resp.StatusCode)
	}

	var body searchResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	items := make([]domain.CandidateItem, 0, len(body.Results))
	for _, hit := range body.Results {
		items = append(items, domain.CandidateItem{
			ID:            hit.ID,
			Name:          hit.Name,
			Description:   hit.Description,
			Categories:    hit.Categories,
			BaseRelevance: hit.Relevance,
		})
	}
	return items, nil
}

// Detail fetches a single catalog item by id.
func (c *Client) Detail(ctx context.Context, id string) (*domain.CandidateItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/skills/"+url.PathEscape(id), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("skill %s: %w", id, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned %d", resp.StatusCode)
	}

	var hit searchHit
	if decodeErr := json.NewDecoder(resp.Body).Decode(&hit); decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return &domain.CandidateItem{
		ID:            hit.ID,
		Name:          hit.Name,
		Description:   hit.Description,
		Categories:    hit.Categories,
		BaseRelevance: hit.Relevance,
	}, nil
}

// Health checks whether the catalog answers at all.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}
	return nil
}
