package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jonesrussell/profiler/internal/domain"
)

const socialTimeout = 5 * time.Second

// SocialClient reads the optional social signal from the social-graph
// service. The signal only feeds the data quality score, so callers treat
// any failure here as "no signal".
type SocialClient struct {
	baseURL string
	client  *http.Client
}

// NewSocialClient creates a client for the given base URL.
func NewSocialClient(baseURL string) *SocialClient {
	return &SocialClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: socialTimeout},
	}
}

// Read fetches GET /users/:id/social. A 404 means the user has no social
// presence, returned as an empty signal rather than an error.
func (c *SocialClient) Read(ctx context.Context, userID string) (*domain.SocialSignal, error) {
	endpoint := fmt.Sprintf("%s/users/%s/social", c.baseURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &domain.SocialSignal{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("social service returned %d", resp.StatusCode)
	}

	var signal domain.SocialSignal
	if decodeErr := json.NewDecoder(resp.Body).Decode(&signal); decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return &signal, nil
}
