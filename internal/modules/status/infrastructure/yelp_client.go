package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"natureVillageApi/internal/modules/status/application/port"
	"natureVillageApi/internal/modules/status/domain"
)

const defaultYelpBaseURL = "https://api.yelp.com"

// YelpClient reads the business hours flag from the Yelp Fusion API.
type YelpClient struct {
	baseURL    string
	apiKey     string
	businessID string
	client     *http.Client
	now        func() time.Time
}

func NewYelpClient(apiKey, businessID string, timeout time.Duration, client *http.Client) *YelpClient {
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	}
	return &YelpClient{
		baseURL:    defaultYelpBaseURL,
		apiKey:     strings.TrimSpace(apiKey),
		businessID: strings.TrimSpace(businessID),
		client:     client,
		now:        time.Now,
	}
}

func (c *YelpClient) Name() string { return "yelp" }

type yelpBusinessResponse struct {
	Hours []struct {
		IsOpenNow bool `json:"is_open_now"`
	} `json:"hours"`
}

func (c *YelpClient) Observe(ctx context.Context) (domain.Observation, error) {
	if c.apiKey == "" || c.businessID == "" {
		return domain.Observation{}, port.ErrNotConfigured
	}

	endpoint := c.baseURL + "/v3/businesses/" + url.PathEscape(c.businessID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Observation{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("yelp request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Warn("yelp unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return domain.Observation{}, fmt.Errorf("unexpected yelp response %d", res.StatusCode)
	}

	var payload yelpBusinessResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return domain.Observation{}, fmt.Errorf("decode yelp response: %w", err)
	}
	if len(payload.Hours) == 0 {
		return domain.Observation{}, fmt.Errorf("yelp response missing hours")
	}

	return domain.Observation{
		Open:         payload.Hours[0].IsOpenNow,
		HasOpen:      true,
		OccupancyPct: domain.OccupancyUnknown,
		At:           c.now(),
	}, nil
}

var _ port.Source = (*YelpClient)(nil)
