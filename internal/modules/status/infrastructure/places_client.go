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

const defaultPlacesBaseURL = "https://maps.googleapis.com"

// PlacesClient asks the Google Places Details API whether the restaurant is
// currently open. It contributes only an open/closed verdict; occupancy stays
// unknown.
type PlacesClient struct {
	baseURL string
	apiKey  string
	placeID string
	client  *http.Client
	now     func() time.Time
}

func NewPlacesClient(apiKey, placeID string, timeout time.Duration, client *http.Client) *PlacesClient {
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	}
	return &PlacesClient{
		baseURL: defaultPlacesBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
		placeID: strings.TrimSpace(placeID),
		client:  client,
		now:     time.Now,
	}
}

func (c *PlacesClient) Name() string { return "google_places" }

type placesDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		OpeningHours struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"result"`
}

func (c *PlacesClient) Observe(ctx context.Context) (domain.Observation, error) {
	if c.apiKey == "" || c.placeID == "" {
		return domain.Observation{}, port.ErrNotConfigured
	}

	values := url.Values{}
	values.Set("place_id", c.placeID)
	values.Set("fields", "opening_hours")
	values.Set("key", c.apiKey)
	endpoint := c.baseURL + "/maps/api/place/details/json?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Observation{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("places request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Warn("places unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(body))))
		return domain.Observation{}, fmt.Errorf("unexpected places response %d", res.StatusCode)
	}

	var payload placesDetailsResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return domain.Observation{}, fmt.Errorf("decode places response: %w", err)
	}
	if payload.Status != "OK" {
		return domain.Observation{}, fmt.Errorf("places status %q", payload.Status)
	}

	return domain.Observation{
		Open:         payload.Result.OpeningHours.OpenNow,
		HasOpen:      true,
		OccupancyPct: domain.OccupancyUnknown,
		At:           c.now(),
	}, nil
}

func timeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout > 0 {
		return timeout
	}
	return 10 * time.Second
}

var _ port.Source = (*PlacesClient)(nil)
