package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"natureVillageApi/internal/modules/status/application/port"
	"natureVillageApi/internal/modules/status/application/usecase"
	"natureVillageApi/internal/modules/status/domain"
	"natureVillageApi/internal/modules/status/infrastructure"
	"natureVillageApi/internal/platform/realtime"
)

// 2026-09-01 is a Tuesday.
var testNow = time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)

func newStatusServer(t *testing.T) (*echo.Echo, *infrastructure.POSFeed) {
	t.Helper()
	day, ok := domain.BuildSchedule("11:30", "21:30")
	if !ok {
		t.Fatal("failed to build schedule")
	}
	weekly := domain.Weekly{time.Tuesday: day}

	feed := infrastructure.NewPOSFeed()
	hub := realtime.NewHub()
	status := usecase.NewStatusUseCase([]port.SourceEntry{
		{Source: feed, MaxAge: 5 * time.Minute},
	}, weekly, infrastructure.NewHubEvents(hub), func() time.Time { return testNow })

	e := echo.New()
	NewHandler(status, hub, feed).Register(e)
	return e, feed
}

func TestGetStatusHeuristicFallback(t *testing.T) {
	e, _ := newStatusServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var report domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Source != "heuristic" {
		t.Fatalf("expected the heuristic source before any POS data, got %q", report.Source)
	}
	if !report.Open {
		t.Fatal("expected open during tuesday dinner service")
	}
}

func TestPOSWebhookFeedsTheCascade(t *testing.T) {
	e, _ := newStatusServer(t)

	payload := `{"occupied":72,"capacity":80,"observedAt":"2026-09-01T18:58:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/pos", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d (%s)", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var report domain.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Source != "pos" {
		t.Fatalf("expected the pos source after a webhook, got %q", report.Source)
	}
	if report.OccupancyPct != 90 {
		t.Fatalf("expected 90%% occupancy, got %d", report.OccupancyPct)
	}
	if report.BusyLevel != domain.BusyPacked {
		t.Fatalf("expected %q, got %q", domain.BusyPacked, report.BusyLevel)
	}
}

func TestPOSWebhookValidation(t *testing.T) {
	e, _ := newStatusServer(t)

	cases := []struct {
		name    string
		payload string
	}{
		{name: "zero capacity", payload: `{"occupied":10,"capacity":0}`},
		{name: "negative occupied", payload: `{"occupied":-1,"capacity":80}`},
		{name: "not json", payload: `occupied=10`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/pos", strings.NewReader(tc.payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}
