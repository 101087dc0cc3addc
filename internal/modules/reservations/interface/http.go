package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"natureVillageApi/internal/modules/reservations/application/port"
	"natureVillageApi/internal/modules/reservations/application/usecase"
	"natureVillageApi/internal/modules/reservations/domain"
	"natureVillageApi/internal/shared/httputil"
	"natureVillageApi/internal/shared/i18n"
)

// Handler exposes the reservation booking flow over HTTP.
type Handler struct {
	availability *usecase.AvailabilityUseCase
	reservations *usecase.CreateReservationUseCase
	sessions     *usecase.SessionUseCase
	catalog      *i18n.Catalog
	mapper       *httputil.ErrorMapper
}

func NewHandler(
	availability *usecase.AvailabilityUseCase,
	reservations *usecase.CreateReservationUseCase,
	sessions *usecase.SessionUseCase,
	catalog *i18n.Catalog,
) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(usecase.ErrInvalidDate, http.StatusBadRequest, "invalid date").
		WithMapping(usecase.ErrDateOutOfWindow, http.StatusUnprocessableEntity, "date outside booking window").
		WithMapping(port.ErrNotFound, http.StatusNotFound, "reservation not found").
		WithMapping(port.ErrSessionGone, http.StatusNotFound, "booking session not found").
		WithMapping(port.ErrFullyBooked, http.StatusConflict, "Restaurant fully booked").
		WithMapping(port.ErrSubmitInFlight, http.StatusConflict, "submit already in progress")
	return &Handler{
		availability: availability,
		reservations: reservations,
		sessions:     sessions,
		catalog:      catalog,
		mapper:       mapper,
	}
}

// Register wires the public booking routes plus the staff listing guarded by
// the given middleware.
func (h *Handler) Register(e *echo.Echo, staff echo.MiddlewareFunc) {
	e.POST("/api/availability", h.CheckAvailability)
	e.POST("/api/reservations", h.CreateReservation)
	e.GET("/api/reservations/:code", h.GetReservation)
	e.DELETE("/api/reservations/:code", h.CancelReservation)

	e.POST("/api/booking-sessions", h.StartSession)
	e.GET("/api/booking-sessions/:id", h.GetSession)
	e.POST("/api/booking-sessions/:id/fields", h.SetSessionField)
	e.POST("/api/booking-sessions/:id/next", h.NextStep)
	e.POST("/api/booking-sessions/:id/previous", h.PreviousStep)
	e.POST("/api/booking-sessions/:id/submit", h.SubmitSession)

	e.GET("/api/staff/reservations", h.ListReservations, staff)
}

type errorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

type availabilityRequest struct {
	Date string `json:"date"`
}

// CheckAvailability handles POST /api/availability.
func (h *Handler) CheckAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	result, err := h.availability.Execute(c.Request().Context(), req.Date)
	if err != nil {
		info := h.mapper.Map(err)
		slog.Warn("availability check rejected", slog.String("date", req.Date), slog.Any("error", err))
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, result)
}

type createReservationRequest struct {
	domain.Draft
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

// CreateReservation handles POST /api/reservations. The idempotency key may
// arrive in the body or the Idempotency-Key header.
func (h *Handler) CreateReservation(c echo.Context) error {
	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	key := strings.TrimSpace(c.Request().Header.Get("Idempotency-Key"))
	if key == "" {
		key = strings.TrimSpace(req.IdempotencyKey)
	}
	locale := h.locale(c, req.Draft.Language)

	reservation, err := h.reservations.Execute(c.Request().Context(), usecase.CreateReservationInput{
		Draft:          req.Draft,
		IdempotencyKey: key,
	})
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{
				Error:       h.catalog.Lookup(domain.MsgSubmitFailed, locale),
				FieldErrors: h.localizeFieldErrors(vErr.Fields, locale),
			})
		}
		info := h.mapper.Map(err)
		slog.Warn("reservation create rejected", slog.Int("status", info.Status), slog.Any("error", err))
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusCreated, reservation)
}

// GetReservation handles GET /api/reservations/:code.
func (h *Handler) GetReservation(c echo.Context) error {
	reservation, err := h.reservations.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, reservation)
}

// CancelReservation handles DELETE /api/reservations/:code.
func (h *Handler) CancelReservation(c echo.Context) error {
	reservation, err := h.reservations.Cancel(c.Request().Context(), c.Param("code"))
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, reservation)
}

// ListReservations handles GET /api/staff/reservations?date=YYYY-MM-DD.
func (h *Handler) ListReservations(c echo.Context) error {
	date := c.QueryParam("date")
	reservations, err := h.reservations.ListByDate(c.Request().Context(), date)
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return c.JSON(http.StatusOK, map[string]any{"date": date, "reservations": reservations})
}

// sessionView is the client-facing projection of a booking session.
type sessionView struct {
	ID             string              `json:"id"`
	Step           int                 `json:"step"`
	StepName       string              `json:"stepName"`
	Draft          domain.Draft        `json:"draft"`
	FieldErrors    map[string]string   `json:"fieldErrors,omitempty"`
	Submitting     bool                `json:"submitting"`
	SubmitError    string              `json:"submitError,omitempty"`
	AvailableTimes []string            `json:"availableTimes"`
	Confirmation   *domain.Reservation `json:"confirmation,omitempty"`
}

func (h *Handler) sessionView(s *domain.Session, locale string) sessionView {
	view := sessionView{
		ID:             s.ID,
		Step:           int(s.State.Step),
		StepName:       s.State.Step.String(),
		Draft:          s.State.Draft,
		FieldErrors:    h.localizeFieldErrors(s.State.FieldErrors, locale),
		Submitting:     s.State.Submitting,
		AvailableTimes: s.AvailableTimes,
		Confirmation:   s.State.Confirmation,
	}
	if view.AvailableTimes == nil {
		view.AvailableTimes = []string{}
	}
	if s.State.SubmitError != "" {
		view.SubmitError = h.catalog.Lookup(s.State.SubmitError, locale)
	}
	return view
}

// StartSession handles POST /api/booking-sessions.
func (h *Handler) StartSession(c echo.Context) error {
	session, err := h.sessions.Start(c.Request().Context())
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusCreated, h.sessionView(session, h.locale(c, "")))
}

// GetSession handles GET /api/booking-sessions/:id.
func (h *Handler) GetSession(c echo.Context) error {
	session, err := h.sessions.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, h.sessionView(session, h.locale(c, session.State.Draft.Language)))
}

type setFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SetSessionField handles POST /api/booking-sessions/:id/fields.
func (h *Handler) SetSessionField(c echo.Context) error {
	var req setFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Field) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing field"})
	}
	session, err := h.sessions.SetField(c.Request().Context(), c.Param("id"), domain.Field(req.Field), req.Value)
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, h.sessionView(session, h.locale(c, session.State.Draft.Language)))
}

// NextStep handles POST /api/booking-sessions/:id/next.
func (h *Handler) NextStep(c echo.Context) error {
	session, err := h.sessions.Next(c.Request().Context(), c.Param("id"))
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, h.sessionView(session, h.locale(c, session.State.Draft.Language)))
}

// PreviousStep handles POST /api/booking-sessions/:id/previous.
func (h *Handler) PreviousStep(c echo.Context) error {
	session, err := h.sessions.Previous(c.Request().Context(), c.Param("id"))
	if err != nil {
		info := h.mapper.Map(err)
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, h.sessionView(session, h.locale(c, session.State.Draft.Language)))
}

// SubmitSession handles POST /api/booking-sessions/:id/submit.
func (h *Handler) SubmitSession(c echo.Context) error {
	session, err := h.sessions.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		info := h.mapper.Map(err)
		slog.Warn("session submit rejected", slog.String("sessionId", c.Param("id")), slog.Any("error", err))
		return c.JSON(info.Status, errorResponse{Error: info.Message})
	}
	return c.JSON(http.StatusOK, h.sessionView(session, h.locale(c, session.State.Draft.Language)))
}

func (h *Handler) localizeFieldErrors(fields map[domain.Field]string, locale string) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	localized := make(map[string]string, len(fields))
	for field, key := range fields {
		localized[string(field)] = h.catalog.Lookup(key, locale)
	}
	return localized
}

func (h *Handler) locale(c echo.Context, draftLanguage string) string {
	if locale := i18n.Normalize(c.QueryParam("locale")); locale != "" {
		return locale
	}
	if locale := i18n.Normalize(draftLanguage); locale != "" {
		return locale
	}
	return i18n.DefaultLocale
}
