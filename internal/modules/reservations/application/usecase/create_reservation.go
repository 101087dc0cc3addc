package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"natureVillageApi/internal/modules/reservations/application/port"
	"natureVillageApi/internal/modules/reservations/domain"
)

// ValidationError carries per-field message keys for a rejected draft.
type ValidationError struct {
	Fields map[domain.Field]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, string(field))
	}
	return "invalid fields: " + strings.Join(keys, ", ")
}

// CreateReservationInput is the full draft exchanged for a confirmation.
type CreateReservationInput struct {
	Draft          domain.Draft
	IdempotencyKey string
}

// CreateReservationUseCase validates a complete draft and persists exactly
// one reservation per idempotency key.
type CreateReservationUseCase struct {
	repo         port.ReservationRepository
	notifier     port.Notifier
	events       port.Events
	rules        domain.Rules
	slotCapacity int

	// mu makes the capacity check and the insert one atomic step, so
	// concurrent submits cannot all observe the pre-insert count.
	mu sync.Mutex
}

func NewCreateReservationUseCase(
	repo port.ReservationRepository,
	notifier port.Notifier,
	events port.Events,
	rules domain.Rules,
	slotCapacity int,
) *CreateReservationUseCase {
	if slotCapacity <= 0 {
		slotCapacity = 1
	}
	return &CreateReservationUseCase{
		repo:         repo,
		notifier:     notifier,
		events:       events,
		rules:        rules,
		slotCapacity: slotCapacity,
	}
}

// Execute creates the reservation. A duplicate submit carrying a known
// idempotency key returns the original confirmation instead of double booking.
func (uc *CreateReservationUseCase) Execute(ctx context.Context, input CreateReservationInput) (*domain.Reservation, error) {
	draft := input.Draft
	if errs := domain.ValidateAll(draft, uc.rules); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	date, _ := domain.ParseDate(draft.Date)
	normalizedDate := date.Format(domain.DateLayout)
	key := strings.TrimSpace(input.IdempotencyKey)

	reservation, created, err := uc.createLocked(ctx, draft, normalizedDate, key)
	if err != nil {
		return nil, err
	}
	if !created {
		return reservation, nil
	}
	slog.Info("reservation created",
		slog.String("confirmationCode", reservation.ConfirmationCode),
		slog.String("date", reservation.Date),
		slog.String("time", reservation.Time),
		slog.Int("partySize", reservation.PartySize),
	)

	if uc.notifier != nil {
		uc.notifier.ReservationCreated(ctx, reservation)
	}
	if uc.events != nil {
		uc.events.ReservationCreated(ctx, reservation)
	}

	return reservation, nil
}

// createLocked runs the idempotency lookup, the capacity check, and the
// insert under one lock. The second return reports whether a new reservation
// was stored, as opposed to a dedupe hit.
func (uc *CreateReservationUseCase) createLocked(ctx context.Context, draft domain.Draft, normalizedDate, key string) (*domain.Reservation, bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if key != "" {
		existing, err := uc.repo.FindByIdempotencyKey(ctx, key)
		switch {
		case err == nil:
			slog.Info("reservation submit deduplicated",
				slog.String("idempotencyKey", key),
				slog.String("confirmationCode", existing.ConfirmationCode),
			)
			return existing, false, nil
		case !errors.Is(err, port.ErrNotFound):
			return nil, false, fmt.Errorf("idempotency lookup: %w", err)
		}
	}

	counts, err := uc.repo.CountByDate(ctx, normalizedDate)
	if err != nil {
		return nil, false, fmt.Errorf("count reservations: %w", err)
	}
	if counts[draft.Time] >= uc.slotCapacity {
		return nil, false, port.ErrFullyBooked
	}

	reservation := &domain.Reservation{
		ID:                  uuid.NewString(),
		ConfirmationCode:    newConfirmationCode(),
		Status:              domain.ReservationStatusConfirmed,
		Name:                strings.TrimSpace(draft.Name),
		Email:               strings.TrimSpace(draft.Email),
		Phone:               strings.TrimSpace(draft.Phone),
		Date:                normalizedDate,
		Time:                strings.TrimSpace(draft.Time),
		PartySize:           draft.PartySize,
		SpecialOccasion:     strings.TrimSpace(draft.SpecialOccasion),
		SpecialRequests:     strings.TrimSpace(draft.SpecialRequests),
		DietaryRestrictions: strings.TrimSpace(draft.DietaryRestrictions),
		Language:            strings.TrimSpace(draft.Language),
		IdempotencyKey:      key,
		CreatedAt:           uc.rules.Clock().UTC(),
	}
	if err := uc.repo.Create(ctx, reservation); err != nil {
		return nil, false, fmt.Errorf("create reservation: %w", err)
	}
	return reservation, true, nil
}

// GetByCode looks up a reservation by its confirmation code.
func (uc *CreateReservationUseCase) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, port.ErrNotFound
	}
	return uc.repo.FindByCode(ctx, code)
}

// Cancel marks a reservation cancelled and announces it.
func (uc *CreateReservationUseCase) Cancel(ctx context.Context, code string) (*domain.Reservation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, port.ErrNotFound
	}
	reservation, err := uc.repo.Cancel(ctx, code)
	if err != nil {
		return nil, err
	}
	slog.Info("reservation cancelled", slog.String("confirmationCode", reservation.ConfirmationCode))
	if uc.events != nil {
		uc.events.ReservationCancelled(ctx, reservation)
	}
	return reservation, nil
}

// ListByDate returns the reservations for a date, staff use only.
func (uc *CreateReservationUseCase) ListByDate(ctx context.Context, rawDate string) ([]domain.Reservation, error) {
	date, ok := domain.ParseDate(rawDate)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, rawDate)
	}
	return uc.repo.ListByDate(ctx, date.Format(domain.DateLayout))
}

func newConfirmationCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "NV-" + raw[:8]
}
