package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"natureVillageApi/internal/modules/reservations/application/port"
	"natureVillageApi/internal/modules/reservations/domain"
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrDateOutOfWindow = errors.New("date outside booking window")
)

// AvailabilityUseCase resolves which time slots remain bookable for a date.
type AvailabilityUseCase struct {
	repo         port.ReservationRepository
	rules        domain.Rules
	slotCapacity int
}

func NewAvailabilityUseCase(repo port.ReservationRepository, rules domain.Rules, slotCapacity int) *AvailabilityUseCase {
	if slotCapacity <= 0 {
		slotCapacity = 1
	}
	return &AvailabilityUseCase{repo: repo, rules: rules, slotCapacity: slotCapacity}
}

// Execute returns the fixed slot enum minus slots already at capacity.
func (uc *AvailabilityUseCase) Execute(ctx context.Context, rawDate string) (*domain.Availability, error) {
	date, ok := domain.ParseDate(rawDate)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, rawDate)
	}
	if !domain.InBookingWindow(date, uc.rules.Clock(), uc.rules.Window()) {
		return nil, ErrDateOutOfWindow
	}

	normalized := date.Format(domain.DateLayout)
	counts, err := uc.repo.CountByDate(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	available := make([]string, 0, len(uc.rules.SlotSet()))
	for _, slot := range uc.rules.SlotSet() {
		if counts[slot] < uc.slotCapacity {
			available = append(available, slot)
		}
	}
	slog.Debug("availability resolved", slog.String("date", normalized), slog.Int("slots", len(available)))

	return &domain.Availability{Date: normalized, AvailableTimes: available}, nil
}
