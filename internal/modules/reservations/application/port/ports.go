package port

import (
	"context"
	"errors"

	"natureVillageApi/internal/modules/reservations/domain"
)

var (
	ErrNotFound       = errors.New("reservation not found")
	ErrSessionGone    = errors.New("booking session not found")
	ErrAlreadyExists  = errors.New("reservation already exists")
	ErrFullyBooked    = errors.New("restaurant fully booked")
	ErrSubmitInFlight = errors.New("submit already in progress")
)

// ReservationRepository persists accepted reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	FindByCode(ctx context.Context, code string) (*domain.Reservation, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]domain.Reservation, error)
	// CountByDate returns confirmed bookings per time slot for the date.
	CountByDate(ctx context.Context, date string) (map[string]int, error)
	Cancel(ctx context.Context, code string) (*domain.Reservation, error)
}

// SessionStore keeps in-progress booking sessions.
type SessionStore interface {
	Put(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Notifier tells restaurant staff about booking activity. Implementations
// must not block the request path on delivery failures.
type Notifier interface {
	ReservationCreated(ctx context.Context, r *domain.Reservation)
}

// Events publishes booking activity to realtime subscribers.
type Events interface {
	ReservationCreated(ctx context.Context, r *domain.Reservation)
	ReservationCancelled(ctx context.Context, r *domain.Reservation)
}
