package infrastructure

import (
	"context"
	"strings"
	"sync"

	"natureVillageApi/internal/modules/reservations/application/port"
	"natureVillageApi/internal/modules/reservations/domain"
)

// MemoryRepository keeps reservations in process memory. The site has no
// durable database; bookings live for the lifetime of the server.
type MemoryRepository struct {
	byID   map[string]*domain.Reservation
	byCode map[string]*domain.Reservation
	byKey  map[string]*domain.Reservation

	lock sync.Mutex
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   map[string]*domain.Reservation{},
		byCode: map[string]*domain.Reservation{},
		byKey:  map[string]*domain.Reservation{},
	}
}

func (m *MemoryRepository) Create(_ context.Context, r *domain.Reservation) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if _, exists := m.byID[r.ID]; exists {
		return port.ErrAlreadyExists
	}
	if _, exists := m.byCode[r.ConfirmationCode]; exists {
		return port.ErrAlreadyExists
	}
	stored := *r
	m.byID[stored.ID] = &stored
	m.byCode[stored.ConfirmationCode] = &stored
	if stored.IdempotencyKey != "" {
		m.byKey[stored.IdempotencyKey] = &stored
	}
	return nil
}

func (m *MemoryRepository) FindByCode(_ context.Context, code string) (*domain.Reservation, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	stored, ok := m.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, port.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (m *MemoryRepository) FindByIdempotencyKey(_ context.Context, key string) (*domain.Reservation, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	stored, ok := m.byKey[strings.TrimSpace(key)]
	if !ok {
		return nil, port.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (m *MemoryRepository) ListByDate(_ context.Context, date string) ([]domain.Reservation, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	reservations := make([]domain.Reservation, 0)
	for _, stored := range m.byID {
		if stored.Date == date {
			reservations = append(reservations, *stored)
		}
	}
	return reservations, nil
}

func (m *MemoryRepository) CountByDate(_ context.Context, date string) (map[string]int, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	counts := map[string]int{}
	for _, stored := range m.byID {
		if stored.Date == date && stored.Status == domain.ReservationStatusConfirmed {
			counts[stored.Time]++
		}
	}
	return counts, nil
}

func (m *MemoryRepository) Cancel(_ context.Context, code string) (*domain.Reservation, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	stored, ok := m.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, port.ErrNotFound
	}
	stored.Status = domain.ReservationStatusCancelled
	copied := *stored
	return &copied, nil
}

var _ port.ReservationRepository = (*MemoryRepository)(nil)

// MemorySessionStore holds booking sessions keyed by ID, handing out deep
// copies so callers never mutate stored state in place.
type MemorySessionStore struct {
	sessions map[string]*domain.Session
	lock     sync.Mutex
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]*domain.Session{}}
}

func (m *MemorySessionStore) Put(_ context.Context, s *domain.Session) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	stored, ok := m.sessions[strings.TrimSpace(id)]
	if !ok {
		return nil, port.ErrSessionGone
	}
	return stored.Clone(), nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.sessions, strings.TrimSpace(id))
	return nil
}

var _ port.SessionStore = (*MemorySessionStore)(nil)
