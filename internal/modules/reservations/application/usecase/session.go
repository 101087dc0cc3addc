package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"natureVillageApi/internal/modules/reservations/application/port"
	"natureVillageApi/internal/modules/reservations/domain"
)

// SessionUseCase drives server-held booking sessions through the step state
// machine with tagged reducer actions.
type SessionUseCase struct {
	store        port.SessionStore
	availability *AvailabilityUseCase
	creator      *CreateReservationUseCase
	rules        domain.Rules

	// mu serializes read-modify-write cycles on sessions. Traffic here is a
	// marketing site's booking form, not a contended hot path.
	mu sync.Mutex
}

func NewSessionUseCase(
	store port.SessionStore,
	availability *AvailabilityUseCase,
	creator *CreateReservationUseCase,
	rules domain.Rules,
) *SessionUseCase {
	return &SessionUseCase{
		store:        store,
		availability: availability,
		creator:      creator,
		rules:        rules,
	}
}

// Start opens a new session at the personal-info step.
func (uc *SessionUseCase) Start(ctx context.Context) (*domain.Session, error) {
	now := uc.rules.Clock().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		State:     domain.NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	slog.Info("booking session started", slog.String("sessionId", session.ID))
	return session, nil
}

// Get returns the current session state.
func (uc *SessionUseCase) Get(ctx context.Context, id string) (*domain.Session, error) {
	return uc.store.Get(ctx, id)
}

// SetField applies a SET_FIELD action. Changing the date triggers an
// availability refresh carrying a new request token; results arriving for a
// superseded token are dropped so only the latest date's slots are shown.
func (uc *SessionUseCase) SetField(ctx context.Context, id string, field domain.Field, value string) (*domain.Session, error) {
	uc.mu.Lock()
	session, err := uc.store.Get(ctx, id)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}

	session.State = domain.Reduce(session.State, domain.Action{
		Kind:  domain.ActionSetField,
		Field: field,
		Value: value,
	}, uc.rules)
	session.UpdatedAt = uc.rules.Clock().UTC()

	var token uint64
	refresh := field == domain.FieldDate
	if refresh {
		session.AvailabilityToken++
		token = session.AvailabilityToken
		session.AvailableTimes = nil
	}
	if err := uc.store.Put(ctx, session); err != nil {
		uc.mu.Unlock()
		return nil, fmt.Errorf("store session: %w", err)
	}
	uc.mu.Unlock()

	if refresh {
		uc.refreshAvailability(ctx, id, session.State.Draft.Date, token)
		return uc.store.Get(ctx, id)
	}
	return session, nil
}

func (uc *SessionUseCase) refreshAvailability(ctx context.Context, id, date string, token uint64) {
	var times []string
	result, err := uc.availability.Execute(ctx, date)
	if err != nil {
		// Fetch failures fall back to "no availability shown"; the submit
		// path still enforces capacity.
		slog.Warn("availability refresh failed", slog.String("sessionId", id), slog.String("date", date), slog.Any("error", err))
	} else {
		times = result.AvailableTimes
	}
	if err := uc.ApplyAvailability(ctx, id, token, times); err != nil {
		slog.Warn("availability apply failed", slog.String("sessionId", id), slog.Any("error", err))
	}
}

// ApplyAvailability records fetched slots unless a newer token has been
// issued since the fetch started.
func (uc *SessionUseCase) ApplyAvailability(ctx context.Context, id string, token uint64, times []string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if token < session.AvailabilityToken {
		slog.Debug("stale availability dropped",
			slog.String("sessionId", id),
			slog.Uint64("token", token),
			slog.Uint64("latest", session.AvailabilityToken),
		)
		return nil
	}
	session.AvailableTimes = times
	session.UpdatedAt = uc.rules.Clock().UTC()
	return uc.store.Put(ctx, session)
}

// Next applies a NEXT_STEP action, gated on the current step's validation.
func (uc *SessionUseCase) Next(ctx context.Context, id string) (*domain.Session, error) {
	return uc.reduce(ctx, id, domain.Action{Kind: domain.ActionNextStep})
}

// Previous applies a PREV_STEP action, never re-validating.
func (uc *SessionUseCase) Previous(ctx context.Context, id string) (*domain.Session, error) {
	return uc.reduce(ctx, id, domain.Action{Kind: domain.ActionPrevStep})
}

func (uc *SessionUseCase) reduce(ctx context.Context, id string, action domain.Action) (*domain.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.State = domain.Reduce(session.State, action, uc.rules)
	session.UpdatedAt = uc.rules.Clock().UTC()
	if err := uc.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// Submit exchanges the drafted reservation for a confirmation. Each attempt
// carries its own idempotency key, and a second submit while one is pending
// is rejected instead of double booking.
func (uc *SessionUseCase) Submit(ctx context.Context, id string) (*domain.Session, error) {
	uc.mu.Lock()
	session, err := uc.store.Get(ctx, id)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	if session.State.Step != domain.StepConfirm {
		uc.mu.Unlock()
		return session, nil
	}
	if session.SubmitInFlight {
		uc.mu.Unlock()
		return nil, port.ErrSubmitInFlight
	}

	session.State = domain.Reduce(session.State, domain.Action{Kind: domain.ActionSubmitStart}, uc.rules)
	if !session.State.Submitting {
		// Validation failed; surface the field errors without submitting.
		session.UpdatedAt = uc.rules.Clock().UTC()
		if err := uc.store.Put(ctx, session); err != nil {
			uc.mu.Unlock()
			return nil, fmt.Errorf("store session: %w", err)
		}
		uc.mu.Unlock()
		return session, nil
	}

	if session.SubmitKey == "" {
		session.SubmitKey = uuid.NewString()
	}
	session.SubmitInFlight = true
	key := session.SubmitKey
	draft := session.State.Draft
	if err := uc.store.Put(ctx, session); err != nil {
		uc.mu.Unlock()
		return nil, fmt.Errorf("store session: %w", err)
	}
	uc.mu.Unlock()

	reservation, createErr := uc.creator.Execute(ctx, CreateReservationInput{
		Draft:          draft,
		IdempotencyKey: key,
	})

	uc.mu.Lock()
	defer uc.mu.Unlock()
	session, err = uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.SubmitInFlight = false
	switch {
	case createErr == nil:
		session.State = domain.Reduce(session.State, domain.Action{
			Kind:         domain.ActionSubmitSuccess,
			Confirmation: reservation,
		}, uc.rules)
	default:
		// A fresh key per manual retry; the spent one already failed.
		session.SubmitKey = ""
		session.State = domain.Reduce(session.State, domain.Action{
			Kind:  domain.ActionSubmitFailure,
			Error: submitErrorKey(createErr),
		}, uc.rules)
		var vErr *ValidationError
		if errors.As(createErr, &vErr) {
			state := session.State.Clone()
			state.FieldErrors = vErr.Fields
			session.State = state
		}
	}
	session.UpdatedAt = uc.rules.Clock().UTC()
	if err := uc.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

func submitErrorKey(err error) string {
	switch {
	case errors.Is(err, port.ErrFullyBooked):
		return domain.MsgFullyBooked
	default:
		return domain.MsgSubmitFailed
	}
}
