package domain

import "time"

// ReservationStatus is the lifecycle state of a stored reservation.
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation is an accepted booking. The confirmation code is the opaque
// identifier shown to the guest as proof of booking.
type Reservation struct {
	ID                  string            `json:"id"`
	ConfirmationCode    string            `json:"confirmationCode"`
	Status              ReservationStatus `json:"status"`
	Name                string            `json:"name"`
	Email               string            `json:"email"`
	Phone               string            `json:"phone"`
	Date                string            `json:"date"`
	Time                string            `json:"time"`
	PartySize           int               `json:"partySize"`
	SpecialOccasion     string            `json:"specialOccasion,omitempty"`
	SpecialRequests     string            `json:"specialRequests,omitempty"`
	DietaryRestrictions string            `json:"dietaryRestrictions,omitempty"`
	Language            string            `json:"language,omitempty"`
	IdempotencyKey      string            `json:"-"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// Availability lists the bookable slots for one date.
type Availability struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
}

// Session is a server-held booking session driving the step state machine.
type Session struct {
	ID    string
	State State
	// AvailableTimes mirrors the latest availability fetched for the drafted
	// date. AvailabilityToken increases per date change so responses from a
	// superseded fetch are dropped instead of overwriting fresher data.
	AvailableTimes    []string
	AvailabilityToken uint64
	// SubmitInFlight blocks duplicate submits while a create is pending.
	SubmitInFlight bool
	SubmitKey      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Clone deep-copies the session for safe storage.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.State = s.State.Clone()
	out.AvailableTimes = append([]string(nil), s.AvailableTimes...)
	return &out
}
