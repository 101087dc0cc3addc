package domain

import (
	"regexp"
	"strings"
	"time"
)

// Message keys for field errors, resolved per locale by the i18n catalog.
const (
	MsgNameRequired     = "reservation.error.name_required"
	MsgEmailRequired    = "reservation.error.email_required"
	MsgEmailInvalid     = "reservation.error.email_invalid"
	MsgPhoneRequired    = "reservation.error.phone_required"
	MsgPhoneInvalid     = "reservation.error.phone_invalid"
	MsgDateRequired     = "reservation.error.date_required"
	MsgDateInvalid      = "reservation.error.date_invalid"
	MsgDateOutOfWindow  = "reservation.error.date_out_of_window"
	MsgTimeRequired     = "reservation.error.time_required"
	MsgTimeInvalid      = "reservation.error.time_invalid"
	MsgPartyRequired    = "reservation.error.party_size_required"
	MsgPartyOutOfRange  = "reservation.error.party_size_range"
	MsgFullyBooked      = "reservation.error.fully_booked"
	MsgSubmitFailed     = "reservation.error.submit_failed"
	MsgSubmitInProgress = "reservation.error.submit_in_progress"
)

// MaxPartySize caps the guests accepted through the form.
const MaxPartySize = 20

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// Rules carries the validation context shared by every draft check.
type Rules struct {
	Now        func() time.Time
	WindowDays int
	Slots      []string
}

// Clock returns the configured time source, defaulting to time.Now.
func (r Rules) Clock() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Window returns the booking window in days, defaulting to DefaultWindowDays.
func (r Rules) Window() int {
	if r.WindowDays > 0 {
		return r.WindowDays
	}
	return DefaultWindowDays
}

// SlotSet returns the offered time slots, defaulting to DefaultTimeSlots.
func (r Rules) SlotSet() []string {
	if len(r.Slots) > 0 {
		return r.Slots
	}
	return DefaultTimeSlots
}

// ValidateFields checks only the given fields and returns a message key per
// failing field. An empty map means every checked field passed.
func ValidateFields(d Draft, fields []Field, rules Rules) map[Field]string {
	errs := map[Field]string{}
	for _, field := range fields {
		if key := validateField(d, field, rules); key != "" {
			errs[field] = key
		}
	}
	return errs
}

// ValidateAll checks every required field across the data-entry steps.
func ValidateAll(d Draft, rules Rules) map[Field]string {
	fields := make([]Field, 0, 8)
	for step := StepPersonalInfo; step <= StepConfirm; step++ {
		fields = append(fields, FieldsForStep(step)...)
	}
	return ValidateFields(d, fields, rules)
}

func validateField(d Draft, field Field, rules Rules) string {
	switch field {
	case FieldName:
		if strings.TrimSpace(d.Name) == "" {
			return MsgNameRequired
		}
	case FieldEmail:
		email := strings.TrimSpace(d.Email)
		if email == "" {
			return MsgEmailRequired
		}
		if !emailPattern.MatchString(email) {
			return MsgEmailInvalid
		}
	case FieldPhone:
		phone := normalizePhone(d.Phone)
		if phone == "" {
			return MsgPhoneRequired
		}
		if !phonePattern.MatchString(phone) {
			return MsgPhoneInvalid
		}
	case FieldDate:
		raw := strings.TrimSpace(d.Date)
		if raw == "" {
			return MsgDateRequired
		}
		date, ok := ParseDate(raw)
		if !ok {
			return MsgDateInvalid
		}
		if !InBookingWindow(date, rules.Clock(), rules.Window()) {
			return MsgDateOutOfWindow
		}
	case FieldTime:
		if strings.TrimSpace(d.Time) == "" {
			return MsgTimeRequired
		}
		if !IsTimeSlot(d.Time, rules.SlotSet()) {
			return MsgTimeInvalid
		}
	case FieldPartySize:
		if d.PartySize == 0 {
			return MsgPartyRequired
		}
		if d.PartySize < 1 || d.PartySize > MaxPartySize {
			return MsgPartyOutOfRange
		}
	}
	return ""
}

func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separators are tolerated, the widget normalizes loosely
		default:
			return ""
		}
	}
	return b.String()
}
