package domain

import "strings"

// Field identifies a single draft input.
type Field string

const (
	FieldName                Field = "name"
	FieldEmail               Field = "email"
	FieldPhone               Field = "phone"
	FieldDate                Field = "date"
	FieldTime                Field = "time"
	FieldPartySize           Field = "partySize"
	FieldSpecialOccasion     Field = "specialOccasion"
	FieldSpecialRequests     Field = "specialRequests"
	FieldDietaryRestrictions Field = "dietaryRestrictions"
	FieldLanguage            Field = "language"
)

// Draft is the in-progress reservation state collected across the form steps.
type Draft struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	PartySize           int    `json:"partySize"`
	SpecialOccasion     string `json:"specialOccasion,omitempty"`
	SpecialRequests     string `json:"specialRequests,omitempty"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
	Language            string `json:"language,omitempty"`
}

// Set assigns a field by name. PartySize accepts numeric strings; anything
// unparsable leaves it at zero so validation reports it as missing.
func (d *Draft) Set(field Field, value string) bool {
	value = strings.TrimSpace(value)
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldDate:
		d.Date = value
	case FieldTime:
		d.Time = value
	case FieldPartySize:
		d.PartySize = parsePartySize(value)
	case FieldSpecialOccasion:
		d.SpecialOccasion = value
	case FieldSpecialRequests:
		d.SpecialRequests = value
	case FieldDietaryRestrictions:
		d.DietaryRestrictions = value
	case FieldLanguage:
		d.Language = value
	default:
		return false
	}
	return true
}

func parsePartySize(value string) int {
	size := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0
		}
		size = size*10 + int(r-'0')
		if size > 1000 {
			return size
		}
	}
	return size
}
