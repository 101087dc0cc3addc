package domain

// Step identifies one screen of the linear booking flow.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepDetails
	StepRequests
	StepConfirm
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "personal_info"
	case StepDetails:
		return "details"
	case StepRequests:
		return "requests"
	case StepConfirm:
		return "confirm"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// FieldsForStep returns the fields validated before leaving a step. The
// requests and confirm screens carry only optional inputs.
func FieldsForStep(step Step) []Field {
	switch step {
	case StepPersonalInfo:
		return []Field{FieldName, FieldEmail, FieldPhone}
	case StepDetails:
		return []Field{FieldDate, FieldTime, FieldPartySize}
	default:
		return nil
	}
}

// ActionKind tags a reducer action.
type ActionKind string

const (
	ActionSetField      ActionKind = "SET_FIELD"
	ActionNextStep      ActionKind = "NEXT_STEP"
	ActionPrevStep      ActionKind = "PREV_STEP"
	ActionSubmitStart   ActionKind = "SUBMIT_START"
	ActionSubmitSuccess ActionKind = "SUBMIT_SUCCESS"
	ActionSubmitFailure ActionKind = "SUBMIT_FAILURE"
)

// Action is a tagged state transition applied by Reduce.
type Action struct {
	Kind         ActionKind
	Field        Field
	Value        string
	Confirmation *Reservation
	Error        string
}

// State is the immutable value describing one booking session. Reduce returns
// a fresh copy so transitions stay auditable without a rendering engine.
type State struct {
	Draft       Draft
	Step        Step
	FieldErrors map[Field]string
	Submitting  bool
	SubmitError string
	// Confirmation is set once the server accepts the reservation.
	Confirmation *Reservation
}

// NewState returns the initial state at the personal-info step.
func NewState() State {
	return State{Step: StepPersonalInfo, FieldErrors: map[Field]string{}}
}

// Clone deep-copies the state so stored sessions never share maps.
func (s State) Clone() State {
	out := s
	out.FieldErrors = make(map[Field]string, len(s.FieldErrors))
	for field, key := range s.FieldErrors {
		out.FieldErrors[field] = key
	}
	if s.Confirmation != nil {
		confirmation := *s.Confirmation
		out.Confirmation = &confirmation
	}
	return out
}

// Reduce applies one action. Invalid transitions (advancing with bad fields,
// submitting off the confirm step, leaving the success step) return the input
// state unchanged apart from surfaced errors.
func Reduce(s State, action Action, rules Rules) State {
	next := s.Clone()

	switch action.Kind {
	case ActionSetField:
		if next.Step == StepSuccess {
			return next
		}
		if next.Draft.Set(action.Field, action.Value) {
			delete(next.FieldErrors, action.Field)
			next.SubmitError = ""
		}
	case ActionNextStep:
		if next.Step >= StepConfirm {
			return next
		}
		errs := ValidateFields(next.Draft, FieldsForStep(next.Step), rules)
		if len(errs) > 0 {
			next.FieldErrors = errs
			return next
		}
		next.FieldErrors = map[Field]string{}
		next.Step++
	case ActionPrevStep:
		// No re-validation going backwards, and no way back from success.
		if next.Step > StepPersonalInfo && next.Step != StepSuccess {
			next.Step--
			next.FieldErrors = map[Field]string{}
			next.SubmitError = ""
		}
	case ActionSubmitStart:
		if next.Step != StepConfirm || next.Submitting {
			return next
		}
		errs := ValidateAll(next.Draft, rules)
		if len(errs) > 0 {
			next.FieldErrors = errs
			return next
		}
		next.FieldErrors = map[Field]string{}
		next.SubmitError = ""
		next.Submitting = true
	case ActionSubmitSuccess:
		if next.Step != StepConfirm {
			return next
		}
		next.Submitting = false
		next.SubmitError = ""
		next.Confirmation = action.Confirmation
		next.Step = StepSuccess
	case ActionSubmitFailure:
		if next.Step != StepConfirm {
			return next
		}
		next.Submitting = false
		next.SubmitError = action.Error
		if next.SubmitError == "" {
			next.SubmitError = MsgSubmitFailed
		}
	}

	return next
}
