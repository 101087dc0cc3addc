package domain

import (
	"testing"
	"time"
)

func testRules() Rules {
	return Rules{
		Now:        func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) },
		WindowDays: 60,
		Slots:      DefaultTimeSlots,
	}
}

func completeDraftState(step Step) State {
	s := NewState()
	s.Step = step
	s.Draft = Draft{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "+12065550123",
		Date:      "2026-09-10",
		Time:      "19:00",
		PartySize: 4,
	}
	return s
}

func TestReduceNextStepBlockedByInvalidFields(t *testing.T) {
	rules := testRules()
	s := NewState()
	s.Draft.Name = "Jane Doe"
	// email and phone still missing

	next := Reduce(s, Action{Kind: ActionNextStep}, rules)

	if next.Step != StepPersonalInfo {
		t.Fatalf("expected step %v, got %v", StepPersonalInfo, next.Step)
	}
	if next.FieldErrors[FieldEmail] != MsgEmailRequired {
		t.Fatalf("expected %q, got %q", MsgEmailRequired, next.FieldErrors[FieldEmail])
	}
	if next.FieldErrors[FieldPhone] != MsgPhoneRequired {
		t.Fatalf("expected %q, got %q", MsgPhoneRequired, next.FieldErrors[FieldPhone])
	}
	if _, ok := next.FieldErrors[FieldName]; ok {
		t.Fatalf("did not expect an error on the name field: %v", next.FieldErrors)
	}
}

func TestReduceNextStepAdvancesWhenValid(t *testing.T) {
	rules := testRules()
	s := NewState()
	s.Draft.Name = "Jane Doe"
	s.Draft.Email = "jane@example.com"
	s.Draft.Phone = "+12065550123"

	next := Reduce(s, Action{Kind: ActionNextStep}, rules)

	if next.Step != StepDetails {
		t.Fatalf("expected step %v, got %v", StepDetails, next.Step)
	}
	if len(next.FieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", next.FieldErrors)
	}
}

func TestReducePrevStepSkipsValidation(t *testing.T) {
	rules := testRules()
	s := NewState()
	s.Step = StepDetails
	s.FieldErrors = map[Field]string{FieldDate: MsgDateRequired}

	next := Reduce(s, Action{Kind: ActionPrevStep}, rules)

	if next.Step != StepPersonalInfo {
		t.Fatalf("expected step %v, got %v", StepPersonalInfo, next.Step)
	}
	if len(next.FieldErrors) != 0 {
		t.Fatalf("expected cleared field errors, got %v", next.FieldErrors)
	}
}

func TestReducePrevStepNoOpAtBoundaries(t *testing.T) {
	rules := testRules()
	cases := []struct {
		name string
		step Step
	}{
		{name: "first step", step: StepPersonalInfo},
		{name: "success step", step: StepSuccess},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Step = tc.step
			next := Reduce(s, Action{Kind: ActionPrevStep}, rules)
			if next.Step != tc.step {
				t.Fatalf("expected step %v, got %v", tc.step, next.Step)
			}
		})
	}
}

func TestReduceSetFieldClearsItsError(t *testing.T) {
	rules := testRules()
	s := NewState()
	s.FieldErrors = map[Field]string{
		FieldEmail: MsgEmailRequired,
		FieldPhone: MsgPhoneRequired,
	}
	s.SubmitError = MsgSubmitFailed

	next := Reduce(s, Action{Kind: ActionSetField, Field: FieldEmail, Value: "jane@example.com"}, rules)

	if next.Draft.Email != "jane@example.com" {
		t.Fatalf("expected email to be set, got %q", next.Draft.Email)
	}
	if _, ok := next.FieldErrors[FieldEmail]; ok {
		t.Fatalf("expected the email error to clear, got %v", next.FieldErrors)
	}
	if next.FieldErrors[FieldPhone] != MsgPhoneRequired {
		t.Fatalf("expected the phone error to survive, got %v", next.FieldErrors)
	}
	if next.SubmitError != "" {
		t.Fatalf("expected the submit error to clear, got %q", next.SubmitError)
	}
}

func TestReduceSubmitOnlyFromConfirm(t *testing.T) {
	rules := testRules()
	s := completeDraftState(StepRequests)

	next := Reduce(s, Action{Kind: ActionSubmitStart}, rules)

	if next.Submitting {
		t.Fatal("expected submit to be ignored off the confirm step")
	}
}

func TestReduceSubmitLifecycle(t *testing.T) {
	rules := testRules()
	s := completeDraftState(StepConfirm)

	started := Reduce(s, Action{Kind: ActionSubmitStart}, rules)
	if !started.Submitting {
		t.Fatal("expected submitting state after SUBMIT_START")
	}

	// A second start while in flight is ignored.
	again := Reduce(started, Action{Kind: ActionSubmitStart}, rules)
	if !again.Submitting || again.Step != StepConfirm {
		t.Fatalf("expected duplicate SUBMIT_START to be a no-op, got %+v", again)
	}

	confirmation := &Reservation{ConfirmationCode: "NV-ABCD1234"}
	done := Reduce(started, Action{Kind: ActionSubmitSuccess, Confirmation: confirmation}, rules)
	if done.Step != StepSuccess {
		t.Fatalf("expected step %v, got %v", StepSuccess, done.Step)
	}
	if done.Submitting {
		t.Fatal("expected submitting to clear on success")
	}
	if done.Confirmation == nil || done.Confirmation.ConfirmationCode != "NV-ABCD1234" {
		t.Fatalf("expected the confirmation to be attached, got %+v", done.Confirmation)
	}
}

func TestReduceSubmitFailureStaysOnConfirm(t *testing.T) {
	rules := testRules()
	s := completeDraftState(StepConfirm)
	s.Submitting = true

	failed := Reduce(s, Action{Kind: ActionSubmitFailure, Error: MsgFullyBooked}, rules)

	if failed.Step != StepConfirm {
		t.Fatalf("expected to stay on %v, got %v", StepConfirm, failed.Step)
	}
	if failed.Submitting {
		t.Fatal("expected submitting to clear on failure")
	}
	if failed.SubmitError != MsgFullyBooked {
		t.Fatalf("expected %q, got %q", MsgFullyBooked, failed.SubmitError)
	}
	if failed.Draft.Name == "" {
		t.Fatal("expected the draft to survive a failed submit")
	}
}

func TestReduceSuccessStepIsTerminal(t *testing.T) {
	rules := testRules()
	s := completeDraftState(StepSuccess)

	next := Reduce(s, Action{Kind: ActionSetField, Field: FieldName, Value: "Else"}, rules)
	if next.Draft.Name != "Jane Doe" {
		t.Fatalf("expected edits to be ignored after success, got %q", next.Draft.Name)
	}
}

func TestReduceReturnsIndependentCopy(t *testing.T) {
	rules := testRules()
	s := NewState()
	s.FieldErrors[FieldName] = MsgNameRequired

	next := Reduce(s, Action{Kind: ActionSetField, Field: FieldName, Value: "Jane"}, rules)
	if _, ok := s.FieldErrors[FieldName]; !ok {
		t.Fatal("expected the input state to be untouched")
	}
	if _, ok := next.FieldErrors[FieldName]; ok {
		t.Fatal("expected the copy to drop the cleared error")
	}
}
