package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"

	"natureVillageApi/internal/modules/reservations/application/port"
	"natureVillageApi/internal/modules/reservations/domain"
)

// SlackNotifier posts new bookings to a staff channel via an incoming
// webhook. With no webhook configured it is a no-op.
type SlackNotifier struct {
	webhookURL string
	post       func(ctx context.Context, url string, msg *slack.WebhookMessage) error
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: strings.TrimSpace(webhookURL),
		post:       slack.PostWebhookContext,
	}
}

func (n *SlackNotifier) ReservationCreated(ctx context.Context, r *domain.Reservation) {
	if n.webhookURL == "" {
		return
	}
	text := fmt.Sprintf(
		"New reservation %s: %s, party of %d on %s at %s",
		r.ConfirmationCode, r.Name, r.PartySize, r.Date, r.Time,
	)
	if r.SpecialOccasion != "" {
		text += " (" + r.SpecialOccasion + ")"
	}
	// Delivery is best effort; a webhook outage must never fail a booking.
	go func() {
		if err := n.post(context.WithoutCancel(ctx), n.webhookURL, &slack.WebhookMessage{Text: text}); err != nil {
			slog.Warn("slack notification failed",
				slog.String("confirmationCode", r.ConfirmationCode),
				slog.Any("error", err),
			)
		}
	}()
}

var _ port.Notifier = (*SlackNotifier)(nil)
