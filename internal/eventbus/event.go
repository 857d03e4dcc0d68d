package eventbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/rent-recon/internal/domain"
)

type EventType string

const (
	EventTypePaymentConfirmed EventType = "payment.confirmed"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// PaymentConfirmedEvent is published after an obligation has been marked Paid.
type PaymentConfirmedEvent struct {
	ObligationID string                     `json:"obligation_id"`
	Details      domain.ConfirmationDetails `json:"details"`
}

func NewPaymentConfirmedEvent(obligationID string, details domain.ConfirmationDetails) Event {
	return Event{
		ID:   uuid.New().String(),
		Type: EventTypePaymentConfirmed,
		Payload: PaymentConfirmedEvent{
			ObligationID: obligationID,
			Details:      details,
		},
		Timestamp: time.Now(),
	}
}
