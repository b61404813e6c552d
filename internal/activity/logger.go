// Package activity delivers best-effort audit events to an external
// append-only log. Delivery must never block or fail the operation that
// produced the event; implementations swallow their own errors.
package activity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionSignup          = "SIGNUP"
	ActionLogin           = "LOGIN"
	ActionLogout          = "LOGOUT"
	ActionPeriodConfirmed = "period_confirmed"
	ActionPeriodDelayed   = "period_delayed"
	ActionPeriodCompleted = "period_completed"
)

type Event struct {
	ID            string
	OccurredAt    time.Time
	Action        string
	UserID        uint
	Email         string
	Name          string
	OriginAddress string
}

// Logger is the capability the rest of the application holds; call sites
// fire events and move on.
type Logger interface {
	Log(event Event)
}

// NewEvent stamps an event with an ID and the current time.
func NewEvent(action string, userID uint, email string, name string, originAddress string) Event {
	return Event{
		ID:            uuid.NewString(),
		OccurredAt:    time.Now(),
		Action:        action,
		UserID:        userID,
		Email:         email,
		Name:          name,
		OriginAddress: originAddress,
	}
}

// NopLogger discards every event. Used in tests and when no sink is
// configured.
type NopLogger struct{}

func (NopLogger) Log(Event) {}
