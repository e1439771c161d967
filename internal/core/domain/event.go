package domain

import "time"

// EventName is the name of a server-pushed change signal.
type EventName string

const (
	EventWelcome         EventName = "welcome"
	EventRequestAdded    EventName = "request_added"
	EventResponseUpdated EventName = "response_updated"
)

// Recognized reports whether n is one of the names clients react to.
func (n EventName) Recognized() bool {
	switch n {
	case EventWelcome, EventRequestAdded, EventResponseUpdated:
		return true
	}
	return false
}

// Event is a change signal. Data is informational only; receivers re-fetch
// instead of applying it.
type Event struct {
	Name EventName `json:"event"`
	At   time.Time `json:"at"`
	Data any       `json:"data,omitempty"`
}
