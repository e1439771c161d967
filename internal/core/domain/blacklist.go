package domain

import "time"

// BlacklistEntry blocks a PID from new campaign-link requests.
type BlacklistEntry struct {
	PID  string    `json:"pid"`
	Date time.Time `json:"date"`
}
