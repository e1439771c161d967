package domain

import "time"

// Identifier is an advertiser-ID or publisher-ID record. AssignedID is drawn
// from the owner's granted ranges and never changes once created.
type Identifier struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"` // advertiser, publisher
	Name        string    `json:"name"`
	AssignedID  string    `json:"assigned_id"`
	Geo         string    `json:"geo"`
	Note        string    `json:"note"`
	Target      string    `json:"target"`
	OwnerUserID int64     `json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidKind reports whether kind names one of the two record families
// (identifiers and campaign data are both split by side).
func ValidKind(kind string) bool {
	return kind == SideAdvertiser || kind == SidePublisher
}
