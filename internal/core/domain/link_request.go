package domain

import (
	"time"

	"github.com/google/uuid"
)

// LinkStatus is the lifecycle state of a campaign-link request.
type LinkStatus string

const (
	LinkWaiting          LinkStatus = "waiting"
	LinkShared           LinkStatus = "shared"
	LinkRejected         LinkStatus = "rejected"
	LinkHandshakePending LinkStatus = "handshake_pending"
	LinkInUse            LinkStatus = "in_use"
	LinkPoorPerformance  LinkStatus = "poor_performance"
)

// Valid reports whether s is a known status.
func (s LinkStatus) Valid() bool {
	switch s {
	case LinkWaiting, LinkShared, LinkRejected, LinkHandshakePending, LinkInUse, LinkPoorPerformance:
		return true
	}
	return false
}

// LinkRequest is a publisher's request for a campaign tracking link.
// Publishers create and read; only the advertiser side moves Status.
type LinkRequest struct {
	ID              uuid.UUID  `json:"id"`
	AdvertiserName  string     `json:"advertiser_name"`
	PublisherName   string     `json:"publisher_name"`
	PublisherUserID int64      `json:"publisher_user_id"`
	CampaignName    string     `json:"campaign_name"`
	Payout          string     `json:"payout"`
	OS              string     `json:"os"`
	PID             string     `json:"pid"`
	PubID           string     `json:"pub_id"`
	Geo             string     `json:"geo"`
	Status          LinkStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
