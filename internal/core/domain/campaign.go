package domain

import "time"

// CampaignRow is one line of advertiser or publisher campaign data.
// Payouts are stored in integer units (e.g. cents).
type CampaignRow struct {
	ID            int64      `json:"id"`
	Kind          string     `json:"kind"`
	OwnerUserID   int64      `json:"owner_user_id"`
	CampaignName  string     `json:"campaign_name"`
	Geo           string     `json:"geo"`
	City          string     `json:"city"`
	OS            string     `json:"os"`
	PayableEvent  string     `json:"payable_event"`
	MMPTracker    string     `json:"mmp_tracker"`
	PID           string     `json:"pid"`
	PubID         string     `json:"pub_id"`
	AdvPayout     int64      `json:"adv_payout"`
	PubPayout     int64      `json:"pub_payout"`
	SharedDate    *time.Time `json:"shared_date"`
	PausedDate    *time.Time `json:"paused_date"`
	TotalCount    int64      `json:"total_count"`
	Deduction     int64      `json:"deduction"`
	ApprovedCount int64      `json:"approved_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Record returns the editable fields keyed by their JSON names.
// Identity, ownership and creation time are left out.
func (c CampaignRow) Record() map[string]any {
	return map[string]any{
		"campaign_name":  c.CampaignName,
		"geo":            c.Geo,
		"city":           c.City,
		"os":             c.OS,
		"payable_event":  c.PayableEvent,
		"mmp_tracker":    c.MMPTracker,
		"pid":            c.PID,
		"pub_id":         c.PubID,
		"adv_payout":     c.AdvPayout,
		"pub_payout":     c.PubPayout,
		"shared_date":    dateKey(c.SharedDate),
		"paused_date":    dateKey(c.PausedDate),
		"total_count":    c.TotalCount,
		"deduction":      c.Deduction,
		"approved_count": c.ApprovedCount,
	}
}

// ChangedFields lists the editable fields whose values differ between c and
// next.
func (c CampaignRow) ChangedFields(next CampaignRow) []string {
	before, after := c.Record(), next.Record()
	var changed []string
	for _, key := range CampaignFields {
		if before[key] != after[key] {
			changed = append(changed, key)
		}
	}
	return changed
}

// CampaignFields is the ordered list of editable campaign fields.
var CampaignFields = []string{
	"campaign_name", "geo", "city", "os", "payable_event", "mmp_tracker",
	"pid", "pub_id", "adv_payout", "pub_payout", "shared_date",
	"paused_date", "total_count", "deduction", "approved_count",
}

func dateKey(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}
