package httpadapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
)

// flexInt accepts a JSON number or a numeric string. Table cells come back
// from inline editors as strings. Fractions and values outside int64 are
// rejected; "120.0" is fine.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fl, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("not a number: %s", s)
		}
		if fl != math.Trunc(fl) || fl < math.MinInt64 || fl >= math.MaxInt64 {
			return fmt.Errorf("not an integer: %s", s)
		}
		n = int64(fl)
	}
	*f = flexInt(n)
	return nil
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// flexDate accepts RFC 3339 timestamps, plain dates, empty strings and null.
type flexDate struct {
	t *time.Time
}

func (f *flexDate) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || strings.TrimSpace(*s) == "" {
		f.t = nil
		return nil
	}
	t, ok := grid.ParseTime(*s)
	if !ok {
		return fmt.Errorf("not a date: %s", *s)
	}
	f.t = &t
	return nil
}

type campaignBody struct {
	CampaignName  string     `json:"campaign_name"`
	Geo           string     `json:"geo"`
	City          string     `json:"city"`
	OS            string     `json:"os"`
	PayableEvent  string     `json:"payable_event"`
	MMPTracker    string     `json:"mmp_tracker"`
	PID           string     `json:"pid"`
	PubID         string     `json:"pub_id"`
	AdvPayout     flexInt    `json:"adv_payout"`
	PubPayout     flexInt    `json:"pub_payout"`
	SharedDate    flexDate   `json:"shared_date"`
	PausedDate    flexDate   `json:"paused_date"`
	TotalCount    flexInt    `json:"total_count"`
	Deduction     flexInt    `json:"deduction"`
	ApprovedCount flexInt    `json:"approved_count"`
}

func (b campaignBody) row() domain.CampaignRow {
	return domain.CampaignRow{
		CampaignName:  b.CampaignName,
		Geo:           b.Geo,
		City:          b.City,
		OS:            b.OS,
		PayableEvent:  b.PayableEvent,
		MMPTracker:    b.MMPTracker,
		PID:           b.PID,
		PubID:         b.PubID,
		AdvPayout:     int64(b.AdvPayout),
		PubPayout:     int64(b.PubPayout),
		SharedDate:    b.SharedDate.t,
		PausedDate:    b.PausedDate.t,
		TotalCount:    int64(b.TotalCount),
		Deduction:     int64(b.Deduction),
		ApprovedCount: int64(b.ApprovedCount),
	}
}

type identifierBody struct {
	Name        string     `json:"name"`
	AssignedID  flexString `json:"assigned_id"`
	Geo         string     `json:"geo"`
	Note        string     `json:"note"`
	Target      string     `json:"target"`
	OwnerUserID int64      `json:"owner_user_id"`
}

type linkRequestBody struct {
	AdvertiserName string     `json:"advertiser_name"`
	CampaignName   string     `json:"campaign_name"`
	Payout         flexString `json:"payout"`
	OS             string     `json:"os"`
	PID            string     `json:"pid"`
	PubID          string     `json:"pub_id"`
	Geo            string     `json:"geo"`
}
