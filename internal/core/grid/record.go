// Package grid holds the record-set logic shared by every dashboard table:
// date scoping, column filters, global search, time-windowed edit
// permissions, the single-row editor and row copy.
package grid

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"
)

// Well-known record keys.
const (
	KeyID        = "id"
	KeyOwner     = "owner_user_id"
	KeyCreatedAt = "created_at"
)

// Record is one homogeneous row as decoded from the gateway.
type Record map[string]any

// ID returns the stringified identity of the row.
func (r Record) ID() string {
	return Stringify(r[KeyID])
}

// String returns the stringified value of key.
func (r Record) String(key string) string {
	return Stringify(r[key])
}

// Time parses the value of key as a timestamp or calendar date.
func (r Record) Time(key string) (time.Time, bool) {
	return ParseTime(r[key])
}

// CreatedAt returns the creation timestamp of the row.
func (r Record) CreatedAt() (time.Time, bool) {
	return r.Time(KeyCreatedAt)
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Stringify renders a field value the way filters and search see it.
// nil renders as the empty string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

// ParseTime accepts time values and the textual layouts the gateway emits.
func ParseTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	}
	s := strings.TrimSpace(Stringify(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
