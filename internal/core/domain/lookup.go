package domain

// Lookup list names.
const (
	ListPayableEvents = "payable_events"
	ListMMPTrackers   = "mmp_trackers"
	ListPIDs          = "pids"
	ListGeos          = "geos"
)

// ValidLookupList reports whether name is a known lookup list.
func ValidLookupList(name string) bool {
	switch name {
	case ListPayableEvents, ListMMPTrackers, ListPIDs, ListGeos:
		return true
	}
	return false
}

// LookupEntry is one value of a flat, server-unique lookup list.
type LookupEntry struct {
	ID    int64  `json:"id"`
	List  string `json:"list"`
	Value string `json:"value"`
}
