package grid

import "time"

// CopyRow duplicates src for a new create call. The identity is dropped and
// the owner and creation time are replaced by actorID and now.
func CopyRow(src Record, actorID int64, now time.Time) Record {
	dst := src.Clone()
	if dst == nil {
		dst = Record{}
	}
	delete(dst, KeyID)
	dst[KeyOwner] = actorID
	dst[KeyCreatedAt] = now.UTC().Format(time.RFC3339)
	return dst
}
