// Package idpool computes the identifiers a user may still assign from the
// numeric ranges granted to them.
package idpool

import (
	"slices"
	"strconv"
	"strings"

	"adpanel/internal/core/domain"
)

// MaxRangeSize caps how many ids a single range may expand to. Larger
// grants are treated as malformed.
const MaxRangeSize = 100_000

// Expand lists every id of every range, in order, as strings. Ranges with
// non-numeric bounds, start > end, or more than MaxRangeSize ids are
// skipped.
func Expand(ranges []domain.IDRange) []string {
	var ids []string
	for _, r := range ranges {
		start, err := strconv.ParseInt(strings.TrimSpace(r.Start), 10, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseInt(strings.TrimSpace(r.End), 10, 64)
		if err != nil {
			continue
		}
		if start > end {
			continue
		}
		// A negative span means end-start overflowed int64.
		span := end - start
		if span < 0 || span >= MaxRangeSize {
			continue
		}
		for i := int64(0); i <= span; i++ {
			ids = append(ids, strconv.FormatInt(start+i, 10))
		}
	}
	return ids
}

// Available returns Expand(ranges) minus used, keeping range order.
func Available(ranges []domain.IDRange, used []string) []string {
	taken := make(map[string]struct{}, len(used))
	for _, u := range used {
		taken[strings.TrimSpace(u)] = struct{}{}
	}
	all := Expand(ranges)
	out := make([]string, 0, len(all))
	for _, id := range all {
		if _, ok := taken[id]; ok {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Pool is the selection list offered by an identifier creation form.
type Pool struct {
	ids []string
}

// NewPool builds the pool for a new record.
func NewPool(ranges []domain.IDRange, used []string) *Pool {
	return &Pool{ids: Available(ranges, used)}
}

// ForEdit returns a pool holding only the record's own id, which is
// immutable after creation.
func ForEdit(assignedID string) *Pool {
	return &Pool{ids: []string{assignedID}}
}

// IDs returns a copy of the pool contents.
func (p *Pool) IDs() []string {
	return slices.Clone(p.ids)
}

// Contains reports whether id is still offered.
func (p *Pool) Contains(id string) bool {
	return slices.Contains(p.ids, id)
}

// Take removes id ahead of the next full refresh. It reports whether the
// id was present.
func (p *Pool) Take(id string) bool {
	i := slices.Index(p.ids, id)
	if i < 0 {
		return false
	}
	p.ids = slices.Delete(p.ids, i, i+1)
	return true
}

// Len returns the number of ids left.
func (p *Pool) Len() int {
	return len(p.ids)
}
