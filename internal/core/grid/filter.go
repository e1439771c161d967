package grid

import (
	"slices"
	"strings"
	"time"

	"github.com/ettle/strcase"
)

// FilterKind selects how a column filter matches its selected values.
type FilterKind int

const (
	// FilterText matches case-insensitive containment of any selected value.
	FilterText FilterKind = iota
	// FilterEnum matches any selected value exactly.
	FilterEnum
	// FilterDate matches values inside the selected [from, to] pair.
	FilterDate
)

// Column describes one table column.
type Column struct {
	Key    string
	Title  string
	Filter FilterKind
}

// NewColumn builds a column whose title is derived from its key
// ("campaign_name" becomes "Campaign Name").
func NewColumn(key string, filter FilterKind) Column {
	return Column{
		Key:    key,
		Title:  strcase.ToCase(key, strcase.TitleCase, ' '),
		Filter: filter,
	}
}

// DateRange is a half-open [From, To) interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies in the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// CurrentMonth returns the calendar month containing now, in now's location.
func CurrentMonth(now time.Time) DateRange {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}
}

// Query is the full view state of a table.
type Query struct {
	// DateField is the record key scoped by Range.
	DateField string
	// Range scopes rows before any other filter. Nil disables scoping.
	Range *DateRange
	// Filters maps a column key to its selected values.
	Filters map[string][]string
	// Search is the global free-text term.
	Search string
}

// Scope keeps the rows whose field lies in r. Rows without a parseable
// date are dropped while a range is active.
func Scope(rows []Record, field string, r *DateRange) []Record {
	if r == nil || field == "" {
		return rows
	}
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		t, ok := row.Time(field)
		if ok && r.Contains(t) {
			out = append(out, row)
		}
	}
	return out
}

// Apply scopes rows by date, then applies column filters and the global
// search. Filters and search combine with AND.
func Apply(rows []Record, cols []Column, q Query) []Record {
	scoped := Scope(rows, q.DateField, q.Range)
	kinds := make(map[string]FilterKind, len(cols))
	for _, c := range cols {
		kinds[c.Key] = c.Filter
	}
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Record, 0, len(scoped))
	for _, row := range scoped {
		if !matchFilters(row, kinds, q.Filters) {
			continue
		}
		if term != "" && !matchSearch(row, term) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Options returns, per column, the sorted distinct non-empty values present
// in the date-scoped rows. These populate the column filter choices.
func Options(rows []Record, cols []Column, q Query) map[string][]string {
	scoped := Scope(rows, q.DateField, q.Range)
	out := make(map[string][]string, len(cols))
	for _, c := range cols {
		out[c.Key] = DistinctValues(scoped, c.Key)
	}
	return out
}

// DistinctValues returns the sorted distinct non-empty values of key.
func DistinctValues(rows []Record, key string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, row := range rows {
		v := row.String(key)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

func matchFilters(row Record, kinds map[string]FilterKind, filters map[string][]string) bool {
	for key, selected := range filters {
		if len(selected) == 0 {
			continue
		}
		kind, ok := kinds[key]
		if !ok {
			kind = FilterEnum
		}
		if !matchColumn(row, key, kind, selected) {
			return false
		}
	}
	return true
}

func matchColumn(row Record, key string, kind FilterKind, selected []string) bool {
	switch kind {
	case FilterText:
		value := strings.ToLower(row.String(key))
		for _, s := range selected {
			if strings.Contains(value, strings.ToLower(s)) {
				return true
			}
		}
		return false
	case FilterDate:
		return matchDate(row, key, selected)
	default:
		return slices.Contains(selected, row.String(key))
	}
}

// matchDate treats selected as an inclusive [from, to] pair; a blank bound
// is open.
func matchDate(row Record, key string, selected []string) bool {
	t, ok := row.Time(key)
	if !ok {
		return false
	}
	if from, ok := ParseTime(selected[0]); ok && t.Before(from) {
		return false
	}
	if len(selected) > 1 {
		if to, ok := ParseTime(selected[1]); ok {
			if len(selected[1]) == len(time.DateOnly) {
				to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
			if t.After(to) {
				return false
			}
		}
	}
	return true
}

func matchSearch(row Record, term string) bool {
	for _, v := range row {
		if strings.Contains(strings.ToLower(Stringify(v)), term) {
			return true
		}
	}
	return false
}
