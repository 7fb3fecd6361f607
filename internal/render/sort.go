package render

import (
	"sort"
	"time"

	"github.com/jonathan/cv-builder/internal/types"
)

// sortEntries stable-sorts a copy of entries by start date. Ongoing entries
// compare as "now" so they take the most-recent position regardless of
// order; entries whose start date does not parse use the zero-time sentinel,
// keep their relative order, and sink to the end under descending order.
// The result is always a permutation of the input.
func sortEntries[T any](entries []T, key func(T) (startDate string, current bool), order types.LayoutOrder) []T {
	sorted := make([]T, len(entries))
	copy(sorted, entries)

	now := time.Now()
	effective := func(e T) time.Time {
		start, current := key(e)
		if current {
			return now
		}
		if t, ok := parseISO(start); ok {
			return t
		}
		return time.Time{}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := effective(sorted[i]), effective(sorted[j])
		if order == types.OrderAscending {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})

	return sorted
}

// SortExperience orders work history entries by start date.
func SortExperience(entries []types.Experience, order types.LayoutOrder) []types.Experience {
	return sortEntries(entries, func(e types.Experience) (string, bool) {
		return e.StartDate, e.Current
	}, order)
}

// SortEducation orders education entries by start date.
func SortEducation(entries []types.Education, order types.LayoutOrder) []types.Education {
	return sortEntries(entries, func(e types.Education) (string, bool) {
		return e.StartDate, e.Current
	}, order)
}
