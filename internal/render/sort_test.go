package render

import (
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exp(id, start string, current bool) types.Experience {
	return types.Experience{ID: id, StartDate: start, Current: current}
}

func ids(entries []types.Experience) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestSortExperience_Descending(t *testing.T) {
	entries := []types.Experience{
		exp("a", "2019-01-01", false),
		exp("b", "2021-06-01", false),
		exp("c", "2020-03-01", false),
	}

	sorted := SortExperience(entries, types.OrderDescending)
	assert.Equal(t, []string{"b", "c", "a"}, ids(sorted))
}

func TestSortExperience_Ascending(t *testing.T) {
	entries := []types.Experience{
		exp("a", "2021-06-01", false),
		exp("b", "2019-01-01", false),
		exp("c", "2020-03-01", false),
	}

	sorted := SortExperience(entries, types.OrderAscending)
	assert.Equal(t, []string{"b", "c", "a"}, ids(sorted))
}

func TestSortExperience_CurrentEntryFirstUnderDescending(t *testing.T) {
	entries := []types.Experience{
		{ID: "older-but-ended", StartDate: "2020-01-01", EndDate: "2021-01-01"},
		{ID: "ongoing", StartDate: "2019-01-01", Current: true},
	}

	sorted := SortExperience(entries, types.OrderDescending)
	assert.Equal(t, "ongoing", sorted[0].ID)
}

func TestSortExperience_CurrentEntryLastUnderAscending(t *testing.T) {
	entries := []types.Experience{
		exp("ongoing", "2019-01-01", true),
		exp("ended", "2022-01-01", false),
	}

	sorted := SortExperience(entries, types.OrderAscending)
	assert.Equal(t, "ongoing", sorted[len(sorted)-1].ID)
}

func TestSortExperience_UnparsableDatesSinkUnderDescending(t *testing.T) {
	entries := []types.Experience{
		exp("bad1", "not-a-date", false),
		exp("good", "2020-01-01", false),
		exp("bad2", "???", false),
	}

	sorted := SortExperience(entries, types.OrderDescending)
	require.Len(t, sorted, 3)
	assert.Equal(t, "good", sorted[0].ID)
	// Unparsable entries keep their relative order
	assert.Equal(t, "bad1", sorted[1].ID)
	assert.Equal(t, "bad2", sorted[2].ID)
}

func TestSortExperience_PermutationInvariant(t *testing.T) {
	entries := []types.Experience{
		exp("a", "2021-01-01", false),
		exp("b", "bogus", false),
		exp("c", "2019-01-01", true),
		exp("d", "", false),
	}

	sorted := SortExperience(entries, types.OrderDescending)
	require.Len(t, sorted, len(entries))

	seen := map[string]int{}
	for _, e := range sorted {
		seen[e.ID]++
	}
	for _, e := range entries {
		assert.Equal(t, 1, seen[e.ID], "entry %s lost or duplicated", e.ID)
	}
}

func TestSortExperience_Idempotent(t *testing.T) {
	entries := []types.Experience{
		exp("a", "2021-01-01", false),
		exp("b", "2019-01-01", false),
		exp("c", "2020-01-01", true),
	}

	once := SortExperience(entries, types.OrderDescending)
	twice := SortExperience(once, types.OrderDescending)
	assert.Equal(t, once, twice)
}

func TestSortExperience_DoesNotMutateInput(t *testing.T) {
	entries := []types.Experience{
		exp("a", "2019-01-01", false),
		exp("b", "2021-01-01", false),
	}

	SortExperience(entries, types.OrderDescending)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
}

func TestSortEducation_Descending(t *testing.T) {
	entries := []types.Education{
		{ID: "a", StartDate: "2015-01-01"},
		{ID: "b", StartDate: "2018-01-01"},
	}

	sorted := SortEducation(entries, types.OrderDescending)
	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "a", sorted[1].ID)
}
