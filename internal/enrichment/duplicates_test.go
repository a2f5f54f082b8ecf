package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDuplicates(t *testing.T) {
	titles := []string{"Nurse", "Analyst", "Nurse", "Chef", "Nurse", "Analyst"}

	index := ResolveDuplicates(titles)

	require.Equal(t, len(titles), index.Len())
	assert.Equal(t, 3, index.Frequency("Nurse"))
	assert.Equal(t, 2, index.Frequency("Analyst"))
	assert.Equal(t, 1, index.Frequency("Chef"))
	assert.Equal(t, 0, index.Frequency("Pilot"))
	assert.Equal(t, 3, index.DistinctTitles())

	assert.True(t, index.IsDuplicate("Nurse"))
	assert.True(t, index.IsDuplicate("Analyst"))
	assert.False(t, index.IsDuplicate("Chef"))

	got := make([]int, len(titles))
	for i := range titles {
		got[i] = index.DupIndex(i)
	}
	assert.Equal(t, []int{0, 0, 1, 0, 2, 1}, got)
}

func TestResolveDuplicates_CaseSensitive(t *testing.T) {
	index := ResolveDuplicates([]string{"Analyst", "analyst", "Analyst "})

	assert.Equal(t, 3, index.DistinctTitles())
	assert.False(t, index.IsDuplicate("Analyst"))
	assert.False(t, index.IsDuplicate("analyst"))
}

func TestResolveDuplicates_IndicesCoverFrequency(t *testing.T) {
	titles := []string{"a", "b", "a", "c", "b", "a", "d", "a", "b", "c"}
	index := ResolveDuplicates(titles)

	seen := make(map[string][]int)
	for i, title := range titles {
		seen[title] = append(seen[title], index.DupIndex(i))
	}

	for title, indices := range seen {
		freq := index.Frequency(title)
		require.Len(t, indices, freq, "title %q", title)
		for want, got := range indices {
			assert.Equal(t, want, got, "title %q must be numbered in input order", title)
		}
	}
}

func TestResolveDuplicates_Empty(t *testing.T) {
	index := ResolveDuplicates(nil)

	assert.Equal(t, 0, index.Len())
	assert.Equal(t, 0, index.DistinctTitles())
	assert.Empty(t, index.Frequencies())
}

func TestTitleIndex_FrequenciesIsCopy(t *testing.T) {
	index := ResolveDuplicates([]string{"x", "x"})

	freq := index.Frequencies()
	freq["x"] = 99

	assert.Equal(t, 2, index.Frequency("x"))
}
