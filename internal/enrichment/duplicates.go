package enrichment

// TitleIndex is the table-wide aggregate over job titles. It is built once
// from the complete title sequence and is read-only afterwards.
type TitleIndex struct {
	frequency map[string]int
	dupIndex  []int
}

// ResolveDuplicates counts every exact title and assigns each position its
// 0-based ordinal among the positions sharing that title, in input order.
func ResolveDuplicates(titles []string) TitleIndex {
	frequency := make(map[string]int, len(titles))
	for _, title := range titles {
		frequency[title]++
	}

	seen := make(map[string]int, len(frequency))
	dupIndex := make([]int, len(titles))
	for i, title := range titles {
		dupIndex[i] = seen[title]
		seen[title]++
	}

	return TitleIndex{frequency: frequency, dupIndex: dupIndex}
}

// Frequency returns how many records carry exactly this title
func (ix TitleIndex) Frequency(title string) int {
	return ix.frequency[title]
}

// IsDuplicate reports whether title occurs more than once
func (ix TitleIndex) IsDuplicate(title string) bool {
	return ix.frequency[title] > 1
}

// DupIndex returns the ordinal assigned to position i
func (ix TitleIndex) DupIndex(i int) int {
	return ix.dupIndex[i]
}

// Len returns the number of positions indexed
func (ix TitleIndex) Len() int {
	return len(ix.dupIndex)
}

// DistinctTitles returns the number of distinct titles
func (ix TitleIndex) DistinctTitles() int {
	return len(ix.frequency)
}

// Frequencies returns a copy of the title to count mapping
func (ix TitleIndex) Frequencies() map[string]int {
	out := make(map[string]int, len(ix.frequency))
	for k, v := range ix.frequency {
		out[k] = v
	}
	return out
}
