package enrichment

import (
	"strconv"
	"strings"
)

const affixLength = 3

// ComposeKey builds the unique role key for a record. Duplicate titles get
// their dup index appended so that repeated titles stay distinguishable.
func ComposeKey(title string, isDuplicate bool, dupIndex int) string {
	key := strings.ToLower(title)
	if isDuplicate {
		return key + "_" + strconv.Itoa(dupIndex)
	}
	return key
}

// JobPrefix returns the first three characters of title
func JobPrefix(title string) string {
	r := []rune(title)
	if len(r) <= affixLength {
		return title
	}
	return string(r[:affixLength])
}

// JobSuffix returns the last three characters of title
func JobSuffix(title string) string {
	r := []rune(title)
	if len(r) <= affixLength {
		return title
	}
	return string(r[len(r)-affixLength:])
}

// FullName joins first and last name with a single space
func FullName(first, last string) string {
	return first + " " + last
}
