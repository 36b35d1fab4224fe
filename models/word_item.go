package models

import (
	"fmt"
	"sort"
	"strings"
)

// WordItem pairs a word with its occurrence count.
type WordItem struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// SortOption selects the ordering applied to a list of word items.
type SortOption string

const (
	SortAlphabetical           SortOption = "alphabetical"
	SortAlphabeticalDescending SortOption = "alphabeticalDescending"
	SortFrequency              SortOption = "frequency"
	SortFrequencyDescending    SortOption = "frequencyDescending"
)

// SortOptions lists every supported ordering.
var SortOptions = []SortOption{
	SortAlphabetical,
	SortAlphabeticalDescending,
	SortFrequency,
	SortFrequencyDescending,
}

// ParseSortOption resolves a sort option name, ignoring case.
func ParseSortOption(s string) (SortOption, error) {
	for _, opt := range SortOptions {
		if strings.EqualFold(s, string(opt)) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort option %q", ErrConfiguration, s)
}

// SortItems orders items in place. Frequency orderings break ties alphabetically.
func SortItems(items []WordItem, opt SortOption) {
	var less func(a, b WordItem) bool
	switch opt {
	case SortAlphabeticalDescending:
		less = func(a, b WordItem) bool { return a.Word > b.Word }
	case SortFrequency:
		less = func(a, b WordItem) bool {
			if a.Count != b.Count {
				return a.Count < b.Count
			}
			return a.Word < b.Word
		}
	case SortFrequencyDescending:
		less = func(a, b WordItem) bool {
			if a.Count != b.Count {
				return a.Count > b.Count
			}
			return a.Word < b.Word
		}
	default:
		less = func(a, b WordItem) bool { return a.Word < b.Word }
	}
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}
