// Package models defines the data structures shared by the vocabulary builder.
package models

import "sort"

// Vocabulary is an immutable word frequency table.
// The zero value is an empty vocabulary and is ready to use.
type Vocabulary struct {
	counts map[string]int
}

// NewVocabulary creates a Vocabulary holding a copy of counts.
// Entries with a non-positive count are dropped.
func NewVocabulary(counts map[string]int) Vocabulary {
	if len(counts) == 0 {
		return Vocabulary{}
	}
	m := make(map[string]int, len(counts))
	for word, count := range counts {
		if count > 0 {
			m[word] = count
		}
	}
	return Vocabulary{counts: m}
}

// Count returns the number of occurrences of word. Absent words count 0.
func (v Vocabulary) Count(word string) int {
	return v.counts[word]
}

// Len returns the number of distinct words.
func (v Vocabulary) Len() int {
	return len(v.counts)
}

// Total returns the sum of all counts.
func (v Vocabulary) Total() int {
	total := 0
	for _, count := range v.counts {
		total += count
	}
	return total
}

// Words returns the distinct words in alphabetical order.
func (v Vocabulary) Words() []string {
	words := make([]string, 0, len(v.counts))
	for word := range v.counts {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Frequencies returns a copy of the underlying word counts.
func (v Vocabulary) Frequencies() map[string]int {
	m := make(map[string]int, len(v.counts))
	for word, count := range v.counts {
		m[word] = count
	}
	return m
}

// Each calls fn for every entry. Iteration order is unspecified.
func (v Vocabulary) Each(fn func(word string, count int)) {
	for word, count := range v.counts {
		fn(word, count)
	}
}

// Merge returns a new Vocabulary whose counts are the sums of v and other.
// Merge is associative and commutative, and the empty Vocabulary is its identity,
// so partial results can be combined in any order.
func (v Vocabulary) Merge(other Vocabulary) Vocabulary {
	if len(other.counts) == 0 {
		return v
	}
	if len(v.counts) == 0 {
		return other
	}
	m := make(map[string]int, len(v.counts)+len(other.counts))
	for word, count := range v.counts {
		m[word] = count
	}
	for word, count := range other.counts {
		m[word] += count
	}
	return Vocabulary{counts: m}
}

// Equal reports whether v and other hold the same words with the same counts.
func (v Vocabulary) Equal(other Vocabulary) bool {
	if len(v.counts) != len(other.counts) {
		return false
	}
	for word, count := range v.counts {
		if other.counts[word] != count {
			return false
		}
	}
	return true
}

// Items projects the vocabulary into word items ordered alphabetically.
func (v Vocabulary) Items() []WordItem {
	items := make([]WordItem, 0, len(v.counts))
	for word, count := range v.counts {
		items = append(items, WordItem{Word: word, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Word < items[j].Word
	})
	return items
}

// Sorted projects the vocabulary into word items ordered by opt.
// The vocabulary itself is left untouched.
func (v Vocabulary) Sorted(opt SortOption) []WordItem {
	items := v.Items()
	SortItems(items, opt)
	return items
}
