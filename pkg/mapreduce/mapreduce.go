// Package mapreduce turns text batches into partial vocabularies and combines them.
package mapreduce

import (
	"github.com/dtnitsch/vocab/models"
	"github.com/dtnitsch/vocab/pkg/analytics"
)

// Map generates the vocabulary of a single batch of text.
func Map(content string, a *analytics.Analytics) models.Vocabulary {
	return models.NewVocabulary(a.WordFrequency(content))
}

// Reduce aggregates partial vocabularies into a single vocabulary.
// The result equals folding Merge over partials starting from the empty vocabulary.
func Reduce(intermediate []models.Vocabulary) models.Vocabulary {
	var r Reducer
	for _, v := range intermediate {
		r.Add(v)
	}
	return r.Result()
}

// Reducer accumulates partial vocabularies in arrival order.
// It sums into one map instead of copying on every Merge. Not safe for concurrent use.
type Reducer struct {
	counts map[string]int
	added  int
}

// Add folds v into the accumulator.
func (r *Reducer) Add(v models.Vocabulary) {
	if r.counts == nil {
		r.counts = make(map[string]int, v.Len())
	}
	v.Each(func(word string, count int) {
		r.counts[word] += count
	})
	r.added++
}

// Partials returns how many vocabularies were added.
func (r *Reducer) Partials() int {
	return r.added
}

// Result returns the accumulated vocabulary.
func (r *Reducer) Result() models.Vocabulary {
	return models.NewVocabulary(r.counts)
}
