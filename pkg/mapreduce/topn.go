package mapreduce

import (
	"fmt"
	"io"

	"github.com/dtnitsch/vocab/models"
)

// TopKeywords returns the top N words of v as formatted strings.
// Each string is formatted as "word:count" (e.g., "learning:1153").
// Ties are broken alphabetically; n <= 0 returns every word.
func TopKeywords(v models.Vocabulary, n int) []string {
	items := TopItems(v, n)

	keywords := make([]string, len(items))
	for i, item := range items {
		keywords[i] = fmt.Sprintf("%s:%d", item.Word, item.Count)
	}
	return keywords
}

// TopItems returns the N most frequent words of v; n <= 0 returns every word.
func TopItems(v models.Vocabulary, n int) []models.WordItem {
	items := v.Sorted(models.SortFrequencyDescending)
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// PrintItems writes items to w as a numbered list, keeping their order.
func PrintItems(w io.Writer, items []models.WordItem) error {
	for i, item := range items {
		if _, err := fmt.Fprintf(w, "%d. %s: %d\n", i+1, item.Word, item.Count); err != nil {
			return err
		}
	}
	return nil
}
