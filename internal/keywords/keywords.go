// Package keywords extracts representative terms from a job description.
package keywords

import (
	"sort"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/text"
)

// Extract returns the k most frequent stemmed, non-stopword tokens of the
// provided text, most frequent first. Tokens with equal frequency keep the
// order of their first occurrence, so the result is deterministic.
func Extract(s string, k int) []string {
	if k <= 0 {
		return nil
	}

	stems := text.Stems(s)

	counts := make(map[string]int, len(stems))
	first := make(map[string]int, len(stems))
	unique := make([]string, 0, len(stems))

	for i, stem := range stems {
		if _, seen := counts[stem]; !seen {
			first[stem] = i
			unique = append(unique, stem)
		}
		counts[stem]++
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return first[unique[i]] < first[unique[j]]
	})

	if len(unique) > k {
		unique = unique[:k]
	}

	return unique
}
