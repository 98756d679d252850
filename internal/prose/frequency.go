package prose

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	topWordLimit = 20
	overuseFloor = 5
	overuseRatio = 0.01
)

// WordFrequencies builds the sorted frequency table for a token stream.
// Stop words and tokens of one or two characters are skipped, but every
// percentage is relative to the full unfiltered count. The sort is stable,
// so equal counts keep first-appearance order.
func (a *Analyzer) WordFrequencies(words []string) []WordFrequency {
	total := len(words)
	counts := make(map[string]int)
	order := make([]string, 0, total)
	for _, w := range words {
		w = strings.ToLower(w)
		if _, stop := a.lex.StopWords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	freqs := make([]WordFrequency, 0, len(order))
	for _, w := range order {
		count := counts[w]
		freqs = append(freqs, WordFrequency{
			Word:       w,
			Count:      count,
			Percentage: math.Round(float64(count)/float64(total)*10000) / 100,
		})
	}
	sort.SliceStable(freqs, func(i, j int) bool { return freqs[i].Count > freqs[j].Count })
	return freqs
}

// OverusedWords keeps the table entries frequent enough to stand out: more
// than 1% of all words and more than five occurrences, both strict.
func OverusedWords(freqs []WordFrequency, totalWords int) []WordFrequency {
	threshold := float64(totalWords) * overuseRatio
	out := make([]WordFrequency, 0)
	for _, f := range freqs {
		if float64(f.Count) > threshold && f.Count > overuseFloor {
			out = append(out, f)
		}
	}
	return out
}
