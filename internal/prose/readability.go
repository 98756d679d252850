package prose

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var silentSuffix = regexp.MustCompile(`([^laeiouy]es|ed|[^laeiouy]e)$`)
var leadingY = regexp.MustCompile(`^y`)
var vowelRuns = regexp.MustCompile(`[aeiouy]+`)

// ReadabilityScore computes Flesch Reading Ease over already-tokenized
// words and sentences, clamped to 0..100. Zero words or zero sentences
// score zero.
func ReadabilityScore(words, sentences []string) int {
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}
	totalSyllables := 0
	for _, w := range words {
		totalSyllables += SyllableCount(w)
	}
	avgSentenceLen := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(totalSyllables) / float64(len(words))
	score := 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
	return int(math.Round(clamp(score, 0, 100)))
}

// SyllableCount estimates syllables by counting vowel runs after trimming a
// silent ending and a leading y. Words of three letters or fewer count one
// syllable, as does anything the trimming strips bare.
func SyllableCount(word string) int {
	word = strings.ToLower(word)
	if utf8.RuneCountInString(word) <= 3 {
		return 1
	}
	word = silentSuffix.ReplaceAllString(word, "")
	word = leadingY.ReplaceAllString(word, "")
	runs := vowelRuns.FindAllString(word, -1)
	if len(runs) == 0 {
		return 1
	}
	return len(runs)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
