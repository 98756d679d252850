package prose

import (
	"maps"
	"strings"
)

// Lexicon holds the word tables the analyzer consults: stop words excluded
// from frequency counting, and adverbs recognized beyond the "-ly" suffix
// rule. Tables are copied at construction, so a lexicon can be swapped or
// localized without touching the algorithms.
type Lexicon struct {
	StopWords map[string]struct{}
	Adverbs   map[string]struct{}
}

var defaultStopWords = []string{
	"a", "about", "after", "all", "also", "an", "and", "any", "are", "as",
	"at", "be", "because", "been", "before", "being", "between", "both",
	"but", "by", "can", "could", "did", "do", "down", "each", "for", "from",
	"had", "has", "have", "he", "her", "him", "his", "how", "i", "if", "in",
	"into", "is", "it", "its", "like", "many", "may", "me", "might", "more",
	"most", "much", "must", "my", "no", "not", "now", "of", "on", "one",
	"only", "or", "other", "our", "out", "over", "she", "should", "so",
	"some", "such", "than", "that", "the", "their", "them", "then", "there",
	"these", "they", "this", "those", "to", "was", "we", "were", "what",
	"when", "where", "which", "who", "will", "with", "would", "you", "your",
}

var defaultAdverbs = []string{
	"very", "really", "quite", "rather", "almost", "always", "never",
	"often", "sometimes", "soon", "already", "again", "still", "just",
	"too", "also", "even", "once", "twice", "well",
}

func DefaultLexicon() Lexicon {
	return Lexicon{
		StopWords: wordSet(defaultStopWords),
		Adverbs:   wordSet(defaultAdverbs),
	}
}

// LexiconFromLists builds a lexicon from custom word lists. An empty list
// keeps the built-in table for that slot, so callers can override one table
// without restating the other.
func LexiconFromLists(stopWords, adverbs []string) Lexicon {
	lex := DefaultLexicon()
	if len(stopWords) > 0 {
		lex.StopWords = wordSet(stopWords)
	}
	if len(adverbs) > 0 {
		lex.Adverbs = wordSet(adverbs)
	}
	return lex
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func (l Lexicon) clone() Lexicon {
	return Lexicon{
		StopWords: maps.Clone(l.StopWords),
		Adverbs:   maps.Clone(l.Adverbs),
	}
}
