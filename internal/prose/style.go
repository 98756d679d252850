package prose

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	passiveLimit = 10
	excerptRunes = 100
)

var passiveEd = regexp.MustCompile(`(?i)(was|were|is|are|been|being|be)\s+\w+ed\b`)
var passiveEn = regexp.MustCompile(`(?i)(was|were|is|are|been|being|be)\s+\w+en\b`)

var dialogueSpan = regexp.MustCompile(`"[^"]*"|“[^”]*”|'[^']*'|‘[^’]*’`)

// PassiveInstances collects sentences where a be-verb is followed by a past
// participle. One hit per sentence, at most ten sentences, each stored as a
// 100-character excerpt. "was tired" style false positives are part of the
// deal; this is a hint, not a parse.
func PassiveInstances(sentences []string) []string {
	out := make([]string, 0, passiveLimit)
	for _, s := range sentences {
		if len(out) >= passiveLimit {
			break
		}
		if passiveEd.MatchString(s) || passiveEn.MatchString(s) {
			out = append(out, excerpt(s))
		}
	}
	return out
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= excerptRunes {
		return s
	}
	return string(runes[:excerptRunes]) + "..."
}

// CountAdverbs counts tokens that end in "ly" plus the lexicon's fixed
// adverb list. Occurrences, not distinct words.
func (a *Analyzer) CountAdverbs(words []string) int {
	count := 0
	for _, w := range words {
		w = strings.ToLower(w)
		if strings.HasSuffix(w, "ly") {
			count++
			continue
		}
		if _, ok := a.lex.Adverbs[w]; ok {
			count++
		}
	}
	return count
}

// DialoguePercentage measures how much of the text sits inside straight or
// curly quote pairs, as a rounded percentage of all characters. The quote
// marks themselves count toward the dialogue share.
func DialoguePercentage(text string) int {
	totalLen := utf8.RuneCountInString(text)
	if totalLen == 0 {
		return 0
	}
	dialogueLen := 0
	for _, m := range dialogueSpan.FindAllString(text, -1) {
		dialogueLen += utf8.RuneCountInString(m)
	}
	return int(math.Round(float64(dialogueLen) / float64(totalLen) * 100))
}
