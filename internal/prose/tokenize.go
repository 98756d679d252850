package prose

import (
	"regexp"
	"strings"
)

var nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}_\s'-]`)
var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Words splits text into tokens. Every character that is not a letter,
// digit, underscore, whitespace, apostrophe or hyphen becomes a separator,
// so punctuation vanishes while contractions and hyphenated compounds stay
// whole.
func Words(text string) []string {
	return strings.Fields(nonWordChars.ReplaceAllString(text, " "))
}

// Sentences splits on runs of terminal punctuation and trims the pieces.
// Abbreviations are not special-cased; "Mr. Smith" splits in two.
func Sentences(text string) []string {
	parts := sentenceBreak.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
