// Package prose measures manuscript text: word and sentence counts,
// frequency and overuse tables, passive-voice and adverb hints, dialogue
// share, and a Flesch readability score. Everything here is pure and
// deterministic; the only inputs are the text and the lexicon.
package prose

import (
	"math"
	"strings"
	"unicode/utf8"
)

type WordFrequency struct {
	Word       string  `json:"word"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Report struct {
	TotalWords            int             `json:"totalWords"`
	UniqueWords           int             `json:"uniqueWords"`
	AverageSentenceLength int             `json:"averageSentenceLength"`
	AverageWordLength     float64         `json:"averageWordLength"`
	ReadabilityScore      int             `json:"readabilityScore"`
	TopWords              []WordFrequency `json:"topWords"`
	OverusedWords         []WordFrequency `json:"overusedWords"`
	PassiveVoiceInstances []string        `json:"passiveVoiceInstances"`
	AdverbCount           int             `json:"adverbCount"`
	DialoguePercentage    int             `json:"dialoguePercentage"`
}

// Analyzer runs the measurement pipeline with a fixed lexicon. Construct
// with NewAnalyzer; a single analyzer is safe for concurrent use.
type Analyzer struct {
	lex Lexicon
}

func NewAnalyzer(lex Lexicon) *Analyzer {
	return &Analyzer{lex: lex.clone()}
}

// Analyze runs the pipeline with the built-in lexicon.
func Analyze(text string) Report {
	return NewAnalyzer(DefaultLexicon()).Analyze(text)
}

// Analyze measures text end to end. It never fails: input without a single
// word produces the zero report.
func (a *Analyzer) Analyze(text string) Report {
	words := Words(text)
	if len(words) == 0 {
		return emptyReport()
	}
	sentences := Sentences(text)

	freqs := a.WordFrequencies(words)
	top := freqs
	if len(top) > topWordLimit {
		top = top[:topWordLimit]
	}

	return Report{
		TotalWords:            len(words),
		UniqueWords:           uniqueCount(words),
		AverageSentenceLength: averageSentenceLength(len(words), len(sentences)),
		AverageWordLength:     averageWordLength(words),
		ReadabilityScore:      ReadabilityScore(words, sentences),
		TopWords:              top,
		OverusedWords:         OverusedWords(freqs, len(words)),
		PassiveVoiceInstances: PassiveInstances(sentences),
		AdverbCount:           a.CountAdverbs(words),
		DialoguePercentage:    DialoguePercentage(text),
	}
}

func emptyReport() Report {
	return Report{
		TopWords:              []WordFrequency{},
		OverusedWords:         []WordFrequency{},
		PassiveVoiceInstances: []string{},
	}
}

func uniqueCount(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[strings.ToLower(w)] = struct{}{}
	}
	return len(seen)
}

func averageSentenceLength(wordCount, sentenceCount int) int {
	if sentenceCount == 0 {
		return 0
	}
	return int(math.Round(float64(wordCount) / float64(sentenceCount)))
}

func averageWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return math.Round(float64(total)/float64(len(words))*10) / 10
}
