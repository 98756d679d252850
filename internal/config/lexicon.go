package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BaryoDev/NovelAssistant/internal/prose"
)

type lexiconFile struct {
	StopWords []string `yaml:"stop_words"`
	Adverbs   []string `yaml:"adverbs"`
}

// LoadLexicon reads a YAML word-list file and builds an analyzer
// lexicon from it. A list left empty in the file keeps the built-in
// words for that slot.
func LoadLexicon(path string) (prose.Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return prose.Lexicon{}, fmt.Errorf("read lexicon: %w", err)
	}

	var lf lexiconFile
	if err := yaml.Unmarshal(raw, &lf); err != nil {
		return prose.Lexicon{}, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	return prose.LexiconFromLists(lf.StopWords, lf.Adverbs), nil
}
