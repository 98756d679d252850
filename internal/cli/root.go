// Package cli wires the nva command tree: analyze for reports, track
// and history for word-count snapshots, init for chapter scaffolds.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BaryoDev/NovelAssistant/internal/config"
	"github.com/BaryoDev/NovelAssistant/internal/logger"
	"github.com/BaryoDev/NovelAssistant/internal/prose"
	"github.com/BaryoDev/NovelAssistant/internal/workspace"
)

var (
	cfgFile   string
	debugMode bool
)

// NewRootCommand builds the nva command tree.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nva",
		Short: "nva analyzes fiction drafts for style, readability, and pacing",
		Long: `nva is a writing aid for novelists. It reads manuscript files or whole
project directories, measures readability, word frequency, passive
voice, adverb pressure, and dialogue share, and tracks word counts
across drafts.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: workspace configs/config.yaml, then ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newTrackCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

func loadSetup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if debugMode {
		cfg.Debug = true
	}
	return cfg, logger.NewLogger(cfg.Debug), nil
}

// buildAnalyzer applies the word lists named on the command line or in
// the config, falling back to the built-in lexicon.
func buildAnalyzer(cfg *config.Config, lexiconPath string) (*prose.Analyzer, error) {
	path := cfg.LexiconPath
	if lexiconPath != "" {
		path = lexiconPath
	}
	if path == "" {
		return prose.NewAnalyzer(prose.DefaultLexicon()), nil
	}

	lex, err := config.LoadLexicon(path)
	if err != nil {
		return nil, err
	}
	return prose.NewAnalyzer(lex), nil
}

// databasePath resolves where snapshots live, creating the workspace
// when the config does not name a database.
func databasePath(cfg *config.Config) (string, error) {
	if cfg.DatabasePath != "" {
		return cfg.DatabasePath, nil
	}
	root, err := workspace.EnsureDefault()
	if err != nil {
		return "", err
	}
	return workspace.DefaultDatabasePath(root), nil
}
