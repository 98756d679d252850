package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BaryoDev/NovelAssistant/internal/project"
	"github.com/BaryoDev/NovelAssistant/internal/report"
)

var (
	analyzeJSON    bool
	analyzePlain   bool
	analyzeLexicon string
	analyzeWorkers int
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a manuscript file or a project directory",
		Long: `Analyze reads a single manuscript file or every manuscript under a
project directory and prints the style report. A directory is
concatenated into one text before analysis so percentages describe
the whole draft, with a per-file word breakdown underneath.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the report as JSON")
	cmd.Flags().BoolVar(&analyzePlain, "plain", false, "disable colored output")
	cmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "YAML word-list file overriding the built-in lexicon")
	cmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "workers for the per-file breakdown (default: all cores)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if analyzePlain {
		color.NoColor = true
	}

	an, err := buildAnalyzer(cfg, analyzeLexicon)
	if err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	scanner := project.NewScanner(cfg.Extensions, cfg.StripMarkdown, log)

	if !info.IsDir() {
		rep, err := scanner.AnalyzeFile(an, path)
		if err != nil {
			return err
		}
		if analyzeJSON || cfg.Format == "json" {
			return report.RenderJSON(out, rep)
		}
		report.RenderSummary(out, rep)
		return nil
	}

	scan, err := scanner.Scan(path)
	if err != nil {
		return err
	}
	log.Debug("scanned project",
		zap.String("root", scan.Root),
		zap.Int("documents", len(scan.Documents)),
		zap.Int("skipped", len(scan.Skipped)))

	rep := scan.Analyze(an)
	if analyzeJSON || cfg.Format == "json" {
		return report.RenderJSON(out, rep)
	}

	report.RenderSummary(out, rep)

	workers := analyzeWorkers
	if workers == 0 {
		workers = cfg.Workers
	}
	if stats := scan.FileStats(workers); len(stats) > 0 {
		fmt.Fprintln(out)
		report.RenderFileStats(out, stats)
	}
	return nil
}
