package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BaryoDev/NovelAssistant/internal/history"
	"github.com/BaryoDev/NovelAssistant/internal/project"
	"github.com/BaryoDev/NovelAssistant/internal/report"
)

var (
	trackGoal     int
	trackDatabase string
)

func newTrackCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track <dir>",
		Short: "Record a word-count snapshot for a project",
		Long: `Track analyzes the project directory, stores a snapshot of its word
count and readability in the history database, and shows progress
against the configured word goal.`,
		Args: cobra.ExactArgs(1),
		RunE: runTrack,
	}

	cmd.Flags().IntVar(&trackGoal, "goal", 0, "word goal override for this run")
	cmd.Flags().StringVar(&trackDatabase, "database", "", "history database path override")

	return cmd
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	defer log.Sync()

	an, err := buildAnalyzer(cfg, "")
	if err != nil {
		return err
	}

	root, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	scanner := project.NewScanner(cfg.Extensions, cfg.StripMarkdown, log)
	scan, err := scanner.Scan(root)
	if err != nil {
		return err
	}
	rep := scan.Analyze(an)

	dbPath := trackDatabase
	if dbPath == "" {
		dbPath, err = databasePath(cfg)
		if err != nil {
			return err
		}
	}

	prev, err := history.Latest(dbPath, root)
	if err != nil {
		return err
	}

	snap, err := history.Record(dbPath, history.Snapshot{
		Root:        root,
		Files:       len(scan.Documents),
		Words:       rep.TotalWords,
		Readability: rep.ReadabilityScore,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Recorded snapshot: %d words across %d files (readability %d, %s)\n",
		snap.Words, snap.Files, snap.Readability, report.ReadabilityLabel(snap.Readability))
	if prev != nil {
		fmt.Fprintf(out, "Change since %s: %+d words\n",
			prev.TakenAt.Local().Format("2006-01-02 15:04"), snap.Words-prev.Words)
	}

	goal := trackGoal
	if goal == 0 {
		goal = cfg.WordGoal
	}
	if goal > 0 {
		fmt.Fprintln(out)
		report.RenderGoal(out, snap.Words, goal)
	}
	return nil
}
