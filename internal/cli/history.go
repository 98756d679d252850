package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BaryoDev/NovelAssistant/internal/history"
	"github.com/BaryoDev/NovelAssistant/internal/report"
)

var (
	historyLimit    int
	historyRoot     string
	historyDatabase string
)

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 10, "most recent snapshots to show (0 for all)")
	cmd.Flags().StringVar(&historyRoot, "root", "", "only snapshots for this project directory")
	cmd.Flags().StringVar(&historyDatabase, "database", "", "history database path override")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSetup()
	if err != nil {
		return err
	}
	defer log.Sync()

	dbPath := historyDatabase
	if dbPath == "" {
		dbPath, err = databasePath(cfg)
		if err != nil {
			return err
		}
	}

	root := historyRoot
	if root != "" {
		if abs, absErr := filepath.Abs(root); absErr == nil {
			root = abs
		}
	}

	snaps, err := history.List(dbPath, root, historyLimit)
	if err != nil {
		return err
	}

	report.RenderHistory(cmd.OutOrStdout(), snaps)
	return nil
}
