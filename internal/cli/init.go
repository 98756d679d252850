package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BaryoDev/NovelAssistant/internal/scaffold"
)

var (
	initTemplate string
	initList     bool
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Scaffold chapter files for a story structure",
		Long: `Init creates one numbered markdown file per beat of the chosen story
structure. Existing files are never overwritten, so it is safe to run
in a directory that already has chapters.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if initList {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: runInit,
	}

	cmd.Flags().StringVar(&initTemplate, "template", "three-act", "story structure to lay down")
	cmd.Flags().BoolVar(&initList, "list", false, "list available templates")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if initList {
		for _, name := range scaffold.Names() {
			tpl, _ := scaffold.Lookup(name)
			fmt.Fprintf(out, "%-15s %s\n", name, tpl.Description)
		}
		return nil
	}

	created, err := scaffold.Init(args[0], initTemplate)
	if err != nil {
		return err
	}

	if len(created) == 0 {
		fmt.Fprintf(out, "Nothing to do: every chapter file already exists in %s\n", args[0])
		return nil
	}

	fmt.Fprintf(out, "Created %d chapter files in %s:\n", len(created), args[0])
	for _, path := range created {
		fmt.Fprintf(out, "  %s\n", filepath.Base(path))
	}
	return nil
}
