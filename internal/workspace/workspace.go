// Package workspace prepares the per-user directory tree the tool
// works out of: configs for settings and word lists, history for the
// snapshot database, projects for scaffolded drafts.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const BaseDirName = "NovelAssistant"

type defaultSettings struct {
	Extensions    []string `yaml:"extensions"`
	StripMarkdown bool     `yaml:"strip_markdown"`
	WordGoal      int      `yaml:"word_goal"`
	Format        string   `yaml:"format"`
}

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout under base and seeds a default
// config file. Existing files are left alone.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "history"),
		filepath.Join(base, "projects"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	configPath := filepath.Join(base, "configs", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaults := defaultSettings{
			Extensions:    []string{".md", ".markdown", ".txt"},
			StripMarkdown: true,
			WordGoal:      0,
			Format:        "table",
		}
		raw, marshalErr := yaml.Marshal(defaults)
		if marshalErr != nil {
			return "", fmt.Errorf("marshal config: %w", marshalErr)
		}
		if writeErr := os.WriteFile(configPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write config: %w", writeErr)
		}
	}

	return base, nil
}

// DefaultDatabasePath returns where snapshot history lives when the
// config does not name a database.
func DefaultDatabasePath(base string) string {
	return filepath.Join(base, "history", "snapshots.db")
}

// ProjectsDir returns the directory scaffolded drafts default into.
func ProjectsDir(base string) string {
	return filepath.Join(base, "projects")
}
