package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BaryoDev/NovelAssistant/internal/prose"
)

// execute runs a fresh command tree so flag values reset between cases.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test", "none", "unreleased")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeTempConfig pins the config so files on the developer's machine
// cannot leak into test runs.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeManuscript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, want := range []string{"analyze", "track", "history", "init"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestAnalyzeFileJSON(t *testing.T) {
	cfg := writeTempConfig(t, "format: table\n")
	path := writeManuscript(t, t.TempDir(), "chapter.md",
		"The keeper walked along the winter shore. \"Hello,\" she said.\n")

	out, err := execute(t, "analyze", path, "--json", "--config", cfg)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	var rep prose.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if rep.TotalWords != 10 {
		t.Errorf("expected 10 words, got %d", rep.TotalWords)
	}
	if rep.DialoguePercentage == 0 {
		t.Error("expected nonzero dialogue percentage")
	}
}

func TestAnalyzeDirectoryShowsFiles(t *testing.T) {
	cfg := writeTempConfig(t, "workers: 1\n")
	proj := t.TempDir()
	writeManuscript(t, proj, "01-one.md", "The storm broke over the harbor at dawn.\n")
	writeManuscript(t, proj, "02-two.md", "The keeper counted the boats twice.\n")

	out, err := execute(t, "analyze", proj, "--plain", "--config", cfg)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	for _, want := range []string{"Manuscript Analysis", "Files", "01-one", "02-two", "Total"} {
		if !strings.Contains(out, want) {
			t.Errorf("directory analysis missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeMissingPath(t *testing.T) {
	cfg := writeTempConfig(t, "format: table\n")
	if _, err := execute(t, "analyze", filepath.Join(t.TempDir(), "ghost.md"), "--config", cfg); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestTrackRecordsAndHistoryLists(t *testing.T) {
	cfg := writeTempConfig(t, "word_goal: 100\n")
	proj := t.TempDir()
	writeManuscript(t, proj, "chapter.md", "The keeper walked along the winter shore.\n")
	db := filepath.Join(t.TempDir(), "snapshots.db")

	out, err := execute(t, "track", proj, "--database", db, "--config", cfg)
	if err != nil {
		t.Fatalf("track failed: %v", err)
	}
	if !strings.Contains(out, "Recorded snapshot: 7 words across 1 files") {
		t.Errorf("unexpected track output:\n%s", out)
	}
	if !strings.Contains(out, "Word Goal") || !strings.Contains(out, "(7%)") {
		t.Errorf("expected goal progress in output:\n%s", out)
	}

	out, err = execute(t, "track", proj, "--database", db, "--config", cfg)
	if err != nil {
		t.Fatalf("second track failed: %v", err)
	}
	if !strings.Contains(out, "Change since") || !strings.Contains(out, "+0 words") {
		t.Errorf("expected change line on second track:\n%s", out)
	}

	out, err = execute(t, "history", "--database", db, "--config", cfg, "--limit", "5")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "Snapshot History") || !strings.Contains(out, "7") {
		t.Errorf("unexpected history output:\n%s", out)
	}

	out, err = execute(t, "history", "--database", db, "--config", cfg, "--root", filepath.Join(proj, "elsewhere"))
	if err != nil {
		t.Fatalf("filtered history failed: %v", err)
	}
	if !strings.Contains(out, "No snapshots recorded yet.") {
		t.Errorf("expected empty listing for unknown root:\n%s", out)
	}
}

func TestInitListAndScaffold(t *testing.T) {
	out, err := execute(t, "init", "--list")
	if err != nil {
		t.Fatalf("init --list failed: %v", err)
	}
	for _, want := range []string{"three-act", "save-the-cat", "short-story", "heros-journey"} {
		if !strings.Contains(out, want) {
			t.Errorf("template listing missing %q", want)
		}
	}

	dir := filepath.Join(t.TempDir(), "novel")
	out, err = execute(t, "init", dir, "--template", "short-story")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Created 5 chapter files") {
		t.Errorf("unexpected init output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "01-hook.md")); err != nil {
		t.Errorf("expected scaffolded chapter: %v", err)
	}
}
