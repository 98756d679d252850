package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/BaryoDev/NovelAssistant/internal/ingest"
	"github.com/BaryoDev/NovelAssistant/internal/prose"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScanWalksRecursivelyAndFilters(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "01-first.md"), "The first chapter opens quietly.")
	writeFile(t, filepath.Join(root, "notes.json"), `{"ignore": true}`)
	writeFile(t, filepath.Join(root, "03-third.txt"), "Not collected under md-only scans.")
	writeFile(t, filepath.Join(root, "sub", "02-second.md"), "The second chapter answers.")

	s := NewScanner([]string{".md"}, false, nil)
	scan, err := s.Scan(root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(scan.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(scan.Documents))
	}
	if scan.Documents[0].Title != "01-first" || scan.Documents[1].Title != "02-second" {
		t.Fatalf("expected walk order by path, got %q then %q", scan.Documents[0].Title, scan.Documents[1].Title)
	}
}

func TestScanSkipsUnreadableAndContinues(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "good.md"), "A chapter that reads fine.")
	if err := os.Symlink(filepath.Join(root, "missing.md"), filepath.Join(root, "broken.md")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	s := NewScanner([]string{".md"}, false, nil)
	scan, err := s.Scan(root)
	if err != nil {
		t.Fatalf("expected skip-and-continue, got %v", err)
	}
	if len(scan.Documents) != 1 || scan.Documents[0].Title != "good" {
		t.Fatalf("expected the readable document only, got %+v", scan.Documents)
	}
	if len(scan.Skipped) != 1 {
		t.Fatalf("expected one skipped path, got %v", scan.Skipped)
	}
}

func TestScanRejectsFileRoot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "single.md")
	writeFile(t, path, "Just one file.")
	if _, err := NewScanner([]string{".md"}, false, nil).Scan(path); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestAggregateMatchesSingleJoinedAnalysis(t *testing.T) {
	first := "The lighthouse keeper counted the ships."
	second := "\"None tonight,\" he said quietly."
	sc := &Scan{Documents: []ingest.Document{{Text: first}, {Text: second}}}

	if got := sc.AggregateText(); got != first+"\n\n"+second {
		t.Fatalf("expected blank-line separator, got %q", got)
	}

	an := prose.NewAnalyzer(prose.DefaultLexicon())
	direct := an.Analyze(first + "\n\n" + second)
	if !reflect.DeepEqual(sc.Analyze(an), direct) {
		t.Fatalf("expected project analysis to equal joined analysis")
	}
}

func TestAnalyzeFileHonorsStripMarkdown(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "draft.md")
	writeFile(t, path, "# One\n\n```\nalpha beta gamma\n```\n\nReal prose sentence.")

	an := prose.NewAnalyzer(prose.DefaultLexicon())

	plain, err := NewScanner([]string{".md"}, true, nil).AnalyzeFile(an, path)
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	if plain.TotalWords != 4 {
		t.Fatalf("expected 4 words with markdown stripped, got %d", plain.TotalWords)
	}

	raw, err := NewScanner([]string{".md"}, false, nil).AnalyzeFile(an, path)
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	if raw.TotalWords != 7 {
		t.Fatalf("expected 7 words without stripping, got %d", raw.TotalWords)
	}
}

func TestFileStatsCountWordsPerDocument(t *testing.T) {
	sc := &Scan{Documents: []ingest.Document{
		{Title: "a", Path: "a.md", Text: "Three words here."},
		{Title: "b", Path: "b.md", Text: "Now exactly four words."},
	}}
	stats := sc.FileStats(2)
	if len(stats) != 2 {
		t.Fatalf("expected 2 stats, got %d", len(stats))
	}
	if stats[0].Words != 3 || stats[1].Words != 4 {
		t.Fatalf("expected word counts 3 and 4, got %+v", stats)
	}
	if stats[0].Title != "a" || stats[1].Title != "b" {
		t.Fatalf("expected document order preserved, got %+v", stats)
	}
}
