// Package project turns a folder of manuscript files into one analyzable
// text. The core analyzer sees a single string; everything filesystem-ish
// lives here.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/BaryoDev/NovelAssistant/internal/ingest"
	"github.com/BaryoDev/NovelAssistant/internal/mdstrip"
	"github.com/BaryoDev/NovelAssistant/internal/pipeline"
	"github.com/BaryoDev/NovelAssistant/internal/prose"
)

// Scanner collects manuscript sources under a project root.
type Scanner struct {
	exts  map[string]struct{}
	strip bool
	log   *zap.Logger
}

func NewScanner(extensions []string, stripMarkdown bool, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = struct{}{}
	}
	return &Scanner{exts: exts, strip: stripMarkdown, log: log}
}

// Scan walks root recursively and loads every matching source in walk
// order. Unreadable entries are logged and skipped; one bad chapter never
// sinks the project.
func (s *Scanner) Scan(root string) (*Scan, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root is not a directory: %s", root)
	}

	scan := &Scan{Root: root}
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			scan.Skipped = append(scan.Skipped, path)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := s.exts[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		doc, readErr := s.load(path)
		if readErr != nil {
			s.log.Warn("skipping unreadable source", zap.String("path", path), zap.Error(readErr))
			scan.Skipped = append(scan.Skipped, path)
			return nil
		}
		scan.Documents = append(scan.Documents, *doc)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk project: %w", walkErr)
	}
	return scan, nil
}

// AnalyzeFile reads one source and runs a single analysis over its text.
func (s *Scanner) AnalyzeFile(an *prose.Analyzer, path string) (prose.Report, error) {
	doc, err := s.load(path)
	if err != nil {
		return prose.Report{}, err
	}
	return an.Analyze(doc.Text), nil
}

func (s *Scanner) load(path string) (*ingest.Document, error) {
	doc, err := ingest.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	if s.strip && isMarkdown(path) {
		doc.Text = mdstrip.Strip(doc.Text)
	}
	return doc, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Scan is the outcome of one project walk.
type Scan struct {
	Root      string
	Documents []ingest.Document
	Skipped   []string
}

// AggregateText joins every document with a blank line so sentences and
// quotes never merge across file boundaries.
func (sc *Scan) AggregateText() string {
	parts := make([]string, 0, len(sc.Documents))
	for _, d := range sc.Documents {
		parts = append(parts, d.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Analyze runs a single analysis over the aggregated project text.
func (sc *Scan) Analyze(an *prose.Analyzer) prose.Report {
	return an.Analyze(sc.AggregateText())
}

// FileStat is one file's share of the project.
type FileStat struct {
	Title string
	Path  string
	Words int
}

// FileStats counts words per file, fanning out across workers for large
// projects. Results follow document order.
func (sc *Scan) FileStats(workers int) []FileStat {
	stats := make([]FileStat, len(sc.Documents))
	pipeline.EachDocument(sc.Documents, workers, func(i int, doc ingest.Document) error {
		stats[i] = FileStat{Title: doc.Title, Path: doc.Path, Words: len(prose.Words(doc.Text))}
		return nil
	})
	return stats
}
