// Package report renders analysis results for the terminal. The table
// renderer leans on go-pretty so columns stay aligned regardless of
// word lengths; JSON output is the prose.Report marshalled as-is, so
// the wire shape never drifts from the analyzer's contract.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/BaryoDev/NovelAssistant/internal/history"
	"github.com/BaryoDev/NovelAssistant/internal/project"
	"github.com/BaryoDev/NovelAssistant/internal/prose"
)

const goalBarWidth = 30

// ReadabilityLabel maps a reading-ease score onto the band shown to
// writers. Sixty and up reads easily; below thirty is heavy going.
func ReadabilityLabel(score int) string {
	switch {
	case score >= 60:
		return "Easy"
	case score >= 30:
		return "Moderate"
	default:
		return "Difficult"
	}
}

// RenderJSON writes the report as indented JSON using the analyzer's
// field names.
func RenderJSON(w io.Writer, rep prose.Report) error {
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// RenderSummary writes the human-readable report. Color goes on the
// section headers only; cells stay plain so alignment holds.
func RenderSummary(w io.Writer, rep prose.Report) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintln(w, "Manuscript Analysis")
	heading.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendRow(table.Row{"Metric", "Value"})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Total words", rep.TotalWords})
	tw.AppendRow(table.Row{"Unique words", rep.UniqueWords})
	tw.AppendRow(table.Row{"Average sentence length", fmt.Sprintf("%d words", rep.AverageSentenceLength)})
	tw.AppendRow(table.Row{"Average word length", fmt.Sprintf("%.1f characters", rep.AverageWordLength)})
	tw.AppendRow(table.Row{"Readability", fmt.Sprintf("%d (%s)", rep.ReadabilityScore, ReadabilityLabel(rep.ReadabilityScore))})
	tw.AppendRow(table.Row{"Adverbs", rep.AdverbCount})
	tw.AppendRow(table.Row{"Dialogue", fmt.Sprintf("%d%%", rep.DialoguePercentage)})
	tw.SetStyle(table.StyleLight)
	tw.Render()

	if len(rep.TopWords) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Most Frequent Words")
		renderFrequencies(w, rep.TopWords)
	}

	if len(rep.OverusedWords) > 0 {
		fmt.Fprintln(w)
		warn := color.New(color.FgRed, color.Bold)
		warn.Fprintln(w, "Overused Words")
		renderFrequencies(w, rep.OverusedWords)
	}

	if len(rep.PassiveVoiceInstances) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Passive Voice")
		for i, excerpt := range rep.PassiveVoiceInstances {
			fmt.Fprintf(w, "  %2d. %s\n", i+1, excerpt)
		}
	}
}

func renderFrequencies(w io.Writer, freqs []prose.WordFrequency) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendRow(table.Row{"#", "Word", "Count", "Share"})
	tw.AppendSeparator()
	for i, f := range freqs {
		tw.AppendRow(table.Row{i + 1, f.Word, f.Count, fmt.Sprintf("%.2f%%", f.Percentage)})
	}
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

// RenderFileStats writes the per-file word breakdown of a project scan
// in scan order, with a total row at the bottom.
func RenderFileStats(w io.Writer, stats []project.FileStat) {
	if len(stats) == 0 {
		return
	}
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintln(w, "Files")

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendRow(table.Row{"Title", "Words"})
	tw.AppendSeparator()
	total := 0
	for _, st := range stats {
		tw.AppendRow(table.Row{st.Title, st.Words})
		total += st.Words
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Total", total})
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

// RenderHistory writes recorded snapshots newest first. The change
// column compares each snapshot against the one taken before it, so
// the oldest row in the listing has none.
func RenderHistory(w io.Writer, snaps []history.Snapshot) {
	if len(snaps) == 0 {
		fmt.Fprintln(w, "No snapshots recorded yet.")
		return
	}
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintln(w, "Snapshot History")

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendRow(table.Row{"Taken", "Files", "Words", "Change", "Readability"})
	tw.AppendSeparator()
	for i, s := range snaps {
		change := ""
		if i+1 < len(snaps) {
			change = formatDelta(s.Words - snaps[i+1].Words)
		}
		tw.AppendRow(table.Row{s.TakenAt.Local().Format("2006-01-02 15:04"), s.Files, s.Words, change, s.Readability})
	}
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

// RenderGoal writes progress toward a word-count goal. The bar caps at
// full; the percentage keeps counting past it.
func RenderGoal(w io.Writer, words, goal int) {
	if goal <= 0 {
		return
	}
	pct := float64(words) / float64(goal) * 100
	filled := int(pct) * goalBarWidth / 100
	if filled > goalBarWidth {
		filled = goalBarWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", goalBarWidth-filled)

	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintln(w, "Word Goal")
	fmt.Fprintf(w, "  %s %d / %d words (%.0f%%)\n", bar, words, goal, pct)
}

func formatDelta(d int) string {
	if d > 0 {
		return "+" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}
