// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs the extracted keyword set with weights and sources.
func (p *Printer) PrintKeywords(keywords []types.Keyword) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := keywords[i]
		sb.WriteString(fmt.Sprintf("  %-24s %.2f  %s\n", kw.Term, kw.Weight, kw.Source))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMapping outputs the matched and missing keyword partition.
func (p *Printer) PrintMapping(mapping *types.MappingResult) {
	if mapping == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched: %d   Missing: %d\n", len(mapping.Matched), len(mapping.Missing)))

	if len(mapping.Matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(mapping.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := mapping.Matched[i]
			sb.WriteString(fmt.Sprintf("  %-24s sim %.2f  (%d chunks)\n", entry.Keyword.Term, entry.Similarity, len(entry.MatchedChunkIDs)))
		}
		if len(mapping.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(mapping.Matched)-maxItemsToShow))
		}
	}

	if len(mapping.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(mapping.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s\n", mapping.Missing[i].Term))
		}
		if len(mapping.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(mapping.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD MAPPING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the ATS score with its penalty breakdown.
func (p *Printer) PrintScore(detail *types.ATSScoreResult) {
	if detail == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f / 100\n", detail.Score))

	if len(detail.Penalties) > 0 {
		sb.WriteString("\nPenalties:\n")
		for _, penalty := range detail.Penalties {
			sb.WriteString(fmt.Sprintf("  -%.1f  %s\n", penalty.Amount, penalty.Reason))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRun outputs the run summary with the iteration log.
func (p *Printer) PrintRun(result *types.RunResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:             %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Terminal state:  %s\n", result.TerminalState))
	sb.WriteString(fmt.Sprintf("Final score:     %.1f\n", result.FinalScore))
	sb.WriteString(fmt.Sprintf("Render attempts: %d\n", result.RenderAttempts))

	if len(result.Optimizer.Iterations) > 0 {
		sb.WriteString("\nIterations:\n")
		for _, iter := range result.Optimizer.Iterations {
			sb.WriteString(fmt.Sprintf("  #%d  %.1f -> %.1f\n", iter.Number, iter.ScoreBefore, iter.ScoreAfter))
			count := min(len(iter.Changes), 3)
			for i := 0; i < count; i++ {
				sb.WriteString(fmt.Sprintf("      %s\n", iter.Changes[i]))
			}
			if len(iter.Changes) > 3 {
				sb.WriteString(fmt.Sprintf("      ... and %d more changes\n", len(iter.Changes)-3))
			}
		}
	}

	if result.DocumentPath != "" {
		sb.WriteString(fmt.Sprintf("\nDocument: %s\n", result.DocumentPath))
	}

	p.printBox("RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
