// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpierre/resume-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of the extracted record.
func (p *Printer) PrintResumeSummary(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	if record.Basics.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:       %s\n", record.Basics.Name))
	}
	sb.WriteString(fmt.Sprintf("Projects:   %d\n", len(record.Projects)))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", record.Skills.TotalSkills()))
	sb.WriteString(fmt.Sprintf("Education:  %d", len(record.Education)))
	if gpa := record.BestGPA(); gpa > 0 {
		sb.WriteString(fmt.Sprintf(" (GPA %.2f)", gpa))
	}

	p.printBox("EXTRACTED RESUME", sb.String())
}

// PrintScoreReport outputs the composite score with the per-dimension
// breakdown and the top insights.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total Score: %d / 100\n\n", report.TotalScore))

	for _, entry := range report.Breakdown {
		sb.WriteString(fmt.Sprintf("%-11s %3d  (quality %3d, quantity %3d, +%d)\n",
			entry.Category, entry.CombinedScore, entry.QualityScore, entry.QuantityScore, entry.Contribution))
	}

	if len(report.Insights) > 0 {
		sb.WriteString("\nTop Insights:\n")
		count := min(len(report.Insights), maxItemsToShow)
		for i := 0; i < count; i++ {
			insight := report.Insights[i]
			text := insight.Insight
			if len(text) > 45 {
				text = text[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", insight.Priority, text))
		}
		if len(report.Insights) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Insights)-maxItemsToShow))
		}
	}

	p.printBox("RESUME SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs matched coursework grouped by category.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	if len(report.Matches) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO COURSEWORK MATCHES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Term %s, threshold %d: %d matches\n",
		report.Term, report.Threshold, len(report.Matches)))

	for _, category := range types.AllCategories() {
		matches := report.ByCategory[category]
		if len(matches) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("\n%s:\n", category))
		count := min(len(matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			match := matches[i]
			name := match.Course.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s %s (%d)\n", match.Course.Code, name, match.Score))
		}
		if len(matches) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(matches)-maxItemsToShow))
		}
	}

	p.printBox("COURSEWORK MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
