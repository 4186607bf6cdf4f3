// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-analyzer/internal/types"
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

// PrintSeniority outputs a human-readable summary of the seniority result.
func (p *Printer) PrintSeniority(result *types.SeniorityResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Level:      %s\n", result.Level))
	sb.WriteString(fmt.Sprintf("Score:      %.1f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Confidence: %.1f\n", result.Confidence))
	sb.WriteString("\n")

	for _, sig := range result.Signals {
		sb.WriteString(fmt.Sprintf("%-12s %.2f (weight %.2f)\n", sig.Axis, sig.Score, sig.Weight))
	}

	if result.JobFit != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Job expects: %s (%s)\n", result.JobFit.ExpectedLevel, result.JobFit.Verdict))
	}

	p.printBox("SENIORITY", strings.TrimRight(sb.String(), "\n"))
}

// PrintStability outputs a human-readable summary of the stability result.
func (p *Printer) PrintStability(result *types.StabilityResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:          %.1f\n", result.Score))
	sb.WriteString(fmt.Sprintf("Average tenure: %.0f months\n", result.AverageTenureMonths))

	if len(result.Flags) > 0 {
		flags := make([]string, 0, len(result.Flags))
		for _, flag := range result.Flags {
			flags = append(flags, string(flag))
		}
		sb.WriteString(fmt.Sprintf("Flags:          %s\n", strings.Join(flags, ", ")))
	}

	for i, entry := range result.Timeline {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more positions\n", len(result.Timeline)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%d-%d %s @ %s\n",
			entry.StartYear, entry.EndYear, entry.Title, entry.Company))
	}

	p.printBox("STABILITY", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatches outputs the ranked job matches.
func (p *Printer) PrintMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder

	for i, match := range matches {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more jobs\n", len(matches)-maxItemsToShow))
			break
		}
		marker := " "
		if match.IsBestFit {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %5.1f%% %-9s %s\n",
			marker, match.MatchPercentage, match.MatchLevel, match.JobTitle))
	}

	p.printBox("JOB MATCHES", strings.TrimRight(sb.String(), "\n"))
}

// PrintATSResults outputs the per-job ATS scores.
func (p *Printer) PrintATSResults(results []types.ATSResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder

	for _, result := range results {
		sb.WriteString(fmt.Sprintf("%-20s %5.1f/100 (%s)\n",
			result.JobID, result.TotalScore, result.RoleType))
		for _, issue := range result.FormatIssues {
			sb.WriteString(fmt.Sprintf("  ! %s\n", issue))
		}
	}

	p.printBox("ATS SCORES", strings.TrimRight(sb.String(), "\n"))
}

// PrintReport outputs every section of the analysis report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}
	p.PrintSeniority(&report.Seniority)
	p.PrintStability(&report.Stability)
	p.PrintMatches(report.Matches)
	p.PrintATSResults(report.ATSResults)
}
