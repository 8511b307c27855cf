// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/shubhamdevjs/BeatATS/internal/types"
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

// PrintReport outputs a human-readable summary of a full analysis report.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Resume.Name != "" {
		sb.WriteString(fmt.Sprintf("Resume:   %s\n", report.Resume.Name))
	}
	if report.JD.Title != "" {
		sb.WriteString(fmt.Sprintf("Job:      %s\n", report.JD.Title))
	}
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", report.Overall.Verdict))
	if report.Overall.KnockoutFailed {
		sb.WriteString(fmt.Sprintf("Score:    %.1f%% (effective 0%%, auto-rejected)\n", report.Overall.ATSScore))
	} else {
		sb.WriteString(fmt.Sprintf("Score:    %.1f%%\n", report.Overall.ATSScore))
	}
	sb.WriteString("\n")
	sb.WriteString(report.Overall.Message)

	p.printBox("ANALYSIS REPORT", sb.String())
	p.PrintKnockout(&report.Knockout)
	p.PrintMatchSummary(&report.Matching)

	if len(report.Overall.TopMissingSkills) > 0 {
		p.printBox("TOP MISSING SKILLS", "• "+strings.Join(report.Overall.TopMissingSkills, "\n• "))
	}
}

// PrintKnockout outputs the per-rule knockout outcomes.
func (p *Printer) PrintKnockout(result *types.KnockoutResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %s\n\n", strings.ToUpper(string(result.OverallStatus))))

	for _, check := range result.Checks {
		marker := "✓"
		switch check.Status {
		case types.StatusRisk:
			marker = "?"
		case types.StatusFail:
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, check.Rule))
		if check.Status != types.StatusPass {
			message := check.Message
			if len(message) > 50 {
				message = message[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", message))
		}
	}

	p.printBox("KNOCKOUT FILTERS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchSummary outputs the skill match scores and the strongest
// matched skills.
func (p *Printer) PrintMatchSummary(result *types.MatchResult) {
	if result == nil {
		return
	}

	summary := result.MatchSummary
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.1f%%\n", summary.OverallScore))
	sb.WriteString(fmt.Sprintf("Hard:     %s (%.1f%%)\n", summary.HardSkillMatch, summary.HardScore))
	sb.WriteString(fmt.Sprintf("Soft:     %s (%.1f%%)\n", summary.SoftSkillMatch, summary.SoftScore))
	sb.WriteString(fmt.Sprintf("Evidence: %.2f avg\n", summary.EvidenceAvg))

	if len(result.Matches.Hard) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(result.Matches.Hard), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := result.Matches.Hard[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.1f", m.JDSkill, m.EvidenceScore))
			if m.InExperience {
				sb.WriteString(", in experience")
			}
			sb.WriteString(")\n")
		}
		if len(result.Matches.Hard) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matches.Hard)-maxItemsToShow))
		}
	}

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}
