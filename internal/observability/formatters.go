// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
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

// PrintRoadmap outputs a human-readable summary of a generated roadmap.
func (p *Printer) PrintRoadmap(rm *types.Roadmap) {
	if rm == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Readiness:  %d/100 (%s)\n", rm.ReadinessScore, rm.ReadinessTier))
	sb.WriteString(fmt.Sprintf("Effort:     %d hours over ~%d days\n", rm.TotalHours, rm.EstimatedDays))
	sb.WriteString("\n")

	if len(rm.Gaps) == 0 {
		sb.WriteString("No skill gaps. Nothing to schedule.")
		p.printBox("Study Roadmap", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Skill gaps (%d):\n", len(rm.Gaps)))
	for i, gap := range rm.Gaps {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rm.Gaps)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %d. %s  gap %.1f  (%dh, priority %.2f)\n",
			i+1, gap.SkillName, gap.Gap, gap.EstimatedHours, gap.Priority))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Weekly plan (%d weeks):\n", len(rm.Weeks)))
	for _, wp := range rm.Weeks {
		names := make([]string, 0, len(wp.Skills))
		for _, s := range wp.Skills {
			names = append(names, s.SkillName)
		}
		sb.WriteString(fmt.Sprintf("  %s: %s\n", wp.Label, strings.Join(names, ", ")))
	}

	p.printBox("Study Roadmap", sb.String())
}

// PrintNarrative outputs the narrative block of a roadmap, if present.
func (p *Printer) PrintNarrative(n *types.Narrative) {
	if n == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(n.Overview)
	sb.WriteString("\n")

	if len(n.AdditionalInsights) > 0 {
		sb.WriteString("\nInsights:\n")
		for _, insight := range n.AdditionalInsights {
			sb.WriteString(fmt.Sprintf("  - %s\n", insight))
		}
	}
	if len(n.MotivationalTips) > 0 {
		sb.WriteString("\nTips:\n")
		for _, tip := range n.MotivationalTips {
			sb.WriteString(fmt.Sprintf("  - %s\n", tip))
		}
	}

	p.printBox("Coach Notes", sb.String())
}

// PrintAlignment outputs a human-readable summary of an alignment result.
func (p *Printer) PrintAlignment(result *types.AlignmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Alignment score:  %d/100\n\n", result.Score))
	sb.WriteString(fmt.Sprintf("Theme match:       %.0f\n", result.Breakdown.Theme))
	sb.WriteString(fmt.Sprintf("Tech match:        %.0f\n", result.Breakdown.Tech))
	sb.WriteString(fmt.Sprintf("Architecture:      %.0f\n", result.Breakdown.Architecture))
	sb.WriteString(fmt.Sprintf("Innovation depth:  %.0f\n", result.Breakdown.InnovationDepth))
	sb.WriteString(fmt.Sprintf("Domain match:      %.0f\n", result.Breakdown.Domain))

	if len(result.MatchedThemes) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatched themes:    %s\n", strings.Join(result.MatchedThemes, ", ")))
	}
	if len(result.OverlappingTech) > 0 {
		sb.WriteString(fmt.Sprintf("Shared tech:       %s\n", strings.Join(result.OverlappingTech, ", ")))
	}
	if len(result.MatchedProjects) > 0 {
		sb.WriteString(fmt.Sprintf("Related projects:  %s\n", strings.Join(result.MatchedProjects, ", ")))
	}
	if result.MatchedDomain != "" {
		sb.WriteString(fmt.Sprintf("Matched domain:    %s\n", result.MatchedDomain))
	}

	p.printBox("Project Alignment", sb.String())
}
