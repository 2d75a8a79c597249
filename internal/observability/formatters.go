// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/rendering"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
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

// PrintRecordSummary outputs a human-readable summary of a parsed document.
func (p *Printer) PrintRecordSummary(record *types.Record) {
	if record == nil {
		return
	}

	var sb strings.Builder

	name := record.FullName
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:   %s\n", name))
	if record.Tagline != "" {
		sb.WriteString(fmt.Sprintf("Title:  %s\n", record.Tagline))
	}
	sb.WriteString(fmt.Sprintf("Scale:  %d%%\n", rendering.ScalePercent(float64(record.FontScale))))
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	for _, section := range sectionCounts(record) {
		if section.count == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  • %-16s %d\n", section.name, section.count))
	}

	hidden := hiddenSections(record.SectionVisibility)
	if len(hidden) > 0 {
		sb.WriteString("\nHidden:\n")
		count := min(len(hidden), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", hidden[i]))
		}
		if len(hidden) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(hidden)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

type sectionCount struct {
	name  string
	count int
}

func sectionCounts(record *types.Record) []sectionCount {
	return []sectionCount{
		{"education", len(record.Education)},
		{"expertise", len(record.Expertise)},
		{"achievements", len(record.Achievements)},
		{"work", len(record.Work)},
		{"internships", len(record.Internships)},
		{"projects", len(record.Projects)},
		{"certifications", len(record.Certifications)},
		{"responsibility", len(record.Por)},
		{"extracurricular", len(record.Extra)},
		{"co-curricular", len(record.Co)},
		{"skills", len(record.TechSkills)},
		{"links", len(record.Links)},
		{"personal", len(record.Personal)},
	}
}

func hiddenSections(v types.SectionVisibility) []string {
	var hidden []string
	for name, shown := range map[string]bool{
		"header":         v.Header,
		"linkedinLogo":   v.LinkedinLogo,
		"education":      v.Education,
		"expertise":      v.Expertise,
		"achievements":   v.Achievements,
		"work":           v.Work,
		"internships":    v.Internships,
		"projects":       v.Projects,
		"certifications": v.Certifications,
		"por":            v.Por,
		"extra":          v.Extra,
		"co":             v.Co,
		"skills":         v.Skills,
		"links":          v.Links,
		"personal":       v.Personal,
	} {
		if !shown {
			hidden = append(hidden, name)
		}
	}
	// Map iteration order is random; sort for stable output
	sort.Strings(hidden)
	return hidden
}
