// Package observability provides formatted output for the CLI: collection
// listings, document summaries and load diagnostics.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/records"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
	now func() time.Time
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, now: time.Now}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}

// LastUpdatedText describes how long ago a document was saved
func LastUpdatedText(lastUpdated string, now time.Time) string {
	if lastUpdated == "" {
		return "Not saved"
	}
	t, err := time.Parse(time.RFC3339, lastUpdated)
	if err != nil {
		return "Invalid date"
	}
	minutes := int(now.Sub(t).Minutes())
	switch {
	case minutes < 1:
		return "Just now"
	case minutes == 1:
		return "1 minute ago"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case minutes < 120:
		return "1 hour ago"
	case minutes < 24*60:
		return fmt.Sprintf("%d hours ago", minutes/60)
	}
	return t.Local().Format("2006-01-02")
}

// Stats summarizes a collection for the dashboard header
type Stats struct {
	Total      int
	Pinned     int
	Unsaved    int
	ByTemplate map[string]int
}

// Summarize counts documents by state and template
func Summarize(docs []types.ResumeDocument) Stats {
	s := Stats{Total: len(docs), ByTemplate: map[string]int{}}
	for _, d := range docs {
		if d.IsPinned {
			s.Pinned++
		}
		if d.LastUpdated == "" {
			s.Unsaved++
		}
		s.ByTemplate[d.TemplateID]++
	}
	return s
}

// PrintCollection outputs docs in the given order, one line each
func (p *Printer) PrintCollection(docs []types.ResumeDocument) {
	stats := Summarize(docs)
	var sb strings.Builder
	if stats.Total == 0 {
		sb.WriteString("No résumés yet. Create one with `new` or `import`.")
		p.printBox("RÉSUMÉS", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Total: %d   Pinned: %d\n\n", stats.Total, stats.Pinned))
	now := p.now()
	for i, d := range docs {
		marker := " "
		if d.IsPinned {
			marker = "*"
		}
		name := d.FullName
		if name == "" {
			name = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, name))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", types.TemplateName(d.TemplateID), d.ThemeMode, LastUpdatedText(d.LastUpdated, now)))
		sb.WriteString(fmt.Sprintf("    id: %s", d.ID))
		if i < len(docs)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("RÉSUMÉS", sb.String())
}

// PrintDocument outputs a summary of one document
func (p *Printer) PrintDocument(doc types.ResumeDocument) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", doc.FullName))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", doc.Role))
	sb.WriteString(fmt.Sprintf("Template:  %s (%s)\n", types.TemplateName(doc.TemplateID), doc.ThemeMode))
	sb.WriteString(fmt.Sprintf("Pinned:    %t\n", doc.IsPinned))
	sb.WriteString(fmt.Sprintf("Updated:   %s\n", LastUpdatedText(doc.LastUpdated, p.now())))
	sb.WriteString("\n")

	if len(doc.Experiences) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(doc.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := doc.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", e.Role, e.Company))
		}
		if len(doc.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experiences)-maxItemsToShow))
		}
	}
	if len(doc.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(doc.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := doc.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s %d%%\n", s.Name, s.Level))
		}
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Skills)-maxItemsToShow))
		}
	}
	sb.WriteString(fmt.Sprintf("Education: %d  Languages: %d  Hobbies: %d", len(doc.Education), len(doc.Languages), len(doc.Hobbies)))

	p.printBox("RÉSUMÉ "+doc.ID, sb.String())
}

// PrintTemplates outputs the template catalog
func (p *Printer) PrintTemplates(options []types.TemplateOption) {
	var sb strings.Builder
	for i, o := range options {
		sb.WriteString(fmt.Sprintf("%-8s %s\n", o.ID, o.Name))
		sb.WriteString(fmt.Sprintf("         %s", o.Description))
		if i < len(options)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("TEMPLATES", sb.String())
}

// PrintLoadResult reports corruption or a legacy migration; it prints
// nothing for an ordinary load.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLoadResult(result records.LoadResult) {
	switch {
	case result.Corrupt:
		msg := "Stored data could not be read and was ignored.\nSaving will replace it."
		if result.Problem != nil {
			msg += "\n\n" + result.Problem.Error()
		}
		p.printBox("⚠ CORRUPT DATA", msg)
	case result.Migrated:
		fmt.Fprintf(p.out, "Migrated %d legacy résumé into the collection.\n", len(result.Documents))
	}
}
