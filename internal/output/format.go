// Package output renders task state for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tido/internal/service"
)

const (
	// DateSeparator is the separator line above a date header.
	DateSeparator = "------------"
)

// Printer formats tasks for one writer. Styling degrades to plain text when
// the writer is not a terminal, so piped and captured output stays stable.
type Printer struct {
	w      io.Writer
	done   lipgloss.Style
	faint  lipgloss.Style
	header lipgloss.Style
}

// NewPrinter creates a printer with a renderer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		done:   r.NewStyle().Strikethrough(true).Faint(true),
		faint:  r.NewStyle().Faint(true),
		header: r.NewStyle().Bold(true),
	}
}

// Task writes a task line: a 4-wide right-aligned number, a checkbox, and
// the title, with the description faint on a second line when present.
// Completed tasks are struck through.
func (p *Printer) Task(num int, task service.Task) {
	title := normalizeTitle(task.Title)
	box := "[ ]"
	if task.IsCompleted {
		box = "[x]"
		title = p.done.Render(title)
	}
	fmt.Fprintf(p.w, "%4d  %s %s\n", num, box, title)

	if desc := flatten(task.Description); strings.TrimSpace(desc) != "" {
		fmt.Fprintf(p.w, "          %s\n", p.faint.Render(desc))
	}
}

// DateHeader writes the section header for the active date filter.
// An empty date renders as "all dates".
func (p *Printer) DateHeader(date string) {
	label := date
	if label == "" {
		label = "all dates"
	}
	fmt.Fprintln(p.w, DateSeparator)
	fmt.Fprintln(p.w, p.header.Render(label))
	fmt.Fprintln(p.w, DateSeparator)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = flatten(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
