package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/model"
)

// Frame wraps inner in the themed border.
func Frame(inner string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a frame.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, Frame(strings.Join(lines, "\n")))
}

// Header renders the title with urgent/total counts.
func Header(lines []string) string {
	t := Current()
	urgent := 0
	for _, ln := range lines {
		if strings.HasPrefix(ln, model.UrgentMarker) {
			urgent++
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render(Text.Title),
		t.Urgent.Render("!"), urgent,
		t.Accent.Render("Total"), len(lines),
	)
}

// Line styles one display line; urgent lines get the urgent color.
func Line(line string) string {
	if strings.HasPrefix(line, model.UrgentMarker) {
		return Current().Urgent.Render(line)
	}
	return line
}

// NumberedLines renders display lines with 1-based indexes.
func NumberedLines(lines []string) []string {
	if len(lines) == 0 {
		return []string{Current().Muted.Render(Text.Empty)}
	}
	out := make([]string, 0, len(lines))
	for i, ln := range lines {
		ln = ansi.Truncate(ln, 80, "...")
		out = append(out, fmt.Sprintf("%s %s", Current().Muted.Render(fmt.Sprintf("%2d.", i+1)), Line(ln)))
	}
	return out
}

// OK and Fail print a status line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render(Current().SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render(Current().SymFail+" "+msg))
}
