package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	// SoloWidth is the day panel width when nothing is open beside it.
	SoloWidth = 72
	// PaneWidth is the width of each pane in the split layout.
	PaneWidth = 52
	// MarkdownWidth wraps rendered item content to fit inside a pane.
	MarkdownWidth = PaneWidth - 4
)

// Frame is everything RenderApp lays out around the two panes.
type Frame struct {
	Page      string
	DateLabel string
	Main      string
	Side      string
	Status    string
	StatusErr bool
	Notice    string
	Footer    string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderApp draws the header, the day pane with an optional side pane, the
// status line and the footer.
func RenderApp(f Frame) string {
	lines := []string{
		headerStyle.Render(fmt.Sprintf("moss | %s | %s", f.Page, f.DateLabel)),
		renderPanes(f.Main, f.Side),
	}
	if line := statusLine(f.Status, f.StatusErr); line != "" {
		lines = append(lines, line)
	}
	if f.Notice != "" {
		lines = append(lines, panelStyle.Render(f.Notice))
	}
	if f.Footer != "" {
		lines = append(lines, footerStyle.Render(f.Footer))
	}
	return strings.Join(lines, "\n")
}

func renderPanes(main, side string) string {
	if strings.TrimSpace(side) == "" {
		return panelStyle.Width(SoloWidth).Render(main)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(PaneWidth).Render(main),
		panelStyle.Width(PaneWidth).Render(side),
	)
}

func statusLine(text string, isErr bool) string {
	switch {
	case text == "":
		return ""
	case isErr:
		return errorStyle.Render("status: error: " + text)
	default:
		return statusStyle.Render("status: " + text)
	}
}

// RenderMarkdown renders note or task content for the detail pane. Content
// that glamour rejects is shown as typed.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(MarkdownWidth),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
