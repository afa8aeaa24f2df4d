package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	todayStyle   = lipgloss.NewStyle().Reverse(true)
)

type DayTaskData struct {
	Title     string
	Content   string
	Time      string
	Completed bool
	Selected  bool
}

type DayNoteData struct {
	Title    string
	Content  string
	Selected bool
}

type DayPanelData struct {
	Page         string
	DateLabel    string
	RR           bool
	Workout      bool
	ProgressView string
	ProgressPct  int
	DoneTasks    int
	Tasks        []DayTaskData
	Notes        []DayNoteData
}

type ComposePanelData struct {
	Kind        string
	Title       string
	ContentView string
	TimeView    string
	ErrorText   string
}

type DetailPanelData struct {
	Kind        string
	Title       string
	Status      string
	ScheduledAt string
	CreatedAt   string
	ContentView string
}

type CalendarDayData struct {
	Day     int
	IsToday bool
	RR      bool
	Workout bool
	// HasEntries marks days holding at least one note or task.
	HasEntries bool
}

type CalendarPanelData struct {
	MonthLabel string
	// Cells is Sunday-first; nil entries pad the first week.
	Cells []*CalendarDayData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderDayPanel(data DayPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s - %s\n", data.Page, data.DateLabel))

	b.WriteString("\n" + sectionStyle.Render("Daily Progress") + "\n")
	b.WriteString(fmt.Sprintf("%s +20rr   %s Work out\n", checkbox(data.RR), checkbox(data.Workout)))
	if data.RR || data.Workout {
		b.WriteString(fmt.Sprintf("%s %d%%\n", data.ProgressView, data.ProgressPct))
	}

	b.WriteString("\n" + sectionStyle.Render(fmt.Sprintf("Tasks (%d/%d)", data.DoneTasks, len(data.Tasks))) + "\n")
	if len(data.Tasks) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, task := range data.Tasks {
		line := fmt.Sprintf("%s %s", checkbox(task.Completed), task.Title)
		if task.Time != "" {
			line += " @" + task.Time
		}
		if task.Content != "" {
			line += ": " + firstLine(task.Content)
		}
		if task.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(cursor(task.Selected) + " " + line + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Notes") + "\n")
	if len(data.Notes) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, note := range data.Notes {
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor(note.Selected), note.Title, firstLine(note.Content)))
	}
	return strings.TrimSpace(b.String())
}

func RenderComposePanel(data ComposePanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("new %s: %s\n", data.Kind, data.Title))
	b.WriteString(data.ContentView + "\n")
	if data.TimeView != "" {
		b.WriteString(data.TimeView + "\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	if data.TimeView != "" {
		b.WriteString("keys: [ctrl+s] save [tab] field [esc] cancel")
	} else {
		b.WriteString("keys: [ctrl+s] save [esc] cancel")
	}
	return strings.TrimSpace(b.String())
}

func RenderDetailPanel(data DetailPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s\n", data.Kind, data.Title))
	if data.Status != "" {
		b.WriteString("status: " + data.Status + "\n")
	}
	if data.ScheduledAt != "" {
		b.WriteString("scheduled: " + data.ScheduledAt + "\n")
	}
	if data.CreatedAt != "" {
		b.WriteString("created: " + data.CreatedAt + "\n")
	}
	b.WriteString("\n" + data.ContentView + "\n\n")
	if data.Status != "" {
		b.WriteString("keys: [space] toggle [x] delete [esc] back")
	} else {
		b.WriteString("keys: [x] delete [esc] back")
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(data.MonthLabel + "\n")
	for _, name := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(fmt.Sprintf(" %-5s", name))
	}
	b.WriteString("\n")
	for i, cell := range data.Cells {
		b.WriteString(calendarCell(cell))
		if i%7 == 6 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n\nr = +20rr   w = Worked Out   * = notes or tasks\n")
	b.WriteString("keys: [h/l] month [esc] back")
	return b.String()
}

func calendarCell(cell *CalendarDayData) string {
	if cell == nil {
		return "     "
	}
	marks := []byte{' ', ' ', ' '}
	if cell.RR {
		marks[0] = 'r'
	}
	if cell.Workout {
		marks[1] = 'w'
	}
	if cell.HasEntries {
		marks[2] = '*'
	}
	out := fmt.Sprintf("%2d%s", cell.Day, marks)
	if cell.IsToday {
		return todayStyle.Render(out)
	}
	return out
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
