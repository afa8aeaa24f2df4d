package views

import (
	"strings"
	"testing"
)

func TestRenderDayPanelSections(t *testing.T) {
	out := RenderDayPanel(DayPanelData{
		Page:      "Today",
		DateLabel: "Feb 9, 2026",
		DoneTasks: 1,
		Tasks: []DayTaskData{
			{Title: "Task", Content: "review reports", Time: "14:00", Selected: true},
			{Title: "Task", Content: "buy milk", Completed: true},
		},
		Notes: []DayNoteData{{Title: "Quick Note", Content: "line one\nline two"}},
	})

	for _, want := range []string{
		"Today - Feb 9, 2026",
		"Tasks (1/2)",
		"> [ ] Task @14:00: review reports",
		"[x] Task: buy milk",
		"Quick Note: line one ...",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in day panel: %q", want, out)
		}
	}
	if strings.Contains(out, "%") {
		t.Fatalf("progress should be hidden without habits: %q", out)
	}
}

func TestRenderDayPanelEmpty(t *testing.T) {
	out := RenderDayPanel(DayPanelData{Page: "Tomorrow", DateLabel: "Feb 10, 2026"})
	if strings.Count(out, "(none)") != 2 {
		t.Fatalf("expected empty markers for tasks and notes: %q", out)
	}
}

func TestRenderCalendarPanelLayout(t *testing.T) {
	// A month whose 1st falls on a Tuesday: two padding cells.
	cells := []*CalendarDayData{nil, nil}
	for d := 1; d <= 5; d++ {
		cells = append(cells, &CalendarDayData{Day: d})
	}
	cells[2].RR = true
	cells[3].Workout = true
	cells[3].HasEntries = true

	out := RenderCalendarPanel(CalendarPanelData{MonthLabel: "September 2026", Cells: cells})
	lines := strings.Split(out, "\n")
	if lines[0] != "September 2026" {
		t.Fatalf("unexpected month label line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " Su") {
		t.Fatalf("expected Sunday-first header: %q", lines[1])
	}
	week := lines[2]
	if !strings.HasPrefix(week, strings.Repeat(" ", 12)+" 1r") {
		t.Fatalf("expected two padded cells before day 1: %q", week)
	}
	if !strings.Contains(week, " 2 w*") {
		t.Fatalf("expected workout and entries markers on day 2: %q", week)
	}
	if !strings.Contains(out, "Worked Out") {
		t.Fatalf("missing legend: %q", out)
	}
}

func TestRenderCommandPaletteAndNotification(t *testing.T) {
	if RenderCommandPalette(false, "note x") != "" {
		t.Fatal("inactive palette should render nothing")
	}
	if got := RenderCommandPalette(true, "note x"); got != "command: /note x" {
		t.Fatalf("unexpected palette: %q", got)
	}
	if RenderNotification("info", "  ") != "" {
		t.Fatal("blank notification should render nothing")
	}
	if got := RenderNotification("error", "boom"); got != "notification: [ERROR] boom" {
		t.Fatalf("unexpected notification: %q", got)
	}
}
