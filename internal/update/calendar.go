package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/moss/internal/daystore"
	"github.com/sandeepkv93/moss/internal/views"
)

const monthLabelLayout = "January 2006"

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.shiftCalendarMonth(-1)
	case "l", "right":
		m.shiftCalendarMonth(1)
	case "esc", m.Keys.Calendar:
		m.CurrentView = ViewDay
	}
	return m
}

func (m *Model) shiftCalendarMonth(delta int) {
	m.Calendar.Month = firstOfMonth(m.Calendar.Month).AddDate(0, delta, 0)
	m.Status = StatusBar{Text: "calendar: " + m.Calendar.Month.Format(monthLabelLayout)}
}

// renderCalendarView peeks at each day's bundle; it never creates one.
func (m Model) renderCalendarView() string {
	loc := m.Store.Location()
	todayKey := daystore.DayKey(m.Store.ReferenceDate(), loc)
	grid := daystore.MonthGrid(m.Calendar.Month)

	cells := make([]*views.CalendarDayData, 0, len(grid))
	for _, day := range grid {
		if day == nil {
			cells = append(cells, nil)
			continue
		}
		cell := &views.CalendarDayData{
			Day:     day.Day(),
			IsToday: daystore.DayKey(*day, loc) == todayKey,
		}
		if b := m.Store.DayBundle(*day); !b.IsEmpty() {
			cell.RR = b.RR
			cell.Workout = b.Workout
			cell.HasEntries = len(b.Notes)+len(b.Tasks) > 0
		}
		cells = append(cells, cell)
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		MonthLabel: m.Calendar.Month.Format(monthLabelLayout),
		Cells:      cells,
	})
}
