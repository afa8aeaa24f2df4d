package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/moss/internal/daystore"
	"github.com/sandeepkv93/moss/internal/views"
)

type selection struct {
	Kind ItemKind
	ID   string
}

func (m Model) handleDayKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Yesterday:
		m.switchPage(daystore.PageYesterday)
	case m.Keys.Today:
		m.switchPage(daystore.PageToday)
	case m.Keys.Tomorrow:
		m.switchPage(daystore.PageTomorrow)
	case m.Keys.PrevPage:
		m.switchPage(m.Store.CurrentPage().Prev())
	case m.Keys.NextPage:
		m.switchPage(m.Store.CurrentPage().Next())
	case "down", "j":
		if m.Cursor < m.itemCount()-1 {
			m.Cursor++
		}
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case m.Keys.NewNote:
		return m.openCompose(ItemNote)
	case m.Keys.NewTask:
		return m.openCompose(ItemTask)
	case m.Keys.Toggle:
		m.toggleSelectedTask()
	case m.Keys.Delete:
		m.deleteSelected()
	case m.Keys.Detail:
		m.openDetail()
	case m.Keys.RR:
		m.Store.ToggleRR()
		m.log.Debugw("habit toggled", "habit", "rr", "value", m.Store.RR(), "day", m.Store.CurrentKey())
		m.Status = StatusBar{Text: fmt.Sprintf("+20rr %s", onOff(m.Store.RR()))}
	case m.Keys.Workout:
		m.Store.ToggleWorkout()
		m.log.Debugw("habit toggled", "habit", "workout", "value", m.Store.Workout(), "day", m.Store.CurrentKey())
		m.Status = StatusBar{Text: fmt.Sprintf("workout %s", onOff(m.Store.Workout()))}
	case m.Keys.Calendar:
		m.CurrentView = ViewCalendar
		m.Calendar.Month = firstOfMonth(m.Store.CurrentDate())
	}
	return m, nil
}

func (m *Model) switchPage(p daystore.Page) {
	if !p.IsValid() {
		m.Status = StatusBar{Text: fmt.Sprintf("unknown page: %s", p), IsError: true}
		return
	}
	if !m.Store.SwitchToPage(p) {
		return
	}
	m.Cursor = 0
	m.CurrentView = ViewDay
	m.Detail = DetailState{}
	m.log.Debugw("page switched", "page", p.String(), "day", m.Store.CurrentKey())
	m.Status = StatusBar{Text: fmt.Sprintf("%s - %s", p, m.Store.CurrentDateLabel())}
}

func (m Model) itemCount() int {
	b := m.Store.Current()
	return len(b.Tasks) + len(b.Notes)
}

// Tasks come first in the cursor order, then notes.
func (m Model) selected() (selection, bool) {
	b := m.Store.Current()
	i := m.Cursor
	if i < 0 {
		return selection{}, false
	}
	if i < len(b.Tasks) {
		return selection{Kind: ItemTask, ID: b.Tasks[i].ID}, true
	}
	i -= len(b.Tasks)
	if i < len(b.Notes) {
		return selection{Kind: ItemNote, ID: b.Notes[i].ID}, true
	}
	return selection{}, false
}

func (m *Model) clampCursor() {
	n := m.itemCount()
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) toggleSelectedTask() {
	sel, ok := m.selected()
	if !ok || sel.Kind != ItemTask {
		m.Status = StatusBar{Text: "select a task to toggle"}
		return
	}
	m.toggleTask(sel.ID)
}

func (m *Model) toggleTask(id string) {
	task, ok := m.Store.FindTask(id)
	if !ok {
		return
	}
	m.Store.ToggleTask(task)
	m.log.Debugw("task toggled", "id", id, "completed", !task.Completed, "day", m.Store.CurrentKey())
	if task.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("task pending: %s", task.Title)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("task completed: %s", task.Title)}
	}
}

func (m *Model) deleteSelected() {
	sel, ok := m.selected()
	if !ok {
		m.Status = StatusBar{Text: "nothing selected"}
		return
	}
	m.deleteItem(sel)
}

func (m *Model) deleteItem(sel selection) {
	switch sel.Kind {
	case ItemTask:
		task, ok := m.Store.FindTask(sel.ID)
		if !ok {
			return
		}
		m.Store.DeleteTask(task)
		m.Status = StatusBar{Text: fmt.Sprintf("task deleted: %s", task.Title)}
	case ItemNote:
		note, ok := m.Store.FindNote(sel.ID)
		if !ok {
			return
		}
		m.Store.DeleteNote(note)
		m.Status = StatusBar{Text: fmt.Sprintf("note deleted: %s", note.Title)}
	}
	m.log.Debugw("item deleted", "kind", string(sel.Kind), "id", sel.ID, "day", m.Store.CurrentKey())
	m.clampCursor()
}

func (m Model) renderDayView() string {
	b := m.Store.Current()
	data := views.DayPanelData{
		Page:         m.Store.CurrentPage().String(),
		DateLabel:    m.Store.CurrentDateLabel(),
		RR:           b.RR,
		Workout:      b.Workout,
		ProgressPct:  b.Progress(),
		DoneTasks:    b.CompletedTasks(),
		ProgressView: m.habitProgress.ViewAs(float64(b.Progress()) / 100),
	}
	for i, task := range b.Tasks {
		item := views.DayTaskData{
			Title:     task.Title,
			Content:   task.Content,
			Completed: task.Completed,
			Selected:  m.CurrentView != ViewCalendar && m.Cursor == i,
		}
		if task.ScheduledTime != nil {
			item.Time = task.ScheduledTime.String()
		}
		data.Tasks = append(data.Tasks, item)
	}
	for i, note := range b.Notes {
		data.Notes = append(data.Notes, views.DayNoteData{
			Title:    note.Title,
			Content:  note.Content,
			Selected: m.CurrentView != ViewCalendar && m.Cursor == len(b.Tasks)+i,
		})
	}
	return views.RenderDayPanel(data)
}
