package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/moss/internal/views"
)

const createdLayout = "Jan 2, 2006 15:04"

func (m *Model) openDetail() {
	sel, ok := m.selected()
	if !ok {
		m.Status = StatusBar{Text: "nothing selected"}
		return
	}
	m.Detail = DetailState{Kind: sel.Kind, ID: sel.ID}
	m.CurrentView = ViewDetail
	m.detailView.SetContent(m.detailContent())
	m.detailView.GotoTop()
}

// refreshDetail drops back to the day view once the shown item no longer
// resolves on the current page, and re-renders its content otherwise.
func (m *Model) refreshDetail() {
	if m.CurrentView != ViewDetail {
		return
	}
	var found bool
	switch m.Detail.Kind {
	case ItemTask:
		_, found = m.Store.FindTask(m.Detail.ID)
	case ItemNote:
		_, found = m.Store.FindNote(m.Detail.ID)
	}
	if !found {
		m.CurrentView = ViewDay
		m.Detail = DetailState{}
		return
	}
	m.detailView.SetContent(m.detailContent())
}

func (m Model) handleDetailKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc", "backspace", m.Keys.Detail:
		m.CurrentView = ViewDay
		m.Detail = DetailState{}
	case m.Keys.Toggle:
		if m.Detail.Kind == ItemTask {
			m.toggleTask(m.Detail.ID)
		}
	case m.Keys.Delete:
		m.deleteItem(selection{Kind: m.Detail.Kind, ID: m.Detail.ID})
		m.CurrentView = ViewDay
		m.Detail = DetailState{}
	default:
		m.detailView, _ = m.detailView.Update(msg)
	}
	return m
}

func (m Model) detailContent() string {
	switch m.Detail.Kind {
	case ItemTask:
		if task, ok := m.Store.FindTask(m.Detail.ID); ok {
			return views.RenderMarkdown(task.Content)
		}
	case ItemNote:
		if note, ok := m.Store.FindNote(m.Detail.ID); ok {
			return views.RenderMarkdown(note.Content)
		}
	}
	return ""
}

func (m Model) renderDetailView() string {
	data := views.DetailPanelData{Kind: string(m.Detail.Kind), ContentView: m.detailView.View()}
	switch m.Detail.Kind {
	case ItemTask:
		task, ok := m.Store.FindTask(m.Detail.ID)
		if !ok {
			return ""
		}
		data.Title = task.Title
		data.Status = "Pending"
		if task.Completed {
			data.Status = "Completed"
		}
		if task.ScheduledTime != nil {
			data.ScheduledAt = task.ScheduledTime.String()
		}
		data.CreatedAt = task.CreatedAt.In(m.Store.Location()).Format(createdLayout)
	case ItemNote:
		note, ok := m.Store.FindNote(m.Detail.ID)
		if !ok {
			return ""
		}
		data.Title = note.Title
		data.CreatedAt = note.CreatedAt.In(m.Store.Location()).Format(createdLayout)
	}
	return views.RenderDetailPanel(data)
}
