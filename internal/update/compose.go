package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/moss/internal/views"
)

func (m Model) openCompose(kind ItemKind) (Model, tea.Cmd) {
	m.CurrentView = ViewCompose
	m.Compose = ComposeState{Kind: kind, Field: fieldContent}
	m.contentArea.Reset()
	m.timeInput.SetValue("")
	m.timeInput.Blur()
	cmd := m.contentArea.Focus()
	m.Status = StatusBar{Text: fmt.Sprintf("new %s", kind)}
	return m, cmd
}

func (m Model) closeCompose() Model {
	m.CurrentView = ViewDay
	m.Compose = ComposeState{}
	m.contentArea.Reset()
	m.contentArea.Blur()
	m.timeInput.SetValue("")
	m.timeInput.Blur()
	return m
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closeCompose()
		m.Status = StatusBar{Text: "discarded"}
		return m, nil
	case "ctrl+s":
		return m.saveCompose(), nil
	case "tab", "shift+tab":
		if m.Compose.Kind != ItemTask {
			return m, nil
		}
		if m.Compose.Field == fieldContent {
			m.Compose.Field = fieldTime
			m.contentArea.Blur()
			cmd := m.timeInput.Focus()
			return m, cmd
		}
		m.Compose.Field = fieldContent
		m.timeInput.Blur()
		cmd := m.contentArea.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	if m.Compose.Field == fieldTime {
		if msg.Type == tea.KeyRunes {
			m.timeInput.SetValue(m.timeInput.Value() + string(msg.Runes))
			return m, nil
		}
		m.timeInput, cmd = m.timeInput.Update(msg)
		return m, cmd
	}
	switch msg.Type {
	case tea.KeyRunes:
		m.contentArea.InsertString(string(msg.Runes))
	case tea.KeySpace:
		m.contentArea.InsertString(" ")
	default:
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

// saveCompose stores the draft under the configured default title. Blank
// content keeps the form open.
func (m Model) saveCompose() Model {
	content := strings.TrimSpace(m.contentArea.Value())
	if content == "" {
		m.Compose.Err = "content is required"
		return m
	}

	switch m.Compose.Kind {
	case ItemNote:
		note := m.Store.AddNote(m.NoteTitle, content)
		m.log.Debugw("note added", "id", note.ID, "day", m.Store.CurrentKey())
		m = m.closeCompose()
		m.Cursor = len(m.Store.Tasks())
		m.Status = StatusBar{Text: fmt.Sprintf("note added: %s", note.Title)}
	case ItemTask:
		at, err := parseOptionalClock(m.timeInput.Value())
		if err != nil {
			m.Compose.Err = "time must be HH:MM"
			return m
		}
		task := m.Store.AddTask(m.TaskTitle, content, at)
		m.log.Debugw("task added", "id", task.ID, "scheduled", task.IsScheduled(), "day", m.Store.CurrentKey())
		m = m.closeCompose()
		m.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("task added: %s", task.Title)}
	}
	return m
}

func (m Model) renderComposeView() string {
	data := views.ComposePanelData{
		Kind:        string(m.Compose.Kind),
		ContentView: m.contentArea.View(),
		ErrorText:   m.Compose.Err,
	}
	switch m.Compose.Kind {
	case ItemTask:
		data.Title = m.TaskTitle
		data.TimeView = m.timeInput.View()
	default:
		data.Title = m.NoteTitle
	}
	return views.RenderComposePanel(data)
}
