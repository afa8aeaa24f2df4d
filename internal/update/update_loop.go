package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/moss/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("moss")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(typed)
		next.syncBubbleData()
		return next, cmd
	case SwitchPageMsg:
		m.switchPage(typed.Page)
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
			m.log.WithError(typed.Err).Errorw("app error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.CurrentView == ViewCompose {
		return m.handleComposeKey(msg)
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown", IsError: false}
		} else {
			m.Status = StatusBar{Text: "help hidden", IsError: false}
		}
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewCalendar:
		return m.handleCalendarKey(msg), nil
	case ViewDetail:
		return m.handleDetailKey(msg), nil
	default:
		return m.handleDayKey(msg)
	}
}

func (m Model) View() string {
	leftPane := m.renderDayView()
	rightPane := ""
	switch m.CurrentView {
	case ViewCompose:
		rightPane = m.renderComposeView()
	case ViewDetail:
		rightPane = m.renderDetailView()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
	}
	rightPane = joinNonEmpty(rightPane, m.renderCommandPalette(), m.renderHelpIfVisible())

	return views.RenderApp(views.Frame{
		Page:      m.Store.CurrentPage().String(),
		DateLabel: m.Store.CurrentDateLabel(),
		Main:      leftPane,
		Side:      rightPane,
		Status:    m.Status.Text,
		StatusErr: m.Status.IsError,
		Notice:    m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s/%s/%s page | %s note | %s task | %s calendar | / cmd | %s help | %s quit",
			m.Keys.Yesterday, m.Keys.Today, m.Keys.Tomorrow, m.Keys.NewNote, m.Keys.NewTask, m.Keys.Calendar, m.Keys.Help, m.Keys.Quit),
	})
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
