package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/moss/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", keyLabel(kb.Key), kb.Action))
	}
	bindings := m.helpBindings()
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Help, Action: "help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewDay:
		return []KeyBinding{
			{Key: m.Keys.Yesterday, Action: "yesterday"},
			{Key: m.Keys.Today, Action: "today"},
			{Key: m.Keys.Tomorrow, Action: "tomorrow"},
			{Key: m.Keys.PrevPage + "/" + m.Keys.NextPage, Action: "previous/next page"},
			{Key: "j/k", Action: "move selection"},
			{Key: m.Keys.NewNote, Action: "new note"},
			{Key: m.Keys.NewTask, Action: "new task"},
			{Key: m.Keys.Toggle, Action: "toggle task"},
			{Key: m.Keys.Delete, Action: "delete selected"},
			{Key: m.Keys.Detail, Action: "open detail"},
			{Key: m.Keys.RR, Action: "toggle +20rr"},
			{Key: m.Keys.Workout, Action: "toggle workout"},
			{Key: m.Keys.Calendar, Action: "calendar"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next month"},
			{Key: "esc", Action: "back"},
		}
	case ViewDetail:
		return []KeyBinding{
			{Key: m.Keys.Toggle, Action: "toggle task"},
			{Key: m.Keys.Delete, Action: "delete"},
			{Key: "esc", Action: "back"},
		}
	case ViewCompose:
		return []KeyBinding{
			{Key: "ctrl+s", Action: "save"},
			{Key: "tab", Action: "switch field"},
			{Key: "esc", Action: "cancel"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.globalBindings(), m.viewBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(keyLabel(kb.Key), kb.Action)))
	}
	return out
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
