package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/moss/internal/commands"
	"github.com/sandeepkv93/moss/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		if msg.Type == tea.KeySpace {
			m.commandInput.SetValue(m.commandInput.Value() + " ")
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Note: func(a commands.NoteArgs) (commands.Result, error) {
			note := m.Store.AddNote(m.NoteTitle, a.Content)
			m.log.Debugw("note added", "id", note.ID, "day", m.Store.CurrentKey(), "source", "palette")
			m.CurrentView = ViewDay
			m.Cursor = len(m.Store.Tasks())
			return commands.Result{Message: fmt.Sprintf("note added: %s", note.Title)}, nil
		},
		Task: func(a commands.TaskArgs) (commands.Result, error) {
			task := m.Store.AddTask(m.TaskTitle, a.Content, a.At)
			m.log.Debugw("task added", "id", task.ID, "scheduled", task.IsScheduled(), "day", m.Store.CurrentKey(), "source", "palette")
			m.CurrentView = ViewDay
			m.Cursor = 0
			msg := fmt.Sprintf("task added: %s", task.Title)
			if task.ScheduledTime != nil {
				msg += " @" + task.ScheduledTime.String()
			}
			return commands.Result{Message: msg}, nil
		},
		Go: func(a commands.GoArgs) (commands.Result, error) {
			m.switchPage(a.Page)
			return commands.Result{Message: fmt.Sprintf("%s - %s", a.Page, m.Store.CurrentDateLabel())}, nil
		},
		Habit: func(a commands.HabitArgs) (commands.Result, error) {
			switch a.Habit {
			case commands.HabitRR:
				if a.Value == nil {
					m.Store.ToggleRR()
				} else {
					m.Store.SetRR(*a.Value)
				}
				m.log.Debugw("habit set", "habit", "rr", "value", m.Store.RR(), "day", m.Store.CurrentKey())
				return commands.Result{Message: fmt.Sprintf("+20rr %s", onOff(m.Store.RR()))}, nil
			default:
				if a.Value == nil {
					m.Store.ToggleWorkout()
				} else {
					m.Store.SetWorkout(*a.Value)
				}
				m.log.Debugw("habit set", "habit", "workout", "value", m.Store.Workout(), "day", m.Store.CurrentKey())
				return commands.Result{Message: fmt.Sprintf("workout %s", onOff(m.Store.Workout()))}, nil
			}
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			tasks := m.Store.Tasks()
			if a.Index > len(tasks) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task #%d on %s", a.Index, m.Store.CurrentPage())}
			}
			m.toggleTask(tasks[a.Index-1].ID)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Remove: func(a commands.RemoveArgs) (commands.Result, error) {
			var sel selection
			switch a.Kind {
			case "task":
				tasks := m.Store.Tasks()
				if a.Index > len(tasks) {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task #%d on %s", a.Index, m.Store.CurrentPage())}
				}
				sel = selection{Kind: ItemTask, ID: tasks[a.Index-1].ID}
			default:
				notes := m.Store.Notes()
				if a.Index > len(notes) {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no note #%d on %s", a.Index, m.Store.CurrentPage())}
				}
				sel = selection{Kind: ItemNote, ID: notes[a.Index-1].ID}
			}
			m.deleteItem(sel)
			return commands.Result{Message: m.Status.Text}, nil
		},
	})
	m.refreshDetail()
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		m.log.WithError(err).Warnw("command failed", "input", raw)
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}
