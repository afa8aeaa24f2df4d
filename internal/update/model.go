package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/moss/internal/config"
	"github.com/sandeepkv93/moss/internal/daystore"
	"github.com/sandeepkv93/moss/internal/logging"
	"github.com/sandeepkv93/moss/internal/views"
)

type View string

const (
	ViewDay      View = "Day"
	ViewCalendar View = "Calendar"
	ViewCompose  View = "Compose"
	ViewDetail   View = "Detail"
)

type ItemKind string

const (
	ItemTask ItemKind = "task"
	ItemNote ItemKind = "note"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type composeField int

const (
	fieldContent composeField = iota
	fieldTime
)

type ComposeState struct {
	Kind  ItemKind
	Field composeField
	Err   string
}

type DetailState struct {
	Kind ItemKind
	ID   string
}

type CalendarState struct {
	// Month is the first day of the displayed month.
	Month time.Time
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	Store         *daystore.Store
	CurrentView   View
	Cursor        int
	Compose       ComposeState
	Detail        DetailState
	Calendar      CalendarState
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          config.Keymap
	NoteTitle     string
	TaskTitle     string
	Quitting      bool
	LastError     error
	log           *logging.Logger
	// Bubble components used for rich TUI controls
	contentArea   textarea.Model
	timeInput     textinput.Model
	commandInput  textinput.Model
	habitProgress progress.Model
	helpModel     help.Model
	detailView    viewport.Model
}

type SwitchPageMsg struct {
	Page daystore.Page
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel builds the UI over store. A nil store starts an empty one for
// the current day; a nil logger discards output.
func NewModel(store *daystore.Store, cfg config.Config, logger *logging.Logger) Model {
	if store == nil {
		store = daystore.New(time.Now())
	}
	if logger == nil {
		logger = logging.Nop()
	}
	keys := cfg.Keys
	if keys == (config.Keymap{}) {
		keys = config.DefaultKeymap()
	}
	m := Model{
		Store:       store,
		CurrentView: ViewDay,
		Keys:        keys,
		NoteTitle:   cfg.NoteTitle,
		TaskTitle:   cfg.TaskTitle,
		Calendar:    CalendarState{Month: firstOfMonth(store.CurrentDate())},
		log:         logger,
	}
	if m.NoteTitle == "" {
		m.NoteTitle = config.DefaultNoteTitle
	}
	if m.TaskTitle == "" {
		m.TaskTitle = config.DefaultTaskTitle
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.contentArea = textarea.New()
	m.contentArea.SetWidth(48)
	m.contentArea.SetHeight(6)
	m.contentArea.CharLimit = 4000
	m.contentArea.ShowLineNumbers = false
	m.contentArea.Placeholder = "Content (markdown)"

	m.timeInput = textinput.New()
	m.timeInput.Prompt = "time> "
	m.timeInput.Placeholder = "HH:MM (optional)"
	m.timeInput.CharLimit = 5
	m.timeInput.Width = 8

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.habitProgress = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	m.habitProgress.Width = 30

	m.helpModel = help.New()
	m.detailView = viewport.New(views.MarkdownWidth, 12)
}

func (m *Model) syncBubbleData() {
	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
	if m.CurrentView == ViewDetail {
		m.detailView.SetContent(m.detailContent())
	}
}
