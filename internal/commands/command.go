package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/moss/internal/daystore"
	"github.com/sandeepkv93/moss/internal/model"
)

type Type string

const (
	TypeNote   Type = "note"
	TypeTask   Type = "task"
	TypeGo     Type = "go"
	TypeHabit  Type = "habit"
	TypeDone   Type = "done"
	TypeRemove Type = "rm"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type Habit string

const (
	HabitRR      Habit = "rr"
	HabitWorkout Habit = "workout"
)

type NoteArgs struct {
	Content string
}

type TaskArgs struct {
	Content string
	At      *model.ClockTime
}

type GoArgs struct {
	Page daystore.Page
}

// HabitArgs sets a habit flag; a nil Value toggles it.
type HabitArgs struct {
	Habit Habit
	Value *bool
}

// DoneArgs toggles the task at a 1-based position on the current page.
type DoneArgs struct {
	Index int
}

type RemoveArgs struct {
	Kind  string
	Index int
}

type Command struct {
	Type   Type
	Raw    string
	Note   *NoteArgs
	Task   *TaskArgs
	Go     *GoArgs
	Habit  *HabitArgs
	Done   *DoneArgs
	Remove *RemoveArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeNote:
		return parseNote(input, args)
	case TypeTask:
		return parseTask(input, args)
	case TypeGo:
		return parseGo(input, args)
	case TypeHabit:
		return parseHabit(input, args)
	case TypeDone:
		return parseDone(input, args)
	case TypeRemove:
		return parseRemove(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseNote(raw string, args []string) (Command, error) {
	content := strings.TrimSpace(strings.Join(args, " "))
	if content == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "note requires text"}
	}
	return Command{Type: TypeNote, Raw: raw, Note: &NoteArgs{Content: content}}, nil
}

func parseTask(raw string, args []string) (Command, error) {
	var at *model.ClockTime
	if len(args) > 0 && strings.HasPrefix(args[0], "@") {
		parsed, err := model.ParseClockTime(strings.TrimPrefix(args[0], "@"))
		if err != nil {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("task time must be HH:MM, got %s", args[0])}
		}
		at = &parsed
		args = args[1:]
	}
	content := strings.TrimSpace(strings.Join(args, " "))
	if content == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "task requires text"}
	}
	return Command{Type: TypeTask, Raw: raw, Task: &TaskArgs{Content: content, At: at}}, nil
}

func parseGo(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "go requires yesterday, today or tomorrow"}
	}
	page, err := daystore.ParsePage(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown page: %s", args[0])}
	}
	return Command{Type: TypeGo, Raw: raw, Go: &GoArgs{Page: page}}, nil
}

func parseHabit(raw string, args []string) (Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit requires rr or workout, optionally on/off"}
	}
	var habit Habit
	switch strings.ToLower(args[0]) {
	case "rr", "+20rr", "20rr":
		habit = HabitRR
	case "workout", "wo", "gym":
		habit = HabitWorkout
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown habit: %s", args[0])}
	}
	out := HabitArgs{Habit: habit}
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "on", "yes", "true", "1":
			v := true
			out.Value = &v
		case "off", "no", "false", "0":
			v := false
			out.Value = &v
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("habit value must be on or off, got %s", args[1])}
		}
	}
	return Command{Type: TypeHabit, Raw: raw, Habit: &out}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a task number"}
	}
	idx, err := parseIndex(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{Index: idx}}, nil
}

func parseRemove(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rm requires task|note and a number"}
	}
	kind := strings.ToLower(args[0])
	if kind != "task" && kind != "note" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("rm target must be task or note, got %s", args[0])}
	}
	idx, err := parseIndex(args[1])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeRemove, Raw: raw, Remove: &RemoveArgs{Kind: kind, Index: idx}}, nil
}

func parseIndex(raw string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimPrefix(raw, "#"))
	if err != nil || idx < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("expected a positive number, got %s", raw)}
	}
	return idx, nil
}
