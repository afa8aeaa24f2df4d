package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClockTime = errors.New("model: invalid clock time")

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	c := ClockTime{Hour: hour, Minute: minute}
	if err := c.Validate(); err != nil {
		return ClockTime{}, err
	}
	return c, nil
}

// ClockTimeOf returns the time of day of t in t's location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClockTime accepts "H:MM" or "HH:MM" on a 24 hour clock.
func ParseClockTime(raw string) (ClockTime, error) {
	trimmed := strings.TrimSpace(raw)
	hourPart, minutePart, ok := strings.Cut(trimmed, ":")
	if !ok || len(minutePart) != 2 || hourPart == "" || len(hourPart) > 2 || !allDigits(hourPart) || !allDigits(minutePart) {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, raw)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, raw)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, raw)
	}
	return NewClockTime(hour, minute)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (c ClockTime) Validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range", ErrInvalidClockTime, c.Hour)
	}
	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range", ErrInvalidClockTime, c.Minute)
	}
	return nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On places the clock time on the calendar day of day, in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, day.Location())
}

type Task struct {
	ID            string
	Title         string
	Content       string
	CreatedAt     time.Time
	Completed     bool
	ScheduledTime *ClockTime
}

// NewTask builds an open task. scheduled is copied so later changes by the
// caller never leak into the task.
func NewTask(title, content string, scheduled *ClockTime) Task {
	t := Task{
		ID:        NewID(),
		Title:     title,
		Content:   content,
		CreatedAt: now(),
	}
	if scheduled != nil {
		at := *scheduled
		t.ScheduledTime = &at
	}
	return t
}

func (t Task) IsScheduled() bool {
	return t.ScheduledTime != nil
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	out := t
	if t.ScheduledTime != nil {
		at := *t.ScheduledTime
		out.ScheduledTime = &at
	}
	return out
}
