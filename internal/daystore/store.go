// Package daystore keeps notes, tasks and habit flags per calendar day.
//
// The store addresses one day at a time through its current Page. Every
// mutation targets the bundle of that day; a task or note that lives on
// another day is out of reach until the page is switched to it. Missing
// identifiers are absorbed as no-ops, so no operation returns an error.
package daystore

import (
	"sync"
	"time"

	"github.com/sandeepkv93/moss/internal/model"
)

const dateLabelLayout = "Jan 2, 2006"

type Store struct {
	mu       sync.Mutex
	loc      *time.Location
	ref      time.Time
	page     Page
	days     map[string]*Bundle
	revision uint64
}

// New builds an empty store whose pages are relative to the calendar date
// of ref.
func New(ref time.Time, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Store{
		loc:  o.location,
		ref:  StartOfDay(ref, o.location),
		page: PageToday,
		days: make(map[string]*Bundle),
	}
}

// Location is the time zone day keys are computed in.
func (s *Store) Location() *time.Location {
	return s.loc
}

// ReferenceDate is midnight of the day the store was built for.
func (s *Store) ReferenceDate() time.Time {
	return s.ref
}

// Revision increases by one for every observable change.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *Store) CurrentPage() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// PageDate resolves a page to its calendar date.
func (s *Store) PageDate(p Page) time.Time {
	return s.ref.AddDate(0, 0, p.Offset())
}

func (s *Store) CurrentDate() time.Time {
	return s.PageDate(s.CurrentPage())
}

func (s *Store) CurrentKey() string {
	return DayKey(s.CurrentDate(), s.loc)
}

// CurrentDateLabel formats the current page's date, e.g. "Feb 9, 2026".
func (s *Store) CurrentDateLabel() string {
	return s.CurrentDate().Format(dateLabelLayout)
}

// SwitchToPage makes p the current page. It reports whether anything
// changed; switching to the current page or to an unknown page does nothing.
func (s *Store) SwitchToPage(p Page) bool {
	if !p.IsValid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page == p {
		return false
	}
	s.page = p
	s.revision++
	return true
}

// DayBundle returns a copy of the bundle for the calendar day containing
// date. Days never written to read as an empty bundle and are not stored.
func (s *Store) DayBundle(date time.Time) Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.days[DayKey(date, s.loc)]; ok {
		return b.clone()
	}
	return Bundle{}
}

// Current returns a copy of the current page's bundle.
func (s *Store) Current() Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.days[s.keyLocked()]; ok {
		return b.clone()
	}
	return Bundle{}
}

func (s *Store) Notes() []model.Note {
	return s.Current().Notes
}

func (s *Store) Tasks() []model.Task {
	return s.Current().Tasks
}

// FindTask looks up a task on the current page.
func (s *Store) FindTask(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.days[s.keyLocked()]
	if !ok {
		return model.Task{}, false
	}
	if i := b.taskIndex(id); i >= 0 {
		return b.Tasks[i].Clone(), true
	}
	return model.Task{}, false
}

// FindNote looks up a note on the current page.
func (s *Store) FindNote(id string) (model.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.days[s.keyLocked()]
	if !ok {
		return model.Note{}, false
	}
	if i := b.noteIndex(id); i >= 0 {
		return b.Notes[i], true
	}
	return model.Note{}, false
}

// AddNote puts a new note at the front of the current day's notes.
func (s *Store) AddNote(title, content string) model.Note {
	n := model.NewNote(title, content)
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bundleLocked()
	b.Notes = append([]model.Note{n}, b.Notes...)
	s.revision++
	return n
}

// AddTask puts a new open task at the front of the current day's tasks.
func (s *Store) AddTask(title, content string, scheduled *model.ClockTime) model.Task {
	t := model.NewTask(title, content, scheduled)
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bundleLocked()
	b.Tasks = append([]model.Task{t}, b.Tasks...)
	s.revision++
	return t.Clone()
}

// ToggleTask flips the completion flag of task if it belongs to the current
// page. Tasks on other pages are left alone.
func (s *Store) ToggleTask(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.days[s.keyLocked()]
	if !ok {
		return
	}
	i := b.taskIndex(task.ID)
	if i < 0 {
		return
	}
	b.Tasks[i].Completed = !b.Tasks[i].Completed
	s.revision++
}

func (s *Store) DeleteNote(note model.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.days[s.keyLocked()]
	if !ok {
		return
	}
	i := b.noteIndex(note.ID)
	if i < 0 {
		return
	}
	b.Notes = append(b.Notes[:i:i], b.Notes[i+1:]...)
	s.revision++
}

func (s *Store) DeleteTask(task model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.days[s.keyLocked()]
	if !ok {
		return
	}
	i := b.taskIndex(task.ID)
	if i < 0 {
		return
	}
	b.Tasks = append(b.Tasks[:i:i], b.Tasks[i+1:]...)
	s.revision++
}

// RR reports the "+20rr" habit flag of the current day.
func (s *Store) RR() bool {
	return s.Current().RR
}

func (s *Store) SetRR(v bool) {
	s.setFlag(func(b *Bundle) *bool { return &b.RR }, v)
}

func (s *Store) ToggleRR() {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bundleLocked()
	b.RR = !b.RR
	s.revision++
}

// Workout reports the workout habit flag of the current day.
func (s *Store) Workout() bool {
	return s.Current().Workout
}

func (s *Store) SetWorkout(v bool) {
	s.setFlag(func(b *Bundle) *bool { return &b.Workout }, v)
}

func (s *Store) ToggleWorkout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bundleLocked()
	b.Workout = !b.Workout
	s.revision++
}

func (s *Store) setFlag(field func(*Bundle) *bool, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flag := field(s.bundleLocked())
	if *flag == v {
		return
	}
	*flag = v
	s.revision++
}

func (s *Store) keyLocked() string {
	return DayKey(s.ref.AddDate(0, 0, s.page.Offset()), s.loc)
}

// bundleLocked returns the current day's bundle, inserting an empty one on
// first write.
func (s *Store) bundleLocked() *Bundle {
	key := s.keyLocked()
	b, ok := s.days[key]
	if !ok {
		b = &Bundle{}
		s.days[key] = b
	}
	return b
}
