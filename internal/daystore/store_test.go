package daystore

import (
	"testing"
	"time"

	"github.com/sandeepkv93/moss/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ref := time.Date(2026, 2, 9, 15, 30, 0, 0, time.UTC)
	return New(ref, WithLocation(time.UTC))
}

func TestNewStoreDefaults(t *testing.T) {
	s := newTestStore(t)
	if s.CurrentPage() != PageToday {
		t.Fatalf("expected Today, got %q", s.CurrentPage())
	}
	if s.CurrentKey() != "2026-02-09" {
		t.Fatalf("unexpected current key: %q", s.CurrentKey())
	}
	if s.Revision() != 0 {
		t.Fatalf("expected revision 0, got %d", s.Revision())
	}
	if !s.Current().IsEmpty() {
		t.Fatalf("expected empty current bundle: %#v", s.Current())
	}
}

func TestPageKeys(t *testing.T) {
	s := newTestStore(t)
	want := map[Page]string{
		PageYesterday: "2026-02-08",
		PageToday:     "2026-02-09",
		PageTomorrow:  "2026-02-10",
	}
	for _, p := range Pages {
		s.SwitchToPage(p)
		if s.CurrentKey() != want[p] {
			t.Fatalf("page %s key = %q, want %q", p, s.CurrentKey(), want[p])
		}
	}
}

func TestCurrentDateLabel(t *testing.T) {
	s := newTestStore(t)
	if got := s.CurrentDateLabel(); got != "Feb 9, 2026" {
		t.Fatalf("unexpected label: %q", got)
	}
	s.SwitchToPage(PageTomorrow)
	if got := s.CurrentDateLabel(); got != "Feb 10, 2026" {
		t.Fatalf("unexpected tomorrow label: %q", got)
	}
}

func TestAddNoteInsertsAtFront(t *testing.T) {
	s := newTestStore(t)
	first := s.AddNote("one", "first body")
	second := s.AddNote("two", "second body")

	notes := s.Notes()
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != second.ID || notes[1].ID != first.ID {
		t.Fatalf("expected newest first, got %#v", notes)
	}
	if notes[0].Title != "two" || notes[0].Content != "second body" {
		t.Fatalf("unexpected front note: %#v", notes[0])
	}
	if first.ID == second.ID {
		t.Fatal("expected distinct ids")
	}
}

func TestAddNoteAcceptsEmptyStrings(t *testing.T) {
	s := newTestStore(t)
	n := s.AddNote("", "")
	if len(s.Notes()) != 1 || s.Notes()[0].ID != n.ID {
		t.Fatalf("expected empty note stored: %#v", s.Notes())
	}
}

func TestAddTaskScheduledAndOpen(t *testing.T) {
	s := newTestStore(t)
	at := model.ClockTime{Hour: 14}
	task := s.AddTask("X", "Y", &at)

	got := s.Tasks()[0]
	if got.ID != task.ID {
		t.Fatalf("unexpected front task: %#v", got)
	}
	if got.Completed {
		t.Fatal("expected new task open")
	}
	if got.ScheduledTime == nil || *got.ScheduledTime != (model.ClockTime{Hour: 14, Minute: 0}) {
		t.Fatalf("expected scheduled 14:00, got %v", got.ScheduledTime)
	}
}

func TestToggleTaskNegates(t *testing.T) {
	s := newTestStore(t)
	task := s.AddTask("T", "C", nil)
	s.ToggleTask(task)
	if !s.Tasks()[0].Completed {
		t.Fatal("expected task completed after toggle")
	}
	s.ToggleTask(task)
	if s.Tasks()[0].Completed {
		t.Fatal("expected task open after second toggle")
	}
}

func TestToggleUnknownTaskIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("T", "C", nil)
	before := s.Current()
	rev := s.Revision()

	s.ToggleTask(model.Task{ID: "missing"})

	after := s.Current()
	if after.Tasks[0].Completed != before.Tasks[0].Completed {
		t.Fatal("expected bundle unchanged")
	}
	if s.Revision() != rev {
		t.Fatalf("expected no revision bump, got %d -> %d", rev, s.Revision())
	}
}

func TestToggleIsPageScoped(t *testing.T) {
	s := newTestStore(t)
	task := s.AddTask("today task", "", nil)

	s.SwitchToPage(PageTomorrow)
	s.ToggleTask(task)
	s.DeleteTask(task)

	s.SwitchToPage(PageToday)
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Completed {
		t.Fatalf("expected today's task untouched from another page: %#v", tasks)
	}
	if b := s.DayBundle(s.PageDate(PageTomorrow)); !b.IsEmpty() {
		t.Fatalf("expected tomorrow untouched by no-op calls: %#v", b)
	}
}

func TestDeleteNoteAndTask(t *testing.T) {
	s := newTestStore(t)
	n1 := s.AddNote("a", "")
	n2 := s.AddNote("b", "")
	t1 := s.AddTask("x", "", nil)

	s.DeleteNote(n1)
	if notes := s.Notes(); len(notes) != 1 || notes[0].ID != n2.ID {
		t.Fatalf("unexpected notes after delete: %#v", notes)
	}
	rev := s.Revision()
	s.DeleteNote(n1)
	if len(s.Notes()) != 1 {
		t.Fatalf("expected second delete to be a no-op, got %d notes", len(s.Notes()))
	}
	if s.Revision() != rev {
		t.Fatalf("repeated note delete bumped revision: %d -> %d", rev, s.Revision())
	}

	s.DeleteTask(model.Task{ID: "missing"})
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected unknown delete to be a no-op, got %d tasks", len(s.Tasks()))
	}
	if s.Revision() != rev {
		t.Fatalf("unknown task delete bumped revision: %d -> %d", rev, s.Revision())
	}
	s.DeleteTask(t1)
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected task deleted, got %#v", s.Tasks())
	}
}

func TestDeleteNoteWithTaskIDLeavesTasks(t *testing.T) {
	s := newTestStore(t)
	task := s.AddTask("x", "", nil)
	s.DeleteNote(model.Note{ID: task.ID})
	if len(s.Tasks()) != 1 {
		t.Fatal("expected note delete to ignore tasks")
	}
}

func TestSwitchToSamePageIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.AddNote("keep", "")
	before := s.Current()
	rev := s.Revision()

	if s.SwitchToPage(PageToday) {
		t.Fatal("expected no change when switching to current page")
	}
	if s.CurrentPage() != PageToday {
		t.Fatalf("unexpected page: %q", s.CurrentPage())
	}
	if s.Revision() != rev {
		t.Fatalf("expected revision unchanged, got %d -> %d", rev, s.Revision())
	}
	if len(s.Current().Notes) != len(before.Notes) {
		t.Fatal("expected bundle unchanged")
	}
	if s.SwitchToPage(Page("Someday")) {
		t.Fatal("expected unknown page rejected")
	}
}

func TestYesterdayInsertionIsolatedFromToday(t *testing.T) {
	s := newTestStore(t)
	s.AddNote("today", "")

	s.SwitchToPage(PageYesterday)
	s.AddNote("A", "B")

	s.SwitchToPage(PageToday)
	notes := s.Notes()
	if len(notes) != 1 || notes[0].Title != "today" {
		t.Fatalf("today affected by yesterday insert: %#v", notes)
	}

	s.SwitchToPage(PageYesterday)
	notes = s.Notes()
	if len(notes) != 1 || notes[0].Title != "A" || notes[0].Content != "B" {
		t.Fatalf("expected A at index 0 on yesterday: %#v", notes)
	}
}

func TestHabitFlagsArePerDay(t *testing.T) {
	s := newTestStore(t)
	s.SetRR(true)

	s.SwitchToPage(PageTomorrow)
	if s.RR() {
		t.Fatal("expected tomorrow's flag unset")
	}
	s.SetWorkout(true)

	s.SwitchToPage(PageToday)
	if !s.RR() {
		t.Fatal("expected today's +20rr flag to persist")
	}
	if s.Workout() {
		t.Fatal("expected today's workout flag unset")
	}

	tomorrow := s.DayBundle(s.PageDate(PageTomorrow))
	if !tomorrow.Workout || tomorrow.RR {
		t.Fatalf("unexpected tomorrow flags: %#v", tomorrow)
	}
}

func TestHabitTogglesAndProgress(t *testing.T) {
	s := newTestStore(t)
	if s.Current().Progress() != 0 {
		t.Fatal("expected 0 progress")
	}
	s.ToggleRR()
	if s.Current().Progress() != 50 {
		t.Fatalf("expected 50, got %d", s.Current().Progress())
	}
	s.ToggleWorkout()
	if s.Current().Progress() != 100 {
		t.Fatalf("expected 100, got %d", s.Current().Progress())
	}
	rev := s.Revision()
	s.SetWorkout(true)
	if s.Revision() != rev {
		t.Fatal("expected setting an unchanged flag to be silent")
	}
	s.ToggleWorkout()
	if s.Workout() {
		t.Fatal("expected workout cleared")
	}
}

func TestDayBundlePeekDoesNotInsert(t *testing.T) {
	s := newTestStore(t)
	far := time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC)
	if b := s.DayBundle(far); !b.IsEmpty() {
		t.Fatalf("expected empty bundle: %#v", b)
	}
	if len(s.days) != 0 {
		t.Fatalf("expected no stored bundles after peek, got %d", len(s.days))
	}
	_ = s.Current()
	_ = s.RR()
	if len(s.days) != 0 {
		t.Fatalf("expected reads not to insert, got %d", len(s.days))
	}
}

func TestDayBundleReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	s.AddTask("x", "", nil)
	b := s.DayBundle(s.ReferenceDate().Add(20 * time.Hour))
	b.Tasks[0].Completed = true
	b.Tasks[0].Title = "mutated"
	if s.Tasks()[0].Completed || s.Tasks()[0].Title != "x" {
		t.Fatalf("caller mutation leaked into store: %#v", s.Tasks()[0])
	}
}

func TestFindTaskAndNote(t *testing.T) {
	s := newTestStore(t)
	task := s.AddTask("x", "", nil)
	note := s.AddNote("n", "")
	if got, ok := s.FindTask(task.ID); !ok || got.Title != "x" {
		t.Fatalf("find task failed: %#v %v", got, ok)
	}
	if got, ok := s.FindNote(note.ID); !ok || got.Title != "n" {
		t.Fatalf("find note failed: %#v %v", got, ok)
	}
	s.SwitchToPage(PageYesterday)
	if _, ok := s.FindTask(task.ID); ok {
		t.Fatal("expected lookup scoped to current page")
	}
}

func TestStoreLocationDrivesDayBoundary(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	ref := time.Date(2026, 2, 9, 20, 0, 0, 0, time.UTC) // 2026-02-10 05:00 JST
	s := New(ref, WithLocation(tokyo))
	if s.CurrentKey() != "2026-02-10" {
		t.Fatalf("expected key in store location, got %q", s.CurrentKey())
	}
	s.AddNote("late", "")
	b := s.DayBundle(time.Date(2026, 2, 10, 1, 0, 0, 0, tokyo))
	if len(b.Notes) != 1 {
		t.Fatalf("expected same-day peek to see note: %#v", b)
	}
}

func TestCompletedTasksCount(t *testing.T) {
	s := newTestStore(t)
	first := s.AddTask("Task", "a", nil)
	s.AddTask("Task", "b", nil)
	if n := s.Current().CompletedTasks(); n != 0 {
		t.Fatalf("expected 0 completed, got %d", n)
	}
	s.ToggleTask(first)
	if n := s.Current().CompletedTasks(); n != 1 {
		t.Fatalf("expected 1 completed, got %d", n)
	}
}
