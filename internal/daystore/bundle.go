package daystore

import "github.com/sandeepkv93/moss/internal/model"

// Bundle is everything recorded for one calendar day. Notes and Tasks are
// newest first.
type Bundle struct {
	Notes   []model.Note
	Tasks   []model.Task
	RR      bool
	Workout bool
}

func (b Bundle) IsEmpty() bool {
	return len(b.Notes) == 0 && len(b.Tasks) == 0 && !b.RR && !b.Workout
}

// Progress is the share of the two habit flags that are set, in percent.
func (b Bundle) Progress() int {
	done := 0
	if b.RR {
		done++
	}
	if b.Workout {
		done++
	}
	return done * 100 / 2
}

// CompletedTasks counts tasks marked done.
func (b Bundle) CompletedTasks() int {
	n := 0
	for _, t := range b.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func (b Bundle) clone() Bundle {
	out := Bundle{RR: b.RR, Workout: b.Workout}
	if len(b.Notes) > 0 {
		out.Notes = make([]model.Note, len(b.Notes))
		copy(out.Notes, b.Notes)
	}
	if len(b.Tasks) > 0 {
		out.Tasks = make([]model.Task, len(b.Tasks))
		for i, t := range b.Tasks {
			out.Tasks[i] = t.Clone()
		}
	}
	return out
}

func (b *Bundle) taskIndex(id string) int {
	for i := range b.Tasks {
		if b.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Bundle) noteIndex(id string) int {
	for i := range b.Notes {
		if b.Notes[i].ID == id {
			return i
		}
	}
	return -1
}
