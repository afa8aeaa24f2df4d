package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	now   = time.Now
	NewID = uuid.NewString
)

type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}

func NewNote(title, content string) Note {
	return Note{
		ID:        NewID(),
		Title:     title,
		Content:   content,
		CreatedAt: now(),
	}
}
