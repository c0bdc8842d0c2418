// Package entities defines the domain entities for the note service.
package entities

import "time"

// Note представляет собой заметку пользователя.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote creates a new note owned by the given user. ID and CreatedAt
// are assigned by the storage layer.
func NewNote(ownerID int64, title, content string) *Note {
	return &Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	}
}
