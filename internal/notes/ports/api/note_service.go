// Package api defines application service interfaces exposed to transport adapters.
package api

import (
	"context"

	"notekeep/internal/notes/domain/entities"
)

// NoteService определяет операции над заметками от имени владельца.
// Идентичность вызывающего передается явно в каждую операцию.
type NoteService interface {
	ListNotes(ctx context.Context, ownerID int64, titleFilter string) ([]*entities.Note, error)
	CreateNote(ctx context.Context, ownerID int64, title, content string) (*entities.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID int64, title, content string) (*entities.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}
