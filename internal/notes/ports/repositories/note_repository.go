// Package repositories defines repository interfaces for the note service.
package repositories

import (
	"context"
	"errors"

	"notekeep/internal/notes/domain/entities"
)

// Ошибки репозитория заметок.
var (
	// ErrDuplicateTitle возвращается при нарушении ограничения уникальности (owner_id, title).
	ErrDuplicateTitle = errors.New("duplicate note title for owner")
	// ErrNoteNotFound возвращается мутациями, когда заметка отсутствует
	// или принадлежит другому владельцу.
	ErrNoteNotFound = errors.New("note not found or not owned")
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
// Все выборки и мутации неявно ограничены владельцем: чужая заметка
// неотличима от несуществующей.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID, ownerID int64) (*entities.Note, error)
	GetByTitle(ctx context.Context, ownerID int64, title string) (*entities.Note, error)
	ListByOwnerID(ctx context.Context, ownerID int64) ([]*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Delete(ctx context.Context, noteID, ownerID int64) error
}
