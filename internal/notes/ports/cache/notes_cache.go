// Package cache определяет интерфейсы для кэширования.
package cache

import (
	"context"

	"notekeep/internal/notes/domain/entities"
)

// NotesCache определяет интерфейс кэша списка заметок владельца.
type NotesCache interface {
	// GetNotes возвращает закэшированный список заметок владельца.
	// Второе значение false означает промах кэша.
	GetNotes(ctx context.Context, ownerID int64) ([]*entities.Note, bool, error)

	SetNotes(ctx context.Context, ownerID int64, notes []*entities.Note) error

	Invalidate(ctx context.Context, ownerID int64) error

	Close() error
}
