// Package app implements application business logic for the note service.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/cache"
	"notekeep/internal/notes/ports/repositories"
	"notekeep/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNotFound       = errors.New("note not found")
	ErrDuplicateTitle = errors.New("duplicate note title")
	ErrEmptyTitle     = errors.New("note title must not be empty")
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
// Кэш является необязательным: nil отключает кэширование списков.
type NoteUseCase struct {
	noteRepo   repositories.NoteRepository
	notesCache cache.NotesCache
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, notesCache cache.NotesCache) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:   noteRepo,
		notesCache: notesCache,
	}
}

// ListNotes возвращает заметки владельца. Пустой titleFilter возвращает все
// заметки; непустой - ровно одну заметку с точно совпадающим заголовком.
func (uc *NoteUseCase) ListNotes(ctx context.Context, ownerID int64, titleFilter string) ([]*entities.Note, error) {
	if titleFilter != "" {
		note, err := uc.noteRepo.GetByTitle(ctx, ownerID, titleFilter)
		if err != nil {
			return nil, fmt.Errorf("failed to get note by title: %w", err)
		}
		if note == nil {
			return nil, ErrNotFound
		}
		return []*entities.Note{note}, nil
	}

	if uc.notesCache != nil {
		notes, ok, err := uc.notesCache.GetNotes(ctx, ownerID)
		if err != nil {
			logger.Log(ctx).Warn(ctx, "notes cache read failed", zap.Error(err))
		} else if ok {
			return notes, nil
		}
	}

	notes, err := uc.noteRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	if uc.notesCache != nil {
		if err := uc.notesCache.SetNotes(ctx, ownerID, notes); err != nil {
			logger.Log(ctx).Warn(ctx, "notes cache write failed", zap.Error(err))
		}
	}

	return notes, nil
}

// CreateNote создает новую заметку для владельца. Создание строгое: совпадение
// заголовка при активном ограничении уникальности является конфликтом, а не
// неявным обновлением.
func (uc *NoteUseCase) CreateNote(ctx context.Context, ownerID int64, title, content string) (*entities.Note, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	note, err := uc.noteRepo.Create(ctx, entities.NewNote(ownerID, title, content))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	uc.invalidateCache(ctx, ownerID)

	return note, nil
}

// UpdateNote обновляет заголовок и содержимое существующей заметки.
// ID, владелец и время создания не изменяются.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, ownerID, noteID int64, title, content string) (*entities.Note, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, ErrNotFound
	}

	note.Title = title
	note.Content = content

	updated, err := uc.noteRepo.Update(ctx, note)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	uc.invalidateCache(ctx, ownerID)

	return updated, nil
}

// DeleteNote удаляет заметку владельца по ID.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	note, err := uc.noteRepo.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return ErrNotFound
	}

	// Параллельное удаление могло убрать строку после проверки выше.
	if err := uc.noteRepo.Delete(ctx, noteID, ownerID); err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	uc.invalidateCache(ctx, ownerID)

	return nil
}

func (uc *NoteUseCase) invalidateCache(ctx context.Context, ownerID int64) {
	if uc.notesCache == nil {
		return
	}
	if err := uc.notesCache.Invalidate(ctx, ownerID); err != nil {
		logger.Log(ctx).Warn(ctx, "notes cache invalidation failed",
			zap.Int64("ownerID", ownerID), zap.Error(err))
	}
}
