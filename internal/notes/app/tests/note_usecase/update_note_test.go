package noteusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()

	createdAt := time.Now().Add(-time.Hour)

	existingNote := func() *entities.Note {
		return &entities.Note{
			ID:        10,
			Title:     "shopping",
			Content:   "milk",
			OwnerID:   1,
			CreatedAt: createdAt,
		}
	}

	t.Run("Success case - title and content updated", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		updatedNote := &entities.Note{
			ID:        10,
			Title:     "shopping",
			Content:   "milk,eggs",
			OwnerID:   1,
			CreatedAt: createdAt,
		}

		mockRepo.On("GetByID", mock.Anything, int64(10), int64(1)).Return(existingNote(), nil).Once()
		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(note *entities.Note) bool {
			return note.ID == 10 && note.Title == "shopping" && note.Content == "milk,eggs"
		})).Return(updatedNote, nil).Once()

		note, err := useCase.UpdateNote(ctx, 1, 10, "shopping", "milk,eggs")

		require.NoError(t, err)
		assert.Equal(t, int64(10), note.ID)
		assert.Equal(t, int64(1), note.OwnerID)
		assert.Equal(t, "milk,eggs", note.Content)
		assert.Equal(t, createdAt, note.CreatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error case - empty title", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		note, err := useCase.UpdateNote(ctx, 1, 10, "", "milk,eggs")

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrEmptyTitle)
		assert.Nil(t, note)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error case - note not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("GetByID", mock.Anything, int64(99), int64(1)).Return(nil, nil).Once()

		note, err := useCase.UpdateNote(ctx, 1, 99, "shopping", "milk,eggs")

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNotFound)
		assert.Nil(t, note)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error case - note owned by another user is not found", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		// Репозиторий ограничивает выборку владельцем, поэтому чужая
		// заметка выглядит как отсутствующая.
		mockRepo.On("GetByID", mock.Anything, int64(10), int64(2)).Return(nil, nil).Once()

		note, err := useCase.UpdateNote(ctx, 2, 10, "shopping", "milk,eggs")

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNotFound)
		assert.Nil(t, note)
	})

	t.Run("Error case - duplicate title", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("GetByID", mock.Anything, int64(10), int64(1)).Return(existingNote(), nil).Once()
		mockRepo.On("Update", mock.Anything, mock.Anything).
			Return(nil, repositories.ErrDuplicateTitle).Once()

		note, err := useCase.UpdateNote(ctx, 1, 10, "ideas", "milk,eggs")

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrDuplicateTitle)
		assert.Nil(t, note)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error case - note deleted between lookup and update", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("GetByID", mock.Anything, int64(10), int64(1)).Return(existingNote(), nil).Once()
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil, nil).Once()

		note, err := useCase.UpdateNote(ctx, 1, 10, "shopping", "milk,eggs")

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNotFound)
		assert.Nil(t, note)
	})

	t.Run("Cache invalidated after update", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockNotesCache)
		useCase := app.NewNoteUseCase(mockRepo, mockCache)

		mockRepo.On("GetByID", mock.Anything, int64(10), int64(1)).Return(existingNote(), nil).Once()
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(existingNote(), nil).Once()
		mockCache.On("Invalidate", mock.Anything, int64(1)).Return(nil).Once()

		_, err := useCase.UpdateNote(ctx, 1, 10, "shopping", "milk,eggs")

		require.NoError(t, err)
		mockCache.AssertExpectations(t)
	})
}
