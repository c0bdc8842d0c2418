package noteusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/app"
	"notekeep/internal/notes/domain/entities"
)

func TestListNotes(t *testing.T) {
	ctx := context.Background()

	ownerNotes := []*entities.Note{
		{ID: 1, Title: "shopping", Content: "milk", OwnerID: 1, CreatedAt: time.Now()},
		{ID: 2, Title: "ideas", Content: "write more tests", OwnerID: 1, CreatedAt: time.Now()},
	}

	t.Run("Success case - no filter returns all owner notes", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("ListByOwnerID", mock.Anything, int64(1)).Return(ownerNotes, nil).Once()

		notes, err := useCase.ListNotes(ctx, 1, "")

		require.NoError(t, err)
		assert.Equal(t, ownerNotes, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success case - no filter and no notes returns empty list", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("ListByOwnerID", mock.Anything, int64(2)).Return([]*entities.Note{}, nil).Once()

		notes, err := useCase.ListNotes(ctx, 2, "")

		require.NoError(t, err)
		assert.Empty(t, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success case - title filter returns single-element list", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("GetByTitle", mock.Anything, int64(1), "shopping").Return(ownerNotes[0], nil).Once()

		notes, err := useCase.ListNotes(ctx, 1, "shopping")

		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, ownerNotes[0], notes[0])
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error case - title filter without match", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("GetByTitle", mock.Anything, int64(1), "missing").Return(nil, nil).Once()

		notes, err := useCase.ListNotes(ctx, 1, "missing")

		require.Error(t, err)
		assert.ErrorIs(t, err, app.ErrNotFound)
		assert.Nil(t, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error case - repository error", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		useCase := app.NewNoteUseCase(mockRepo, nil)

		mockRepo.On("ListByOwnerID", mock.Anything, int64(1)).
			Return(nil, errors.New("database connection error")).Once()

		notes, err := useCase.ListNotes(ctx, 1, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list notes")
		assert.Nil(t, notes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Cache hit skips the repository", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockNotesCache)
		useCase := app.NewNoteUseCase(mockRepo, mockCache)

		mockCache.On("GetNotes", mock.Anything, int64(1)).Return(ownerNotes, true, nil).Once()

		notes, err := useCase.ListNotes(ctx, 1, "")

		require.NoError(t, err)
		assert.Equal(t, ownerNotes, notes)
		mockRepo.AssertNotCalled(t, "ListByOwnerID", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("Cache miss falls through and populates the cache", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockNotesCache)
		useCase := app.NewNoteUseCase(mockRepo, mockCache)

		mockCache.On("GetNotes", mock.Anything, int64(1)).Return(nil, false, nil).Once()
		mockRepo.On("ListByOwnerID", mock.Anything, int64(1)).Return(ownerNotes, nil).Once()
		mockCache.On("SetNotes", mock.Anything, int64(1), ownerNotes).Return(nil).Once()

		notes, err := useCase.ListNotes(ctx, 1, "")

		require.NoError(t, err)
		assert.Equal(t, ownerNotes, notes)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("Cache read error degrades to the repository", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockCache := new(mockNotesCache)
		useCase := app.NewNoteUseCase(mockRepo, mockCache)

		mockCache.On("GetNotes", mock.Anything, int64(1)).
			Return(nil, false, errors.New("redis connection refused")).Once()
		mockRepo.On("ListByOwnerID", mock.Anything, int64(1)).Return(ownerNotes, nil).Once()
		mockCache.On("SetNotes", mock.Anything, int64(1), ownerNotes).Return(nil).Once()

		notes, err := useCase.ListNotes(ctx, 1, "")

		require.NoError(t, err)
		assert.Equal(t, ownerNotes, notes)
		mockRepo.AssertExpectations(t)
	})
}
