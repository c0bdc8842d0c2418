package noteusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notekeep/internal/notes/domain/entities"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID, ownerID int64) (*entities.Note, error) {
	args := m.Called(ctx, noteID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByTitle(ctx context.Context, ownerID int64, title string) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByOwnerID(ctx context.Context, ownerID int64) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	args := m.Called(ctx, noteID, ownerID)
	return args.Error(0)
}

type mockNotesCache struct {
	mock.Mock
}

func (m *mockNotesCache) GetNotes(ctx context.Context, ownerID int64) ([]*entities.Note, bool, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*entities.Note), args.Bool(1), args.Error(2)
}

func (m *mockNotesCache) SetNotes(ctx context.Context, ownerID int64, notes []*entities.Note) error {
	args := m.Called(ctx, ownerID, notes)
	return args.Error(0)
}

func (m *mockNotesCache) Invalidate(ctx context.Context, ownerID int64) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *mockNotesCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
