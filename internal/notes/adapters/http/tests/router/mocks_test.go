package router_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notekeep/internal/notes/domain/entities"
)

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) ListNotes(ctx context.Context, ownerID int64, titleFilter string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID, titleFilter)
	if notes, ok := args.Get(0).([]*entities.Note); ok {
		return notes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteService) CreateNote(ctx context.Context, ownerID int64, title, content string) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, title, content)
	if note, ok := args.Get(0).(*entities.Note); ok {
		return note, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, ownerID, noteID int64, title, content string) (*entities.Note, error) {
	args := m.Called(ctx, ownerID, noteID, title, content)
	if note, ok := args.Get(0).(*entities.Note); ok {
		return note, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}
