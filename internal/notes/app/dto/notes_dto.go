// Package dto содержит формы запросов и ответов HTTP API заметок.
package dto

import (
	"time"

	"notekeep/internal/notes/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest содержит данные для обновления заметки.
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteResponse содержит информацию о заметке для ответа.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity преобразует доменную заметку в форму ответа.
func FromEntity(note *entities.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		OwnerID:   note.OwnerID,
		CreatedAt: note.CreatedAt,
	}
}

// FromEntities преобразует список доменных заметок в форму ответа.
func FromEntities(notes []*entities.Note) []*NoteResponse {
	responses := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, FromEntity(note))
	}
	return responses
}
