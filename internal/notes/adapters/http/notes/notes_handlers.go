// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notes/adapters/http/middleware"
	"notekeep/internal/notes/app"
	"notekeep/internal/notes/app/dto"
	"notekeep/internal/notes/ports/api"
	"notekeep/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerCreateNote = "handling create note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgUnauthorized       = "unauthorized"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteService api.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteService api.NoteService) *Handler {
	return &Handler{
		noteService: noteService,
	}
}

// ListNotes обрабатывает запрос на получение заметок владельца, опционально
// отфильтрованных по точному совпадению заголовка.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	ownerID, ok := ownerFromLocals(ctx)
	if !ok {
		return sendError(ctx, fiber.StatusUnauthorized, ErrMsgUnauthorized)
	}

	titleFilter := ctx.Query("title", "")

	notes, err := h.noteService.ListNotes(requestCtx, ownerID, titleFilter)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.FromEntities(notes)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	ownerID, ok := ownerFromLocals(ctx)
	if !ok {
		return sendError(ctx, fiber.StatusUnauthorized, ErrMsgUnauthorized)
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.CreateNote(requestCtx, ownerID, req.Title, req.Content)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	ownerID, ok := ownerFromLocals(ctx)
	if !ok {
		return sendError(ctx, fiber.StatusUnauthorized, ErrMsgUnauthorized)
	}

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrMsgInvalidNoteID, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteService.UpdateNote(requestCtx, ownerID, noteID, req.Title, req.Content)
	if err != nil {
		log.Error(requestCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(dto.FromEntity(note)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	ownerID, ok := ownerFromLocals(ctx)
	if !ok {
		return sendError(ctx, fiber.StatusUnauthorized, ErrMsgUnauthorized)
	}

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		log.Debug(requestCtx, ErrMsgInvalidNoteID, zap.Error(err))
		return sendError(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.noteService.DeleteNote(requestCtx, ownerID, noteID); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ownerFromLocals извлекает ID владельца, положенный auth middleware.
func ownerFromLocals(ctx fiber.Ctx) (int64, bool) {
	ownerID, ok := ctx.Locals(middleware.UserIDKey).(int64)
	return ownerID, ok
}

// noteIDFromParams разбирает параметр пути note_id.
func noteIDFromParams(ctx fiber.Ctx) (int64, error) {
	noteID, err := strconv.ParseInt(ctx.Params("note_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing note_id: %w", err)
	}
	return noteID, nil
}

// handleError преобразует ошибки бизнес-логики в HTTP-статусы.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNotFound):
		return sendError(ctx, fiber.StatusNotFound, "note not found")
	case errors.Is(err, app.ErrDuplicateTitle):
		return sendError(ctx, fiber.StatusBadRequest, "duplicate note title")
	case errors.Is(err, app.ErrEmptyTitle):
		return sendError(ctx, fiber.StatusBadRequest, "note title must not be empty")
	default:
		return sendError(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}

func sendError(ctx fiber.Ctx, status int, message string) error {
	if err := ctx.Status(status).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending error response: %w", err)
	}
	return nil
}
