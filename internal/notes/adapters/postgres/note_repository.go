// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
	"notekeep/pkg/logger"
)

// PgxPoolInterface описывает используемое подмножество pgxpool.Pool.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// uniqueViolationCode - SQLSTATE нарушения ограничения уникальности.
const uniqueViolationCode = "23505"

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД. ID и created_at назначает база.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.Int64("ownerID", note.OwnerID))

	// content допускает NULL в схеме; наружу всегда отдается строка.
	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (title, content, owner_id)
         VALUES ($1, $2, $3)
         RETURNING id, title, COALESCE(content, ''), owner_id, created_at`,
		note.Title, note.Content, note.OwnerID,
	).Scan(&created.ID, &created.Title, &created.Content, &created.OwnerID, &created.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate title for owner", zap.String("title", note.Title))
			return nil, fmt.Errorf("failed to create note: %w", repositories.ErrDuplicateTitle)
		}
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", created.ID))
	return &created, nil
}

// GetByID получает заметку по ID и ID владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, ownerID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.Int64("noteID", noteID), zap.Int64("ownerID", ownerID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(content, ''), owner_id, created_at
         FROM notes
         WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	).Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// GetByTitle получает заметку владельца по точному совпадению заголовка.
func (r *NoteRepository) GetByTitle(ctx context.Context, ownerID int64, title string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByTitle"))
	log.Debug(ctx, "getting note by title", zap.Int64("ownerID", ownerID), zap.String("title", title))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, COALESCE(content, ''), owner_id, created_at
         FROM notes
         WHERE owner_id = $1 AND title = $2
         LIMIT 1`,
		ownerID, title,
	).Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("title", title))
			return nil, nil
		}
		log.Error(ctx, "failed to get note by title", zap.Error(err))
		return nil, fmt.Errorf("failed to get note by title: %w", err)
	}

	return &note, nil
}

// ListByOwnerID получает все заметки владельца.
func (r *NoteRepository) ListByOwnerID(ctx context.Context, ownerID int64) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByOwnerID"))
	log.Debug(ctx, "listing notes", zap.Int64("ownerID", ownerID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, title, COALESCE(content, ''), owner_id, created_at
         FROM notes
         WHERE owner_id = $1
         ORDER BY id`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.OwnerID, &note.CreatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update обновляет заголовок и содержимое существующей заметки.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.Int64("noteID", note.ID))

	var updated entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes SET title = $1, content = $2
         WHERE id = $3 AND owner_id = $4
         RETURNING id, title, COALESCE(content, ''), owner_id, created_at`,
		note.Title, note.Content, note.ID, note.OwnerID,
	).Scan(&updated.ID, &updated.Title, &updated.Content, &updated.OwnerID, &updated.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, nil
		}
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate title for owner", zap.String("title", note.Title))
			return nil, fmt.Errorf("failed to update note: %w", repositories.ErrDuplicateTitle)
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &updated, nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.Int64("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return fmt.Errorf("failed to delete note: %w", repositories.ErrNoteNotFound)
	}

	return nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
