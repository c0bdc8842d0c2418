package noterepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/adapters/postgres"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

func TestNoteRepository_Create(t *testing.T) {
	ctx := context.Background()

	inputNote := entities.NewNote(1, "shopping", "milk")

	expectedNote := entities.Note{
		ID:        10,
		Title:     inputNote.Title,
		Content:   inputNote.Content,
		OwnerID:   inputNote.OwnerID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешное создание заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`(?s)INSERT INTO notes .+RETURNING id, title, COALESCE\(content, ''\), owner_id, created_at`).
			WithArgs(inputNote.Title, inputNote.Content, inputNote.OwnerID).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "title", "content", "owner_id", "created_at"}).
					AddRow(expectedNote.ID, expectedNote.Title, expectedNote.Content, expectedNote.OwnerID, expectedNote.CreatedAt),
			)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, inputNote)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, expectedNote.ID, created.ID)
		assert.Equal(t, expectedNote.Title, created.Title)
		assert.Equal(t, expectedNote.Content, created.Content)
		assert.Equal(t, expectedNote.OwnerID, created.OwnerID)
		assert.Equal(t, expectedNote.CreatedAt, created.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при создании - нарушение уникальности заголовка", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		duplicateErr := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "notes_owner_id_title_key",
		}
		mock.ExpectQuery(`INSERT INTO notes`).
			WithArgs(inputNote.Title, inputNote.Content, inputNote.OwnerID).
			WillReturnError(duplicateErr)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, inputNote)

		assert.Nil(t, created)
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrDuplicateTitle)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при создании - общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery(`INSERT INTO notes`).
			WithArgs(inputNote.Title, inputNote.Content, inputNote.OwnerID).
			WillReturnError(dbError)

		repo := postgres.NewNoteRepository(mock)
		created, err := repo.Create(ctx, inputNote)

		assert.Nil(t, created)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create note")
		assert.NotErrorIs(t, err, repositories.ErrDuplicateTitle)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
