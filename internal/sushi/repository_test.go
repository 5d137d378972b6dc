package sushi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sushiCols = []string{"id", "name", "image", "price", "type", "fish_type", "pieces", "created_at"}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(sushiCols).
			AddRow("s-1", "Salmon Nigiri", "salmon.jpg", "12.99", "Nigiri", "Salmon", nil, created).
			AddRow("s-2", "California Roll", "cali.jpg", "8.50", "Roll", nil, 6, created)

		mock.ExpectQuery("SELECT .* FROM sushi WHERE archived_at IS NULL ORDER BY created_at").
			WillReturnRows(rows)

		items, err := repo.GetAll(context.Background())
		assert.NoError(t, err)
		require.Len(t, items, 2)

		fish, ok := items[0].FishType()
		assert.True(t, ok)
		assert.Equal(t, "Salmon", fish)
		assert.Equal(t, "2024-01-01T00:00:00Z", items[0].CreatedAt)

		pieces, ok := items[1].Pieces()
		assert.True(t, ok)
		assert.Equal(t, 6, pieces)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM sushi WHERE archived_at IS NULL").
			WillReturnRows(sqlmock.NewRows(sushiCols))

		items, err := repo.GetAll(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM sushi").WillReturnError(errors.New("db error"))

		_, err := repo.GetAll(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(sushiCols).
			AddRow("s-1", "Salmon Nigiri", "salmon.jpg", "12.99", "Nigiri", "Salmon", nil, created)

		mock.ExpectQuery("SELECT .* FROM sushi WHERE id = \\$1 AND archived_at IS NULL").
			WithArgs("s-1").
			WillReturnRows(rows)

		s, err := repo.GetByID(context.Background(), "s-1")
		assert.NoError(t, err)
		assert.Equal(t, "Salmon Nigiri", s.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM sushi WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(sushiCols))

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO sushi").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

		s, err := repo.Create(context.Background(), Sushi{
			Name:    "Dragon Roll",
			Price:   "14.00",
			Type:    TypeRoll,
			Details: RollDetails{Pieces: 8},
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, "2024-01-02T03:04:05Z", s.CreatedAt)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO sushi").WillReturnError(errors.New("db error"))

		_, err := repo.Create(context.Background(), Sushi{Name: "X", Type: TypeNigiri})
		assert.Error(t, err)
	})
}

func TestRepository_Archive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(sushiCols).
			AddRow("s-1", "Salmon Nigiri", "salmon.jpg", "12.99", "Nigiri", "Salmon", nil, created)

		mock.ExpectQuery("UPDATE sushi SET archived_at = NOW\\(\\)").
			WithArgs("s-1").
			WillReturnRows(rows)

		s, err := repo.Archive(context.Background(), "s-1")
		assert.NoError(t, err)
		assert.Equal(t, "s-1", s.ID)
	})

	t.Run("Already archived", func(t *testing.T) {
		mock.ExpectQuery("UPDATE sushi SET archived_at = NOW\\(\\)").
			WithArgs("s-1").
			WillReturnRows(sqlmock.NewRows(sushiCols))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("s-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.Archive(context.Background(), "s-1")
		assert.ErrorIs(t, err, ErrAlreadyArchived)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE sushi SET archived_at = NOW\\(\\)").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(sushiCols))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.Archive(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
