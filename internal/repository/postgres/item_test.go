package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabox/internal/domain"
)

var itemRowColumns = []string{"id", "source_text", "target_text", "example_sentence", "part_of_speech", "frequency", "created_at"}

func TestItemRepo_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedError error
	}{
		{
			name: "item found",
			mockRows: sqlmock.NewRows(itemRowColumns).
				AddRow(7, "casa", "house", "La casa è grande.", "noun", 120, time.Now()),
		},
		{
			name:          "item missing",
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewItemRepo(db)

			q := mock.ExpectQuery("SELECT (.+) FROM items WHERE id = \\$1").WithArgs(int64(7))
			if tt.mockError != nil {
				q.WillReturnError(tt.mockError)
			} else {
				q.WillReturnRows(tt.mockRows)
			}

			item, err := repo.GetByID(context.Background(), 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "casa", item.SourceText)
				assert.Equal(t, "house", item.TargetText)
				assert.True(t, item.HasExample())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemRepo_GetByIDsKeepsRequestOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepo(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM items WHERE id = ANY\\(\\$1\\)").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(1, "uno", "one", "", "num", 10, now).
			AddRow(3, "tre", "three", "", "num", 30, now).
			AddRow(2, "due", "two", "", "num", 20, now))

	items, err := repo.GetByIDs(context.Background(), []int64{3, 1, 99, 2})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, int64(2), items[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_GetByIDsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepo(db)

	items, err := repo.GetByIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_TopByFrequency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM items ORDER BY frequency ASC").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(1, "il", "the", "", "article", 1, time.Now()).
			AddRow(2, "di", "of", "", "preposition", 2, time.Now()))

	items, err := repo.TopByFrequency(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Frequency)
	assert.NoError(t, mock.ExpectationsWereMet())
}
