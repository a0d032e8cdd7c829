package directoryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/pawction/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, created_at FROM users WHERE id = $1")).
					WithArgs(int64(4)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "login", "created_at"}).AddRow(int64(4), "alice", now))
			},
			result: &domain.User{ID: 4, Login: "alice", CreatedAt: now},
		},
		{
			name: "User does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
					WithArgs(int64(4)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
					WithArgs(int64(4)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindUser(context.Background(), 4)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindPet(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "owner_id", "name", "details", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM pets WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(3), int64(7), "Rex", "beagle, 2y", now))
	pet, err := repo.FindPet(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Pet{ID: 3, OwnerID: 7, Name: "Rex", Details: "beagle, 2y", UpdatedAt: now}, pet)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pets WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)
	pet, err = repo.FindPet(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, pet)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePet(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	pet := &domain.Pet{ID: 3, Name: "Rex", Details: "beagle, 3y", UpdatedAt: now}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pets")).
		WithArgs("Rex", "beagle, 3y", now, int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdatePet(context.Background(), pet))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pets")).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.UpdatePet(context.Background(), pet))

	assert.NoError(t, mock.ExpectationsWereMet())
}
