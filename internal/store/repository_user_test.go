package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t, migrations.Postgres, nil)
	return NewUserRepository(db, logger.Nop()).(*userRepository), mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Login: "john@example.com", Password: "hash", DisplayName: "John"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login,password,display_name) VALUES ($1,$2,$3) RETURNING")).
		WithArgs(user.Login, user.Password, user.DisplayName).
		WillReturnRows(userRows().AddRow(1, user.Login, user.Password, user.DisplayName, testCreated))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Login, created.Login)
	assert.Equal(t, testCreated, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

// ── FindUser ─────────────────────────────────────────────────────────────────

func TestFindUserByLogin(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, password, display_name, created_at FROM users WHERE login = $1")).
		WithArgs("jane@example.com").
		WillReturnRows(userRows().AddRow(5, "jane@example.com", "hash", "", testCreated))

	user, err := repo.FindUserByLogin(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, "hash", user.Password)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByLogin_EmptyResult(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").WillReturnRows(userRows())

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ── UpdateDisplayName ────────────────────────────────────────────────────────

func TestUpdateDisplayName(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET display_name = $1 WHERE user_id = $2 RETURNING")).
		WithArgs("Janet", int64(5)).
		WillReturnRows(userRows().AddRow(5, "jane@example.com", "hash", "Janet", testCreated))

	user, err := repo.UpdateDisplayName(context.Background(), 5, "Janet")
	require.NoError(t, err)
	assert.Equal(t, "Janet", user.DisplayName)
}
