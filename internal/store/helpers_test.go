package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
)

func newMockDB(t *testing.T, dialect migrations.Dialect, classifier ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, dialect: dialect, errorClassificator: classifier, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	testCreated = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	testUpdated = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
)

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows(itemColumns)
}
