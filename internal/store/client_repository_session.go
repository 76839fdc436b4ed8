package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession stores session, replacing the previous one.
func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now()
	}

	_, err := s.DB.ExecContext(ctx, upsertSession,
		session.UserID,
		session.Login,
		session.DisplayName,
		session.Token,
		session.SavedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the stored session or [ErrSessionNotFound].
func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var (
		session models.Session
		savedAt string
	)

	err := s.DB.QueryRowContext(ctx, selectSession).Scan(
		&session.UserID,
		&session.Login,
		&session.DisplayName,
		&session.Token,
		&savedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	session.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
