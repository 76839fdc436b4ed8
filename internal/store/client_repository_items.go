package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type localItemRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalItemRepository(db *DB, logger *logger.Logger) LocalItemRepository {
	return &localItemRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceItems swaps the cached snapshot of userID for items in one
// transaction. The item order is kept.
func (l *localItemRepository) ReplaceItems(ctx context.Context, userID int64, items []models.Item) error {
	log := logger.FromContext(ctx)

	clearQuery, clearArgs, err := buildClearCachedItemsQuery(userID)
	if err != nil {
		return err
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.ReplaceItems").Int64("user_id", userID).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		log.Err(err).Str("func", "localItemRepository.ReplaceItems").Int64("user_id", userID).Msg("failed to clear cached items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertCachedItem)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.ReplaceItems").Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for i, item := range items {
		_, err = stmt.ExecContext(ctx,
			userID,
			item.ID,
			item.Title,
			item.Text,
			item.Completed,
			item.IsPinned,
			item.Color,
			item.Deadline,
			formatCacheTime(item.CreatedAt),
			formatCacheTime(item.UpdatedAt),
			i,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localItemRepository.ReplaceItems").
				Int64("user_id", userID).
				Str("item_id", item.ID).
				Msg("failed to insert cached item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListItems returns the cached snapshot in the order it was stored.
func (l *localItemRepository) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCachedItemsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.ListItems").Int64("user_id", userID).Msg("failed to query cached items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 32)
	for rows.Next() {
		var (
			item                 models.Item
			createdAt, updatedAt sql.NullString
		)
		if err = rows.Scan(
			&item.ID,
			&item.Title,
			&item.Text,
			&item.Completed,
			&item.IsPinned,
			&item.Color,
			&item.Deadline,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		item.UserID = userID
		item.CreatedAt = parseCacheTime(createdAt)
		item.UpdatedAt = parseCacheTime(updatedAt)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (l *localItemRepository) ClearItems(ctx context.Context, userID int64) error {
	query, args, err := buildClearCachedItemsQuery(userID)
	if err != nil {
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func formatCacheTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseCacheTime treats NULL and malformed values as absent.
func parseCacheTime(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil
	}
	return &t
}
