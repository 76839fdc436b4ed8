package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// itemRepository is the Postgres implementation of [ItemRepository].
// Every query filters by user_id, so an item of another owner behaves
// exactly like a missing one.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// ListItems returns the whole collection of userID, newest first.
// Transient failures are retried.
func (r *itemRepository) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListItemsQuery(userID)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	err = r.withRetry(ctx, func() error {
		items, err = r.queryItems(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListItems").
			Int64("user_id", userID).
			Msg("failed to list items")
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) queryItems(ctx context.Context, query string, args []any) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 32)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// CreateItem inserts item and returns the stored row with server timestamps.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItemQuery(item)
	if err != nil {
		return models.Item{}, err
	}

	created, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Int64("user_id", item.UserID).
			Str("item_id", item.ID).
			Msg("failed to create item")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Item{}, ErrItemAlreadyExists
		}
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateItem applies a partial update. A missing item, or one owned by
// somebody else, yields [ErrItemNotFound].
func (r *itemRepository) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(update)
	if err != nil {
		return models.Item{}, err
	}

	updated, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Int64("user_id", update.UserID).
			Str("item_id", update.ID).
			Msg("failed to update item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, userID int64, itemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(userID, itemID)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Int64("user_id", userID).
			Str("item_id", itemID).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item      models.Item
		deadline  sql.NullTime
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.Text,
		&item.Completed,
		&item.IsPinned,
		&item.Color,
		&deadline,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Item{}, err
	}

	if deadline.Valid {
		item.Deadline = deadline.Time.Format(models.DeadlineLayout)
	}
	item.CreatedAt = &createdAt
	item.UpdatedAt = &updatedAt

	return item, nil
}
