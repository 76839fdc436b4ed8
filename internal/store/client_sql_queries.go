package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// sqlite keeps squirrel's default "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var cachedItemColumns = []string{
	"id",
	"title",
	"text",
	"completed",
	"is_pinned",
	"color",
	"deadline",
	"created_at",
	"updated_at",
}

const insertCachedItem = `INSERT INTO cached_items
	(user_id, id, title, text, completed, is_pinned, color, deadline, created_at, updated_at, position)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

func buildListCachedItemsQuery(userID int64) (string, []any, error) {
	query, args, err := sqlite.Select(cachedItemColumns...).
		From("cached_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildClearCachedItemsQuery(userID int64) (string, []any, error) {
	query, args, err := sqlite.Delete("cached_items").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

const (
	upsertSession = `INSERT INTO session (id, user_id, login, display_name, token, saved_at)
	VALUES (1, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		user_id = excluded.user_id,
		login = excluded.login,
		display_name = excluded.display_name,
		token = excluded.token,
		saved_at = excluded.saved_at;`

	selectSession = `SELECT user_id, login, display_name, token, saved_at FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)
