// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"user_id", "login", "password", "display_name", "created_at"}

var itemColumns = []string{
	"id",
	"user_id",
	"title",
	"text",
	"completed",
	"is_pinned",
	"color",
	"deadline",
	"created_at",
	"updated_at",
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.Insert("users").
		Columns("login", "password", "display_name").
		Values(user.Login, user.Password, user.DisplayName).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateDisplayNameQuery(userID int64, displayName string) (string, []any, error) {
	query, args, err := psql.Update("users").
		Set("display_name", displayName).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListItemsQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateItemQuery(item models.Item) (string, []any, error) {
	query, args, err := psql.Insert("items").
		Columns("id", "user_id", "title", "text", "completed", "is_pinned", "color", "deadline").
		Values(item.ID, item.UserID, item.Title, item.Text, item.Completed, item.IsPinned, item.Color, nullableDeadline(item.Deadline)).
		Suffix("RETURNING " + joinColumns(itemColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateItemQuery sets only the non-nil fields of update.
func buildUpdateItemQuery(update models.ItemUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	b := psql.Update("items").Set("updated_at", sq.Expr("NOW()"))
	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Text != nil {
		b = b.Set("text", *update.Text)
	}
	if update.Completed != nil {
		b = b.Set("completed", *update.Completed)
	}
	if update.IsPinned != nil {
		b = b.Set("is_pinned", *update.IsPinned)
	}
	if update.Color != nil {
		b = b.Set("color", *update.Color)
	}
	if update.Deadline != nil {
		b = b.Set("deadline", nullableDeadline(*update.Deadline))
	}

	query, args, err := b.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + joinColumns(itemColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteItemQuery(userID int64, itemID string) (string, []any, error) {
	query, args, err := psql.Delete("items").
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// nullableDeadline stores an empty deadline as NULL.
func nullableDeadline(deadline string) any {
	if deadline == "" {
		return nil
	}
	return deadline
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
