package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalItemRepository caches the last snapshot of a user's collection on the
// client. A snapshot is always stored and read as a whole.
type LocalItemRepository interface {
	ReplaceItems(ctx context.Context, userID int64, items []models.Item) error
	ListItems(ctx context.Context, userID int64) ([]models.Item, error)
	ClearItems(ctx context.Context, userID int64) error
}

// SessionRepository keeps the single logged-in session of the client.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
