package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -exclude_interfaces=LiveFeed

// ClientAuthService manages the client session.
type ClientAuthService interface {
	// Register creates the account on the server and stores the session locally.
	Register(ctx context.Context, user models.User) (models.Session, error)
	// Login authenticates and stores the session locally.
	Login(ctx context.Context, user models.User) (models.Session, error)
	// Restore loads the stored session. When the server cannot be reached the
	// stored session is returned as is so the client can run from its cache.
	Restore(ctx context.Context) (models.Session, error)
	UpdateDisplayName(ctx context.Context, session models.Session, displayName string) (models.Session, error)
	// Logout forgets the token, the stored session and the user's cache.
	Logout(ctx context.Context, session models.Session) error
}

// MutationGateway forwards user intents to the server. It never returns the
// changed collection: changes reach the view through the live feed.
type MutationGateway interface {
	Create(ctx context.Context, item models.NewItem) (string, error)
	Update(ctx context.Context, id string, partial models.ItemUpdate) error
	Delete(ctx context.Context, id string) error

	Toggle(ctx context.Context, item models.Item) error
	Pin(ctx context.Context, item models.Item) error
}

// LiveFeed opens live subscriptions to a user's collection.
type LiveFeed interface {
	Subscribe(ctx context.Context, userID int64) (*Subscription, error)
	// Refresh asks every open subscription for an immediate poll.
	Refresh()
	// Close cancels every open subscription.
	Close()
}
