package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// refresher is the part of the live feed the gateway needs.
type refresher interface {
	Refresh()
}

type mutationGateway struct {
	adapter adapter.ServerAdapter
	feed    refresher

	logger *logger.Logger
}

func NewMutationGateway(serverAdapter adapter.ServerAdapter, feed refresher, logger *logger.Logger) MutationGateway {
	return &mutationGateway{adapter: serverAdapter, feed: feed, logger: logger}
}

func (g *mutationGateway) Create(ctx context.Context, item models.NewItem) (string, error) {
	if err := g.authenticated(); err != nil {
		return "", err
	}

	id, err := g.adapter.CreateItem(ctx, item)
	if err != nil {
		return "", fmt.Errorf("create item: %w", mapAdapterError(err))
	}

	g.logger.Debug().Str("item_id", id).Msg("item created")
	g.feed.Refresh()
	return id, nil
}

// Update applies the non-nil fields of partial to the item id.
func (g *mutationGateway) Update(ctx context.Context, id string, partial models.ItemUpdate) error {
	if id == "" {
		return ErrNoItemID
	}
	if err := g.authenticated(); err != nil {
		return err
	}

	partial.ID = id
	if err := g.adapter.UpdateItem(ctx, partial); err != nil {
		return fmt.Errorf("update item: %w", mapAdapterError(err))
	}

	g.feed.Refresh()
	return nil
}

func (g *mutationGateway) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNoItemID
	}
	if err := g.authenticated(); err != nil {
		return err
	}

	if err := g.adapter.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", mapAdapterError(err))
	}

	g.feed.Refresh()
	return nil
}

// Toggle flips the completed flag of item as currently displayed.
func (g *mutationGateway) Toggle(ctx context.Context, item models.Item) error {
	return g.Update(ctx, item.ID, models.ItemUpdate{Completed: models.Ptr(!item.Completed)})
}

// Pin flips the pinned flag of item as currently displayed.
func (g *mutationGateway) Pin(ctx context.Context, item models.Item) error {
	return g.Update(ctx, item.ID, models.ItemUpdate{IsPinned: models.Ptr(!item.IsPinned)})
}

func (g *mutationGateway) authenticated() error {
	if g.adapter.Token() == "" {
		return ErrNotAuthenticated
	}
	return nil
}
