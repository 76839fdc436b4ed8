package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
)

type idGenerator interface {
	Generate() string
}

type itemService struct {
	itemRepository store.ItemRepository
	ids            idGenerator
	engine         *view.Engine

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		ids:            utils.NewUUIDGenerator(),
		engine:         view.NewEngine(),
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}

	return items, nil
}

// CreateItem assigns the id, and a random palette color when none was chosen.
// Colors are stored lower-case so one palette entry has one spelling.
// New items always start neither completed nor pinned unless asked.
func (s *itemService) CreateItem(ctx context.Context, userID int64, newItem models.NewItem) (models.Item, error) {
	item := models.Item{
		ID:       s.ids.Generate(),
		UserID:   userID,
		Title:    newItem.Title,
		Text:     newItem.Text,
		IsPinned: newItem.IsPinned,
		Color:    strings.ToLower(newItem.Color),
		Deadline: newItem.Deadline,
	}
	if item.Color == "" {
		item.Color = view.RandomColor()
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("item_id", item.ID).Msg("item creation failed")
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}

	return created, nil
}

func (s *itemService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if update.Color != nil {
		update.Color = models.Ptr(strings.ToLower(*update.Color))
	}

	updated, err := s.itemRepository.UpdateItem(ctx, update)
	if err != nil {
		return models.Item{}, fmt.Errorf("update item: %w", err)
	}

	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, userID int64, itemID string) error {
	if err := s.itemRepository.DeleteItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	return nil
}

func (s *itemService) Report(ctx context.Context, userID int64, cfg models.ViewConfig) (string, error) {
	items, err := s.ListItems(ctx, userID)
	if err != nil {
		return "", err
	}

	return view.Report(s.engine.Apply(items, cfg)), nil
}
