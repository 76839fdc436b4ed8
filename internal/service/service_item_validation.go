package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// itemValidationService rejects malformed input before it reaches the inner
// ItemService.
type itemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

type itemValidationWrapper struct{}

// NewItemValidationService returns a wrapper that adds input validation.
func NewItemValidationService() ItemServiceWrapper {
	return itemValidationWrapper{}
}

func (itemValidationWrapper) Wrap(inner ItemService) ItemService {
	return &itemValidationService{inner: inner, validator: validators.NewItemValidator()}
}

func (v *itemValidationService) ListItems(ctx context.Context, userID int64) ([]models.Item, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListItems(ctx, userID)
}

func (v *itemValidationService) CreateItem(ctx context.Context, userID int64, item models.NewItem) (models.Item, error) {
	if userID <= 0 {
		return models.Item{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateItem(ctx, userID, item)
}

func (v *itemValidationService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if update.UserID <= 0 {
		return models.Item{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateItem(ctx, update)
}

func (v *itemValidationService) DeleteItem(ctx context.Context, userID int64, itemID string) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	if err := validators.CheckItemID(itemID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteItem(ctx, userID, itemID)
}

func (v *itemValidationService) Report(ctx context.Context, userID int64, cfg models.ViewConfig) (string, error) {
	if userID <= 0 {
		return "", ErrValidationNoUserID
	}
	return v.inner.Report(ctx, userID, cfg)
}
