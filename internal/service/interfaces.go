package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ItemServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
}

// ItemService manages the items of one owner at a time.
type ItemService interface {
	ListItems(ctx context.Context, userID int64) ([]models.Item, error)
	CreateItem(ctx context.Context, userID int64, item models.NewItem) (models.Item, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, userID int64, itemID string) error

	// Report renders the caller's collection, derived with cfg, as a plain-text status list.
	Report(ctx context.Context, userID int64, cfg models.ViewConfig) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// ItemServiceWrapper decorates an ItemService with extra behaviour such as
// validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}
