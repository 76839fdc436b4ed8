package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

func (u *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrValidationNoUserID
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", err)
	}

	return user.Profile(), nil
}

// UpdateProfile changes the display name. Surrounding spaces are dropped and
// an empty name resets it.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrValidationNoUserID
	}

	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := u.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.userRepository.UpdateDisplayName(ctx, userID, req.DisplayName)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("display name update failed")
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	return user.Profile(), nil
}
