package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).
		Return(models.User{UserID: 4, Login: "ann@example.com", Password: "hash"}, nil)

	got, err := svc.GetProfile(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got.Login)
	assert.Empty(t, got.Password)

	_, err = svc.GetProfile(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidationNoUserID)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetProfile(context.Background(), 4)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, logger.Nop())

	repo.EXPECT().UpdateDisplayName(gomock.Any(), int64(4), "Ann").
		Return(models.User{UserID: 4, DisplayName: "Ann"}, nil)

	got, err := svc.UpdateProfile(context.Background(), 4, models.UpdateUserRequest{DisplayName: "  Ann "})
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.DisplayName)
}

func TestUserService_UpdateProfile_TooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUserService(mock.NewMockUserRepository(ctrl), logger.Nop())

	_, err := svc.UpdateProfile(context.Background(), 4, models.UpdateUserRequest{DisplayName: strings.Repeat("a", 101)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
