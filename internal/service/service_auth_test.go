package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "go-note-keeper",
	TokenDuration: time.Hour,
	PasswordCost:  bcrypt.MinCost,
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig, logger.Nop()), repo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, "secret1", u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
			u.UserID = 3
			return u, nil
		})

	got, err := svc.RegisterUser(ctx, models.User{Login: "ann@example.com", Password: "secret1", DisplayName: "Ann"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
	assert.Empty(t, got.Password)
}

func TestAuthService_RegisterUser_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "ann", Password: "secret1"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidLogin)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "ann@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 9, Login: "ann@example.com", Password: string(hash)}

	tests := []struct {
		name     string
		user     models.User
		repoErr  error
		wantErr  error
		wantUser bool
	}{
		{name: "ok", user: models.User{Login: "ann@example.com", Password: "secret1"}, wantUser: true},
		{name: "wrong password", user: models.User{Login: "ann@example.com", Password: "nope"}, wantErr: ErrWrongPassword},
		{name: "unknown login", user: models.User{Login: "bob@example.com", Password: "secret1"}, repoErr: store.ErrNoUserWasFound, wantErr: store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			if tt.repoErr != nil {
				repo.EXPECT().FindUserByLogin(gomock.Any(), tt.user.Login).Return(models.User{}, tt.repoErr)
			} else {
				repo.EXPECT().FindUserByLogin(gomock.Any(), tt.user.Login).Return(stored, nil)
			}

			got, err := svc.Login(context.Background(), tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(9), got.UserID)
			assert.Empty(t, got.Password)
		})
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.User{Login: "ann@example.com"})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 21})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(21), parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoKey(t *testing.T) {
	cfg := testAppConfig
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
