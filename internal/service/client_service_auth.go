package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository
	cache    store.LocalItemRepository

	now func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, cache store.LocalItemRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		sessions: sessions,
		cache:    cache,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	user.Login = strings.TrimSpace(user.Login)
	user.DisplayName = strings.TrimSpace(user.DisplayName)

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.startSession(ctx, registered)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	user.Login = strings.TrimSpace(user.Login)

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.startSession(ctx, found)
}

func (a *clientAuthService) startSession(ctx context.Context, user models.User) (models.Session, error) {
	session := models.Session{
		UserID:      user.UserID,
		Login:       user.Login,
		DisplayName: user.DisplayName,
		Token:       a.adapter.Token(),
		SavedAt:     a.now(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		// the session still works for this run
		a.logger.Err(err).Int64("user_id", session.UserID).Msg("saving session failed")
	}

	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)

	profile, err := a.adapter.GetUser(ctx)
	if err == nil {
		if profile.DisplayName != session.DisplayName {
			session.DisplayName = profile.DisplayName
			a.save(ctx, session)
		}
		return session, nil
	}

	mapped := mapAdapterError(err)
	switch {
	case errors.Is(mapped, ErrServerUnavailable):
		a.logger.Warn().Err(err).Msg("server unreachable, using stored session")
		return session, nil
	case errors.Is(mapped, ErrTokenIsExpiredOrInvalid), errors.Is(err, adapter.ErrUnauthorized):
		a.adapter.SetToken("")
		if delErr := a.sessions.DeleteSession(ctx); delErr != nil {
			a.logger.Err(delErr).Msg("deleting expired session failed")
		}
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	default:
		return models.Session{}, fmt.Errorf("restore session: %w", mapped)
	}
}

func (a *clientAuthService) UpdateDisplayName(ctx context.Context, session models.Session, displayName string) (models.Session, error) {
	user, err := a.adapter.UpdateUser(ctx, models.UpdateUserRequest{DisplayName: strings.TrimSpace(displayName)})
	if err != nil {
		return session, fmt.Errorf("update display name: %w", mapAdapterError(err))
	}

	session.DisplayName = user.DisplayName
	a.save(ctx, session)

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context, session models.Session) error {
	a.adapter.SetToken("")

	var errs []error
	if err := a.sessions.DeleteSession(ctx); err != nil {
		errs = append(errs, fmt.Errorf("delete session: %w", err))
	}
	if session.UserID > 0 {
		if err := a.cache.ClearItems(ctx, session.UserID); err != nil {
			errs = append(errs, fmt.Errorf("clear cache: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (a *clientAuthService) save(ctx context.Context, session models.Session) {
	session.SavedAt = a.now()
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Int64("user_id", session.UserID).Msg("saving session failed")
	}
}
