package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ui is the part of the terminal UI the app drives.
type ui interface {
	LoginFlow(ctx context.Context, notice string) (models.Session, error)
	MainLoop(ctx context.Context, session models.Session, sub *service.Subscription) (models.Session, bool, error)
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       ui
	logger   *logger.Logger
}

func NewApp(appCtx *Context, buildInfo models.AppBuildInfo) *App {
	return &App{
		services: appCtx.Services,
		ui:       tui.New(appCtx.Services, appCtx.Config.App.Mode, buildInfo, appCtx.Logger),
		logger:   appCtx.Logger,
	}
}

// Run restores the stored session, or asks the user to log in, and shows
// the live collection. Logging out returns to the login flow.
func (a *App) Run(ctx context.Context) error {
	session, notice, err := a.restore(ctx)
	if err != nil {
		return err
	}

	for {
		if session.Token == "" {
			session, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		var logout bool
		session, logout, err = a.runSession(ctx, session)
		if err != nil {
			if !errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				return err
			}
			notice = sessionExpiredNotice
			logout = true
		} else {
			notice = ""
		}

		if !logout {
			return nil
		}

		if err := a.services.AuthService.Logout(ctx, session); err != nil {
			a.logger.Err(err).Int64("user_id", session.UserID).Msg("logout cleanup failed")
		}
		session = models.Session{}
	}
}

// restore returns an empty session when the user has to log in. notice
// explains why, if it is not a first run.
func (a *App) restore(ctx context.Context) (models.Session, string, error) {
	session, err := a.services.AuthService.Restore(ctx)
	switch {
	case err == nil:
		return session, "", nil
	case errors.Is(err, store.ErrSessionNotFound):
		return models.Session{}, "", nil
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return models.Session{}, sessionExpiredNotice, nil
	default:
		return models.Session{}, "", fmt.Errorf("restore session: %w", err)
	}
}

// runSession subscribes to the user's collection and runs the main loop
// until the user quits or logs out.
func (a *App) runSession(ctx context.Context, session models.Session) (models.Session, bool, error) {
	sub, err := a.services.Feed.Subscribe(ctx, session.UserID)
	if err != nil {
		return session, false, fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Cancel()

	a.logger.Info().Int64("user_id", session.UserID).Msg("main loop started")

	session, logout, err := a.ui.MainLoop(ctx, session, sub)
	if err != nil {
		return session, false, fmt.Errorf("main loop: %w", err)
	}
	return session, logout, nil
}
