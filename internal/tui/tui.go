// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the two bubbletea programs of the client: the login flow and the
// main loop.
type TUI struct {
	services  *service.ClientServices
	mode      string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI rendering items in mode, either "notes" or "todo".
func New(services *service.ClientServices, mode string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		mode:      mode,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// LoginFlow shows the menu and returns the session of the user who logged in
// or registered. notice, when not empty, is shown above the menu.
// It returns ErrUserQuit when the user exits instead.
func (t *TUI) LoginFlow(ctx context.Context, notice string) (models.Session, error) {
	menu := NewMenuModel()
	menu.status = notice

	pages := map[string]tea.Model{
		pageMenu:     menu,
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("user logged in")
	return result.session, nil
}

// MainLoop renders the live collection of sub until the user quits or logs
// out. The returned session carries a display name changed in settings.
func (t *TUI) MainLoop(ctx context.Context, session models.Session, sub *service.Subscription) (models.Session, bool, error) {
	model := newMainLoopModel(ctx, t.services, session, sub, t.mode, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return session, false, err
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return session, false, tea.ErrProgramKilled
	}
	return result.session, result.logout, nil
}
