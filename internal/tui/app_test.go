package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockClientAuthService) {
	t.Helper()

	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	var a service.ClientAuthService = auth

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(context.Background(), a),
		pageRegister: NewRegisterModel(context.Background(), a),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("v1.2.0", "2026-03-01", "abc123")), auth
}

func rootUpdate(r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	next, cmd := r.Update(msg)
	return next.(RootModel), cmd
}

func TestRootModel_Navigation(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootUpdate(r, keyPress("down"))
	assert.Nil(t, cmd)

	r, cmd = rootUpdate(r, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())

	r, _ = rootUpdate(r, NavigateTo{Page: pageRegister})
	assert.IsType(t, &RegisterModel{}, r.current)

	r, _ = rootUpdate(r, NavigateTo{Page: "missing"})
	assert.IsType(t, &RegisterModel{}, r.current)
}

func TestRootModel_BuildInfo(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootUpdate(r, keyPress("v"))
	assert.True(t, r.about)
	assert.Contains(t, r.View(), "v1.2.0")
	assert.Contains(t, r.View(), "abc123")

	r, _ = rootUpdate(r, keyPress("esc"))
	assert.False(t, r.about)
}

func TestRootModel_LoginResult(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootUpdate(r, LoginResult{Err: errors.New("boom")})
	assert.Nil(t, cmd)
	assert.Empty(t, r.session.Token)

	r, cmd = rootUpdate(r, LoginResult{Session: testSession})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, testSession, r.session)
	assert.False(t, r.quitByUser)
}

func TestRootModel_CtrlC(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootUpdate(r, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, r.quitByUser)
}

func TestLoginModel_Submit(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewLoginModel(context.Background(), auth)

	_, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, "E-mail and password are required", m.errMsg)

	m.form.inputs[0].SetValue(" ann@example.com ")
	m.form.inputs[1].SetValue("secret123")

	auth.EXPECT().
		Login(gomock.Any(), models.User{Login: "ann@example.com", Password: "secret123"}).
		Return(testSession, nil)

	_, cmd = m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Equal(t, LoginResult{Session: testSession}, cmd())
}

func TestLoginModel_Failure(t *testing.T) {
	auth := mock.NewMockClientAuthService(gomock.NewController(t))
	m := NewLoginModel(context.Background(), auth)
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrWrongPassword})

	assert.False(t, m.submitting)
	assert.Equal(t, "Invalid login or password", m.errMsg)
}

func TestRegisterModel_Submit(t *testing.T) {
	tests := []struct {
		name    string
		values  [4]string
		wantErr string
	}{
		{name: "missing password", values: [4]string{"ann@example.com", "", "", ""}, wantErr: "E-mail and password are required"},
		{name: "passwords differ", values: [4]string{"ann@example.com", "", "secret123", "secret321"}, wantErr: "Passwords do not match"},
		{name: "valid", values: [4]string{"ann@example.com", " Ann ", "secret123", "secret123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mock.NewMockClientAuthService(gomock.NewController(t))
			m := NewRegisterModel(context.Background(), auth)
			for i, v := range tt.values {
				m.form.inputs[i].SetValue(v)
			}

			if tt.wantErr == "" {
				auth.EXPECT().
					Register(gomock.Any(), models.User{Login: "ann@example.com", DisplayName: "Ann", Password: "secret123"}).
					Return(testSession, nil)
			}

			_, cmd := m.Update(keyPress("enter"))

			if tt.wantErr != "" {
				assert.Nil(t, cmd)
				assert.Equal(t, tt.wantErr, m.errMsg)
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, LoginResult{Session: testSession}, cmd())
		})
	}
}
