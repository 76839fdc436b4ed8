// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var validUser = models.User{
	Login:       "alice@example.com",
	Password:    "secret-password",
	DisplayName: "Alice",
}

func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h, m := newTestHandler(t, "")

	registered := models.User{UserID: 1, Login: validUser.Login, DisplayName: "Alice"}
	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, validUser.Login, u.Login)
			assert.Equal(t, validUser.Password, u.Password)
			return registered, nil
		})
	m.auth.EXPECT().CreateToken(gomock.Any(), registered).Return(models.Token{SignedString: "signed.jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer signed.jwt", rec.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, validUser.Login, resp.User.Login)
	assert.Equal(t, "Alice", resp.User.DisplayName)
	assert.Empty(t, resp.User.Password)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid login",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidLogin),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidLogin,
		},
		{
			name:       "short password",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPasswordTooShort),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgPasswordTooShort,
		},
		{
			name:       "generic invalid data",
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "login already exists",
			err:        fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists),
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgLoginAlreadyExists,
		},
		{
			name:       "unexpected",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, "")
			m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(userBody(t, validUser)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, body(t, rec))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, body(t, rec))
}

func TestRegister_CreateTokenFails(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t, "")

	found := models.User{UserID: 3, Login: validUser.Login}
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(found, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), found).Return(models.Token{SignedString: "tok"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))
	assert.Contains(t, rec.Body.String(), validUser.Login)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown login looks like wrong password",
			err:        fmt.Errorf("user search by login failed: %w", store.ErrNoUserWasFound),
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidLoginPassword,
		},
		{
			name:       "wrong password",
			err:        service.ErrWrongPassword,
			wantStatus: http.StatusUnauthorized,
			wantBody:   app.MsgInvalidLoginPassword,
		},
		{
			name:       "invalid data",
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, "")
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(userBody(t, validUser)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, body(t, rec))
		})
	}
}

func TestLogin_EmptyBody(t *testing.T) {
	h, _ := newTestHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
