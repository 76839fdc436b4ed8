package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type serviceMocks struct {
	auth  *mock.MockAuthService
	user  *mock.MockUserService
	items *mock.MockItemService
	info  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, hashKey string) (*Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:  mock.NewMockAuthService(ctrl),
		user:  mock.NewMockUserService(ctrl),
		items: mock.NewMockItemService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		AuthService:    m.auth,
		UserService:    m.user,
		ItemService:    m.items,
		AppInfoService: m.info,
	}

	return NewHandler(svcs, hashKey, logger.Nop()), m
}

// withUser returns r carrying userID the way the auth middleware stores it.
func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return strings.TrimSpace(string(b))
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}

	h := NewHandler(svcs, "", logger.Nop())
	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Nil(t, h.hasher)

	h = NewHandler(svcs, "key", logger.Nop())
	assert.NotNil(t, h.hasher)
}

// ─────────────────────────────────────────────
// ── Init: route registration ──
// ─────────────────────────────────────────────

func TestInit_PublicRoutes(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"})

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	h, _ := newTestHandler(t, "")
	router := h.Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user"},
		{http.MethodPatch, "/api/user"},
		{http.MethodGet, "/api/items"},
		{http.MethodPost, "/api/items"},
		{http.MethodGet, "/api/items/report"},
		{http.MethodPatch, "/api/items/abc"},
		{http.MethodDelete, "/api/items/abc"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: 7}, nil)
	m.items.EXPECT().ListItems(gomock.Any(), int64(7)).Return([]models.Item{{ID: "a"}}, nil)

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"a"`)
}

func TestInit_ReportRouteIsNotAnItemID(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: 7}, nil)
	m.items.EXPECT().Report(gomock.Any(), int64(7), gomock.Any()).Return("[TODO] x\n", nil)

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/api/items/report", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[TODO] x", body(t, rec))
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	h, _ := newTestHandler(t, "")
	router := h.Init()

	for _, path := range []string{"/", "/api", "/api/unknown", "/api/auth"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t, "")
	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/register"},
		{http.MethodDelete, "/api/auth/login"},
		{http.MethodPost, "/api/version"},
		{http.MethodPut, "/api/items/abc"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, tt.method+" "+tt.path)
	}
}

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{})

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.info.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{
		Version: "1.2.3",
		Date:    "2026-01-01",
		Commit:  "abc",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-01-01","commit":"abc"}`, rec.Body.String())
}
