package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// Request bodies are signed with HMAC-SHA256 when appCfg.HashKey is set.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register posts to /api/auth/register and keeps the issued token.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "register", "/api/auth/register", user)
}

// Login posts to /api/auth/login and keeps the issued token.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "login", "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, op, path string, user models.User) (models.User, error) {
	var authResp models.AuthResponse

	req, err := h.jsonRequest(h.client.R().SetContext(ctx), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", op, err)
	}

	resp, err := req.SetResult(&authResp).Post(path)
	if err != nil {
		return models.User{}, transportError(op+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse user id: %w", op, err)
	}

	h.SetToken(token)

	found := authResp.User
	found.UserID = userID
	if found.Login == "" {
		found.Login = user.Login
	}
	found.Password = ""

	h.logger.Debug().Int64("user_id", userID).Str("op", op).Msg("authenticated")
	return found, nil
}

// GetUser reads the caller's profile from GET /api/user.
func (h *httpServerAdapter) GetUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).SetResult(&user).Get("/api/user")
	if err != nil {
		return models.User{}, transportError("get user request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser sends PATCH /api/user and returns the updated profile.
func (h *httpServerAdapter) UpdateUser(ctx context.Context, body models.UpdateUserRequest) (models.User, error) {
	var user models.User

	req, err := h.jsonRequest(h.authedRequest(ctx), body)
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}

	resp, err := req.SetResult(&user).Patch("/api/user")
	if err != nil {
		return models.User{}, transportError("update user request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListItems fetches the whole collection from GET /api/items.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/api/items")
	if err != nil {
		return nil, transportError("list items request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ir models.ItemsResponse
	if err = json.Unmarshal(resp.Body(), &ir); err != nil {
		return nil, fmt.Errorf("decode items response: %w", err)
	}
	if ir.Items == nil {
		ir.Items = []models.Item{}
	}

	return ir.Items, nil
}

// CreateItem posts to /api/items.
func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.NewItem) (string, error) {
	var created models.CreateItemResponse

	req, err := h.jsonRequest(h.authedRequest(ctx), item)
	if err != nil {
		return "", fmt.Errorf("create item request: %w", err)
	}

	resp, err := req.SetResult(&created).Post("/api/items")
	if err != nil {
		return "", transportError("create item request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("create item: empty id in response")
	}

	return created.ID, nil
}

// UpdateItem sends PATCH /api/items/{id} with the present fields only.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, update models.ItemUpdate) error {
	req, err := h.jsonRequest(h.authedRequest(ctx), update)
	if err != nil {
		return fmt.Errorf("update item request: %w", err)
	}

	resp, err := req.
		SetPathParam("id", update.ID).
		Patch("/api/items/{id}")
	if err != nil {
		return transportError("update item request", err)
	}

	return mapHTTPError(resp)
}

// DeleteItem sends DELETE /api/items/{id}.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/items/{id}")
	if err != nil {
		return transportError("delete item request", err)
	}

	return mapHTTPError(resp)
}

// Version reads the server build info.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var v models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&v).Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, transportError("version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return v, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// jsonRequest marshals body up front so the exact bytes can be signed.
func (h *httpServerAdapter) jsonRequest(req *resty.Request, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}

	req.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}

	return req, nil
}
