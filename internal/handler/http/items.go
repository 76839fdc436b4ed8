package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	items, err := h.services.ItemService.ListItems(ctx, userID)
	if err != nil {
		writeError(w, r, err, "list items failed")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, models.ItemsResponse{Items: items, Length: len(items)}, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var newItem models.NewItem
	if err := json.NewDecoder(r.Body).Decode(&newItem); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.ItemService.CreateItem(ctx, userID, newItem)
	if err != nil {
		writeError(w, r, err, "create item failed")
		return
	}

	log.Debug().Str("item_id", created.ID).Msg("item created")
	utils.WriteJSON(w, models.CreateItemResponse{ID: created.ID}, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var update models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	update.ID = chi.URLParam(r, "id")
	update.UserID = userID

	updated, err := h.services.ItemService.UpdateItem(ctx, update)
	if err != nil {
		writeError(w, r, err, "update item failed")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	itemID := chi.URLParam(r, "id")
	if err := h.services.ItemService.DeleteItem(ctx, userID, itemID); err != nil {
		writeError(w, r, err, "delete item failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// report answers with the text report of the caller's collection.
// Query parameters filter, search and sort shape the view; missing ones
// fall back to the defaults of a fresh client session.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	cfg := viewConfigFromQuery(r)

	text, err := h.services.ItemService.Report(ctx, userID, cfg)
	if err != nil {
		writeError(w, r, err, "report failed")
		return
	}

	utils.WriteText(w, text, http.StatusOK)
}

func viewConfigFromQuery(r *http.Request) models.ViewConfig {
	cfg := models.DefaultViewConfig()
	query := r.URL.Query()

	if filter := query.Get("filter"); filter != "" {
		cfg.FilterMode = models.FilterMode(filter)
	}
	if sort := query.Get("sort"); sort != "" {
		cfg.SortOrder = models.SortOrder(sort)
	}
	cfg.SearchQuery = query.Get("search")

	return cfg
}
