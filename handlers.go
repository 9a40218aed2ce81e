package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for watchlist items.
type Handler struct {
	store  *RedisStore
	logger *log.Logger
}

// NewHandler creates a Handler with dependencies.
func NewHandler(store *RedisStore, logger *log.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Routes builds the full HTTP handler: the /api/items REST endpoints plus the
// static frontend served from frontendDir.
func (h *Handler) Routes(frontendDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware(h.logger))
	r.Use(chimiddleware.Recoverer)

	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", h.handleListItems)
		r.Post("/", h.handleCreateItem)
		r.Put("/{id}", h.handleUpdateItem)
		r.Delete("/{id}", h.handleDeleteItem)
	})

	mountFrontend(r, frontendDir)
	return r
}

// handleListItems processes GET /api/items.
func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.storageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// handleCreateItem processes POST /api/items.
func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	payload := decodePayload(r)
	if err := validateItem(payload, false); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// type and status default only on creation; updates never touch them.
	item := &Item{
		ID:        uuid.NewString(),
		Type:      TypeMovie,
		Status:    StatusPlanned,
		DateAdded: time.Now().UTC(),
	}
	normalizeItem(payload).apply(item)

	if err := h.store.Insert(r.Context(), item); err != nil {
		h.storageError(w, err)
		return
	}
	created, err := h.store.Get(r.Context(), item.ID)
	if err != nil {
		h.storageError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// handleUpdateItem processes PUT /api/items/{id}.
func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	payload := decodePayload(r)
	if err := validateItem(payload, true); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	patch := normalizeItem(payload)
	if patch.empty() {
		respondError(w, http.StatusBadRequest, "No valid fields to update")
		return
	}

	updated, err := h.store.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.storageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// handleDeleteItem processes DELETE /api/items/{id}.
func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		h.storageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// decodePayload decodes the request body into an untyped mapping for the
// validator. Numbers keep full precision via json.Number. A body that decodes
// but is not a JSON object comes back nil, which the validator rejects; an
// unreadable or empty body is treated as an empty object, so creation fails
// on the missing title and updates fail on the empty field set.
func decodePayload(r *http.Request) map[string]interface{} {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return map[string]interface{}{}
	}
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// storageError reports an infrastructure failure: generic error plus the
// underlying detail, always a 500.
func (h *Handler) storageError(w http.ResponseWriter, err error) {
	h.logger.Printf("storage error: %v", err)
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"error":  "Database error",
		"detail": err.Error(),
	})
}
