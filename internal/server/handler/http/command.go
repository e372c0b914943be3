// Package http provides HTTP handlers for command management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/CmdKeeper/internal/middleware"
	"github.com/atinyakov/CmdKeeper/internal/models"
	"github.com/atinyakov/CmdKeeper/internal/service"
	"github.com/go-chi/chi/v5"
)

// CommandService defines the interface for command operations
// required by the CommandHandler. Every operation is scoped to the
// authenticated caller's identity.
type CommandService interface {
	// List returns every command owned by the caller.
	List(ctx context.Context, owner string) ([]models.Command, error)
	// ListByCategory returns the caller's commands with an exact-match category.
	ListByCategory(ctx context.Context, owner, category string) ([]models.Command, error)
	// Create validates and persists a new command owned by the caller.
	Create(ctx context.Context, owner, title, command, category string) (*models.Command, error)
	// Delete removes the caller's command with the given id.
	Delete(ctx context.Context, owner, id string) error
}

// CommandHandler handles HTTP requests for listing, creating, and
// deleting commands.
type CommandHandler struct {
	CommandService CommandService
}

// createCommandRequest represents the JSON payload for command creation.
// Owner, id, and creation time are never read from the client.
type createCommandRequest struct {
	Title    string `json:"title"`
	Command  string `json:"command"`
	Category string `json:"category"`
}

// List handles GET /commands.
// It responds with the caller's full command list as a JSON array.
func (h *CommandHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserIDFromContext(r.Context())

	commands, err := h.CommandService.List(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "Error fetching commands")
		return
	}

	writeJSON(w, http.StatusOK, commands)
}

// ListByCategory handles GET /commands/category/{category}.
// The category path parameter is matched exactly and case-sensitively;
// an empty result set is returned as an empty array, not an error.
func (h *CommandHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserIDFromContext(r.Context())
	category := chi.URLParam(r, "category")

	commands, err := h.CommandService.ListByCategory(r.Context(), owner, category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeInternal, "Error fetching commands")
		return
	}

	writeJSON(w, http.StatusOK, commands)
}

// Create handles POST /commands.
// It expects a JSON body with non-empty "title", "command", and "category"
// fields and responds with the full created record.
func (h *CommandHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserIDFromContext(r.Context())

	var req createCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	cmd, err := h.CommandService.Create(r.Context(), owner, req.Title, req.Command, req.Category)
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, "title, command and category are required")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, codeInternal, "Error creating command")
		return
	}

	writeJSON(w, http.StatusCreated, cmd)
}

// Delete handles DELETE /commands/{id}.
// A missing id and an id owned by another user produce the same 404.
func (h *CommandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	err := h.CommandService.Delete(r.Context(), owner, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "Command not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, codeInternal, "Error deleting command")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Command deleted successfully"})
}
