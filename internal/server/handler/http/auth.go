// Package http provides HTTP handlers for user authentication,
// including registration and password-based login.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atinyakov/CmdKeeper/internal/models"
	"github.com/atinyakov/CmdKeeper/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user from the given credentials.
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /auth/register.
// It expects a JSON body with non-empty "username" and "password" fields
// and responds with the created user's id and username.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, "username and password are required")
		return
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusConflict, codeConflict, "username already taken")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, codeInternal, "Error registering user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login handles POST /auth/login.
// On valid credentials it responds with a bearer token; unknown usernames
// and wrong passwords produce the same 401 response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid username or password")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, codeInternal, "Error logging in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
