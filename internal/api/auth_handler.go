// Package api contains the HTTP handlers, request/response models and the
// central error-to-status translation for the bloglist API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avikoski/bloglist-api/internal/platform/logger"
	"github.com/avikoski/bloglist-api/internal/service/auth"
	"github.com/avikoski/bloglist-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	tokenService     auth.TokenService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// If log is nil, the default logger is used.
func NewAuthHandler(
	userStore store.UserStore,
	tokenService auth.TokenService,
	passwordVerifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		tokenService:     tokenService,
		passwordVerifier: passwordVerifier,
		logger:           log.With(slog.String("handler", "auth")),
	}
}

// Login handles POST /api/login.
//
// An unknown username and a wrong password produce the same undifferentiated
// 401 so the endpoint cannot be used to enumerate usernames.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			RespondWithMappedError(w, r, auth.ErrInvalidCredentials)
			return
		}
		log.Error("failed to get user by username", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		RespondWithMappedError(w, r, auth.ErrInvalidCredentials)
		return
	}

	token, err := h.tokenService.GenerateToken(r.Context(), user.ID, user.Username)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
