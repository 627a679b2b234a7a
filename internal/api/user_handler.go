package api

import (
	"log/slog"
	"net/http"

	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/platform/logger"
	"github.com/avikoski/bloglist-api/internal/service/auth"
	"github.com/avikoski/bloglist-api/internal/store"
)

// UserHandler handles user registration and listing.
type UserHandler struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
// If log is nil, the default logger is used.
func NewUserHandler(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		hasher:    hasher,
		logger:    log.With(slog.String("handler", "user")),
	}
}

// Create handles POST /api/users. Registration is public; the password is
// hashed exactly once here and the plaintext never reaches the store.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	user, err := domain.NewUser(req.Username, req.Name, req.Password)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	hashed, err := h.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, newUserResponse(user))
}

// List handles GET /api/users. Unauthenticated; each user carries a reduced
// view of their blogs and never the password hash.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}

	RespondWithJSON(w, r, http.StatusOK, resp)
}
