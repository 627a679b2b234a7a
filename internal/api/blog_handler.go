package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/platform/logger"
	"github.com/avikoski/bloglist-api/internal/store"
)

// BlogHandler handles blog CRUD requests.
//
// Mutating endpoints run behind the authentication middleware; the handlers
// here perform the remaining pipeline stages (store lookup, ownership gate,
// persistence) and surface typed failures to the central error translation.
type BlogHandler struct {
	blogStore store.BlogStore
	userStore store.UserStore
	logger    *slog.Logger
}

// NewBlogHandler creates a new BlogHandler with the given dependencies.
// If log is nil, the default logger is used.
func NewBlogHandler(
	blogStore store.BlogStore,
	userStore store.UserStore,
	log *slog.Logger,
) *BlogHandler {
	if log == nil {
		log = slog.Default()
	}
	return &BlogHandler{
		blogStore: blogStore,
		userStore: userStore,
		logger:    log.With(slog.String("handler", "blog")),
	}
}

// List handles GET /api/blogs. Unauthenticated; every blog carries the
// reduced owner view.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogStore.List(r.Context())
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	resp := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		resp = append(resp, newBlogResponse(b))
	}

	RespondWithJSON(w, r, http.StatusOK, resp)
}

// Create handles POST /api/blogs.
//
// The acting user record must still exist: the token only asserts a claimed
// identity, and a token referencing a missing user fails closed as
// unauthorized rather than as a server fault.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	claims, ok := getClaimsFromContext(r)
	if !ok {
		log.Warn("authenticated identity missing from request context")
		RespondWithMappedError(w, r, domain.ErrUnauthorized)
		return
	}

	var req BlogRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	user, err := h.userStore.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn("token references unknown user", "user_id", claims.UserID)
			RespondWithMappedError(w, r, domain.ErrUnauthorized)
			return
		}
		RespondWithMappedError(w, r, err)
		return
	}

	blog, err := domain.NewBlog(user.ID, req.Title, req.Author, req.URL, req.LikesOrDefault())
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid blog data: "+err.Error())
		return
	}

	if err := h.blogStore.Create(r.Context(), blog); err != nil {
		// The owner row vanished between lookup and insert; fail closed.
		if errors.Is(err, store.ErrInvalidEntity) {
			log.Warn("blog owner disappeared before insert", "user_id", user.ID)
			RespondWithMappedError(w, r, domain.ErrUnauthorized)
			return
		}
		RespondWithMappedError(w, r, err)
		return
	}

	owner := user.Summary()
	blog.Owner = &owner

	RespondWithJSON(w, r, http.StatusCreated, newBlogResponse(blog))
}

// Update handles PUT /api/blogs/{id}.
//
// The ownership gate is a scoped find-and-update in the store: a blog that
// does not exist and a blog owned by someone else both surface as 404, so
// the endpoint does not leak the existence of blogs the caller cannot touch.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	claims, ok := getClaimsFromContext(r)
	if !ok {
		log.Warn("authenticated identity missing from request context")
		RespondWithMappedError(w, r, domain.ErrUnauthorized)
		return
	}

	blogID, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	var req BlogRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ValidateRequest(req); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	blog := &domain.Blog{
		ID:     blogID,
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.LikesOrDefault(),
	}

	updated, err := h.blogStore.UpdateOwned(r.Context(), claims.UserID, blog)
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, newBlogResponse(updated))
}

// Delete handles DELETE /api/blogs/{id}.
// Same ownership discipline as Update; success returns no body.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := getClaimsFromContext(r)
	if !ok {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Warn("authenticated identity missing from request context")
		RespondWithMappedError(w, r, domain.ErrUnauthorized)
		return
	}

	blogID, err := getPathUUID(r, "id")
	if err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	if err := h.blogStore.DeleteOwned(r.Context(), claims.UserID, blogID); err != nil {
		RespondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
