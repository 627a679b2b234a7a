package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avikoski/bloglist-api/internal/api/shared"
	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/service/auth"
)

// Thin forwarders so handlers in this package read naturally.

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return shared.DecodeJSON(r, v)
}

// ValidateRequest validates the given struct against its declared field rules.
func ValidateRequest(v interface{}) error {
	return shared.ValidateRequest(v)
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	shared.RespondWithJSON(w, r, status, data)
}

// RespondWithError writes a JSON error response with the given status code
// and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}

// RespondWithErrorAndLog writes a JSON error response and logs the detailed
// error.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}

// getClaimsFromContext extracts the authenticated identity claims placed in
// the request context by the authentication middleware.
//
// Returns the claims and true on success, or nil and false when the request
// carries no authenticated identity.
func getClaimsFromContext(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.AuthClaimsContextKey).(*auth.Claims)
	if !ok || claims == nil || claims.UserID == uuid.Nil {
		return nil, false
	}
	return claims, true
}

// getPathUUID extracts a UUID from the URL path parameters.
// A missing or malformed parameter maps to the invalid-ID error class so the
// central translation stage renders it as a 400.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
