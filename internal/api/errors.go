package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/service/auth"
	"github.com/avikoski/bloglist-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Handlers never format error responses themselves; they surface typed
// failures and this single translation point assigns the status.
//
// The ordering is most-specific first: malformed-identifier and validation
// failures before duplicates, duplicates before authorization, authorization
// before not-found. Duplicate unique fields map to 400, matching the
// behavior of the public API contract rather than the conventional 409.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Malformed resource identifiers
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Request schema / entity validation errors
	case errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Duplicate unique fields
	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	// Authentication and authorization errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return "Malformed id"

	case errors.As(err, &validationErrs):
		return "Validation error: " + validationErrs.Error()

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Validation error"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case store.IsDuplicateError(err):
		return "Duplicate resource"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrBlogNotFound):
		return "Blog not found"

	case store.IsNotFoundError(err):
		return "Not found"

	default:
		return "An unexpected error occurred"
	}
}

// RespondWithMappedError translates err through the central taxonomy and
// writes the resulting status and sanitized message.
func RespondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	RespondWithErrorAndLog(w, r, status, message, err)
}
