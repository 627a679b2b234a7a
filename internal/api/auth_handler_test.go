package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikoski/bloglist-api/internal/api"
	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/mocks"
)

func registeredUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser("root", "Superuser", "sekret")
	require.NoError(t, err)
	user.HashedPassword = "hashed:sekret"
	user.Password = ""
	return user
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	t.Run("successful login", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := registeredUser(t)
		userStore.Users[user.Username] = user

		handler := api.NewAuthHandler(
			userStore,
			&mocks.MockTokenService{},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		req := newJSONRequest(t, http.MethodPost, "/api/login", api.LoginRequest{
			Username: "root",
			Password: "sekret",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.LoginResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "mock-token", resp.Token)
		assert.Equal(t, "root", resp.Username)
		assert.Equal(t, "Superuser", resp.Name)
	})

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(
			mocks.NewMockUserStore(),
			&mocks.MockTokenService{},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		req := newJSONRequest(t, http.MethodPost, "/api/login", api.LoginRequest{
			Username: "nobody",
			Password: "sekret",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid username or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := registeredUser(t)
		userStore.Users[user.Username] = user

		handler := api.NewAuthHandler(
			userStore,
			&mocks.MockTokenService{},
			&mocks.MockPasswordVerifier{CompareErr: errors.New("hash mismatch")},
			nil,
		)

		req := newJSONRequest(t, http.MethodPost, "/api/login", api.LoginRequest{
			Username: "root",
			Password: "wrong",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		// Indistinguishable from the unknown-username case.
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid username or password")
	})

	t.Run("missing password", func(t *testing.T) {
		t.Parallel()

		handler := api.NewAuthHandler(
			mocks.NewMockUserStore(),
			&mocks.MockTokenService{},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		req := newJSONRequest(t, http.MethodPost, "/api/login", api.LoginRequest{
			Username: "root",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token generation failure", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := registeredUser(t)
		userStore.Users[user.Username] = user

		handler := api.NewAuthHandler(
			userStore,
			&mocks.MockTokenService{GenerateErr: errors.New("signing failed")},
			&mocks.MockPasswordVerifier{},
			nil,
		)

		req := newJSONRequest(t, http.MethodPost, "/api/login", api.LoginRequest{
			Username: "root",
			Password: "sekret",
		})
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "signing failed")
	})
}
