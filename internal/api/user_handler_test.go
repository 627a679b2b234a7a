package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikoski/bloglist-api/internal/api"
	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/mocks"
)

func newJSONRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestUserHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := api.NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/users", api.CreateUserRequest{
			Username: "root",
			Name:     "Superuser",
			Password: "sekret",
		})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.UserResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "root", resp.Username)
		assert.Equal(t, "Superuser", resp.Name)
		assert.Empty(t, resp.Blogs)
		assert.NotContains(t, rec.Body.String(), "password")

		stored, ok := userStore.Users["root"]
		require.True(t, ok)
		assert.Equal(t, "hashed:sekret", stored.HashedPassword)
		assert.Empty(t, stored.Password)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := api.NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, userStore.Users)
	})

	t.Run("username too short", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := api.NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/users", api.CreateUserRequest{
			Username: "ro",
			Password: "sekret",
		})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, userStore.Users)
	})

	t.Run("password too short", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		handler := api.NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/users", api.CreateUserRequest{
			Username: "root",
			Password: "pw",
		})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, userStore.Users)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		existing, err := domain.NewUser("root", "Superuser", "sekret")
		require.NoError(t, err)
		existing.HashedPassword = "hashed:sekret"
		existing.Password = ""
		userStore.Users["root"] = existing

		handler := api.NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

		req := newJSONRequest(t, http.MethodPost, "/api/users", api.CreateUserRequest{
			Username: "root",
			Password: "other-password",
		})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Username already exists")
	})
}

func TestUserHandlerList(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user, err := domain.NewUser("root", "Superuser", "sekret")
	require.NoError(t, err)
	user.HashedPassword = "hashed:sekret"
	user.Password = ""
	user.Blogs = []domain.BlogSummary{
		{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/"},
	}
	userStore.Users["root"] = user

	handler := api.NewUserHandler(userStore, &mocks.MockPasswordHasher{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []api.UserResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "root", resp[0].Username)
	require.Len(t, resp[0].Blogs, 1)
	assert.Equal(t, "React patterns", resp[0].Blogs[0].Title)
	assert.NotContains(t, rec.Body.String(), "hashed:sekret")
}
