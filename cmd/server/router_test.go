package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avikoski/bloglist-api/internal/api"
	"github.com/avikoski/bloglist-api/internal/config"
	"github.com/avikoski/bloglist-api/internal/mocks"
	"github.com/avikoski/bloglist-api/internal/service/auth"
)

// newTestApplication wires a full application on top of in-memory stores,
// with the real token service and real bcrypt at its cheapest cost.
func newTestApplication(t *testing.T) (*application, *mocks.MockUserStore, *mocks.MockBlogStore) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret-key-thats-32-chars-long!!",
			TokenLifetimeMinutes: 60,
			BcryptCost:           bcrypt.MinCost,
		},
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	require.NoError(t, err)

	userStore := mocks.NewMockUserStore()
	blogStore := mocks.NewMockBlogStore()

	app := &application{
		config:           cfg,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		userStore:        userStore,
		blogStore:        blogStore,
		tokenService:     tokenService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
	}
	return app, userStore, blogStore
}

func doJSON(
	t *testing.T,
	router http.Handler,
	method, target, token string,
	payload interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBlogLifecycle(t *testing.T) {
	app, userStore, blogStore := newTestApplication(t)
	router := app.setupRouter()

	// Register the owner.
	rec := doJSON(t, router, http.MethodPost, "/api/users", "", api.CreateUserRequest{
		Username: "root",
		Name:     "Superuser",
		Password: "sekret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sekret")

	owner := userStore.Users["root"]
	require.NotNil(t, owner)
	blogStore.AddOwner(owner)

	// Log in and obtain a bearer token.
	rec = doJSON(t, router, http.MethodPost, "/api/login", "", api.LoginRequest{
		Username: "root",
		Password: "sekret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login api.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "root", login.Username)

	// Creating without a token is rejected before the handler runs.
	rec = doJSON(t, router, http.MethodPost, "/api/blogs", "", api.BlogRequest{
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Create a blog; omitted likes defaults to 0 and the owner view rides along.
	rec = doJSON(t, router, http.MethodPost, "/api/blogs", login.Token, api.BlogRequest{
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created api.BlogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "React patterns", created.Title)
	assert.Equal(t, 0, created.Likes)
	require.NotNil(t, created.User)
	assert.Equal(t, "root", created.User.Username)

	// Anyone can list blogs.
	rec = doJSON(t, router, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []api.BlogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Len(t, listed, 1)

	// A different authenticated user cannot touch the blog.
	rec = doJSON(t, router, http.MethodPost, "/api/users", "", api.CreateUserRequest{
		Username: "testuser",
		Name:     "Test User",
		Password: "sekret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/login", "", api.LoginRequest{
		Username: "testuser",
		Password: "sekret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var otherLogin api.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&otherLogin))

	rec = doJSON(t, router, http.MethodPut, "/api/blogs/"+created.ID.String(), otherLogin.Token, api.BlogRequest{
		Title:  "Hijacked title",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/blogs/"+created.ID.String(), otherLogin.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, blogStore.Blogs, 1)

	// The owner updates the like count.
	likes := 8
	rec = doJSON(t, router, http.MethodPut, "/api/blogs/"+created.ID.String(), login.Token, api.BlogRequest{
		Title:  "React patterns",
		Author: "Michael Chan",
		URL:    "https://reactpatterns.com/",
		Likes:  &likes,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated api.BlogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, 8, updated.Likes)

	// And finally removes the blog.
	rec = doJSON(t, router, http.MethodDelete, "/api/blogs/"+created.ID.String(), login.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, blogStore.Blogs)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/users", "", api.CreateUserRequest{
		Username: "root",
		Password: "sekret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Unknown username and wrong password are indistinguishable.
	recUnknown := doJSON(t, router, http.MethodPost, "/api/login", "", api.LoginRequest{
		Username: "nobody",
		Password: "sekret",
	})
	recWrongPw := doJSON(t, router, http.MethodPost, "/api/login", "", api.LoginRequest{
		Username: "root",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrongPw.Code)

	var unknownBody, wrongPwBody struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(recUnknown.Body).Decode(&unknownBody))
	require.NoError(t, json.NewDecoder(recWrongPw.Body).Decode(&wrongPwBody))
	assert.Equal(t, unknownBody.Error, wrongPwBody.Error)
}

func TestRouterMiscRoutes(t *testing.T) {
	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
