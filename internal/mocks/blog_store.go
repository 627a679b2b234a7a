package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/store"
)

// MockBlogStore implements store.BlogStore for testing.
type MockBlogStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, blog *domain.Blog) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	ListFn        func(ctx context.Context) ([]*domain.Blog, error)
	UpdateOwnedFn func(ctx context.Context, ownerID uuid.UUID, blog *domain.Blog) (*domain.Blog, error)
	DeleteOwnedFn func(ctx context.Context, ownerID, id uuid.UUID) error

	// Data for default implementation
	Blogs map[uuid.UUID]*domain.Blog
	// Owners resolves owner IDs to reduced owner views for joined reads.
	Owners map[uuid.UUID]domain.UserSummary

	CreateError error
	LookupError error
}

// Ensure MockBlogStore implements store.BlogStore interface
var _ store.BlogStore = (*MockBlogStore)(nil)

// NewMockBlogStore creates a new mock store with initialized defaults.
func NewMockBlogStore() *MockBlogStore {
	return &MockBlogStore{
		Blogs:  make(map[uuid.UUID]*domain.Blog),
		Owners: make(map[uuid.UUID]domain.UserSummary),
	}
}

// AddOwner registers a reduced owner view used to populate Owner on reads.
func (m *MockBlogStore) AddOwner(user *domain.User) {
	m.Owners[user.ID] = user.Summary()
}

// Create implements the BlogStore interface.
func (m *MockBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, blog)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Blogs[blog.ID] = blog
	return nil
}

// GetByID implements the BlogStore interface.
func (m *MockBlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.LookupError != nil {
		return nil, m.LookupError
	}

	blog, exists := m.Blogs[id]
	if !exists {
		return nil, store.ErrBlogNotFound
	}
	return m.withOwner(blog), nil
}

// List implements the BlogStore interface.
func (m *MockBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.LookupError != nil {
		return nil, m.LookupError
	}

	blogs := make([]*domain.Blog, 0, len(m.Blogs))
	for _, blog := range m.Blogs {
		blogs = append(blogs, m.withOwner(blog))
	}
	sort.Slice(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.Before(blogs[j].CreatedAt)
	})
	return blogs, nil
}

// UpdateOwned implements the BlogStore interface. It mirrors the scoped
// find-and-update of the real store: a blog that is absent or owned by a
// different user returns store.ErrBlogNotFound.
func (m *MockBlogStore) UpdateOwned(
	ctx context.Context,
	ownerID uuid.UUID,
	blog *domain.Blog,
) (*domain.Blog, error) {
	if m.UpdateOwnedFn != nil {
		return m.UpdateOwnedFn(ctx, ownerID, blog)
	}

	if m.LookupError != nil {
		return nil, m.LookupError
	}

	existing, exists := m.Blogs[blog.ID]
	if !exists || existing.UserID != ownerID {
		return nil, store.ErrBlogNotFound
	}

	existing.Title = blog.Title
	existing.Author = blog.Author
	existing.URL = blog.URL
	existing.Likes = blog.Likes
	existing.UpdatedAt = time.Now().UTC()
	return m.withOwner(existing), nil
}

// DeleteOwned implements the BlogStore interface with the same scoped
// discipline as UpdateOwned.
func (m *MockBlogStore) DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteOwnedFn != nil {
		return m.DeleteOwnedFn(ctx, ownerID, id)
	}

	if m.LookupError != nil {
		return m.LookupError
	}

	existing, exists := m.Blogs[id]
	if !exists || existing.UserID != ownerID {
		return store.ErrBlogNotFound
	}

	delete(m.Blogs, id)
	return nil
}

func (m *MockBlogStore) withOwner(blog *domain.Blog) *domain.Blog {
	copied := *blog
	if owner, ok := m.Owners[blog.UserID]; ok {
		copied.Owner = &owner
	}
	return &copied
}
