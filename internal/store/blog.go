package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/avikoski/bloglist-api/internal/domain"
)

// BlogStore defines the interface for blog data persistence.
//
// UpdateOwned and DeleteOwned implement the ownership gate as a scoped
// find-and-mutate: the ownership condition is part of the single store
// operation (filtered by both blog ID and owner ID), so there is no window
// between an ownership check and the write.
type BlogStore interface {
	// Create saves a new blog to the store. The blog's UserID must reference
	// an existing user. Returns ErrInvalidEntity if the owner does not exist.
	// Returns validation errors from the domain Blog if data is invalid.
	Create(ctx context.Context, blog *domain.Blog) error

	// GetByID retrieves a blog by its unique ID, with Owner populated.
	// Returns ErrBlogNotFound if the blog does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error)

	// List returns all blogs ordered by creation time, each with Owner
	// populated with the reduced owner view.
	List(ctx context.Context) ([]*domain.Blog, error)

	// UpdateOwned updates the mutable fields (title, author, url, likes) of
	// the blog with the given ID, but only if it is owned by ownerID. The
	// lookup and the write are a single conditional operation.
	// Returns the updated blog with Owner populated, or ErrBlogNotFound if no
	// blog matches both the ID and the owner.
	UpdateOwned(ctx context.Context, ownerID uuid.UUID, blog *domain.Blog) (*domain.Blog, error)

	// DeleteOwned removes the blog with the given ID, but only if it is owned
	// by ownerID. Returns ErrBlogNotFound if no blog matches both the ID and
	// the owner.
	DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error
}
