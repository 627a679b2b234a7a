package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyBlogID    = errors.New("blog ID cannot be empty")
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrTitleTooShort  = errors.New("title must be at least 5 characters long")
	ErrEmptyAuthor    = errors.New("author cannot be empty")
	ErrEmptyURL       = errors.New("url cannot be empty")
	ErrNegativeLikes  = errors.New("likes cannot be negative")
	ErrEmptyBlogOwner = errors.New("blog owner cannot be empty")
)

// MinTitleLength is the minimum number of characters in a blog title.
const MinTitleLength = 5

// Blog represents a single blog post. The owner relation (UserID) is set at
// creation and never changes afterwards. Owner is a reduced view of the
// owning user, populated only by joined reads.
type Blog struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	URL       string       `json:"url"`
	Likes     int          `json:"likes"`
	UserID    uuid.UUID    `json:"user_id"`
	Owner     *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// BlogSummary is the reduced view of a blog exposed on user reads.
type BlogSummary struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	URL    string    `json:"url"`
}

// NewBlog creates a new Blog owned by the given user. It generates a new
// UUID for the blog ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewBlog(userID uuid.UUID, title, author, url string, likes int) (*Blog, error) {
	blog := &Blog{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		URL:       url,
		Likes:     likes,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := blog.Validate(); err != nil {
		return nil, err
	}

	return blog, nil
}

// Validate checks if the Blog has valid data.
// Returns an error if any field fails validation.
func (b *Blog) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBlogID
	}

	if b.Title == "" {
		return ErrEmptyTitle
	}

	if len(b.Title) < MinTitleLength {
		return ErrTitleTooShort
	}

	if b.Author == "" {
		return ErrEmptyAuthor
	}

	if b.URL == "" {
		return ErrEmptyURL
	}

	if b.Likes < 0 {
		return ErrNegativeLikes
	}

	if b.UserID == uuid.Nil {
		return ErrEmptyBlogOwner
	}

	return nil
}

// Summary returns the reduced view of the blog used on user reads.
func (b *Blog) Summary() BlogSummary {
	return BlogSummary{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
	}
}
