package api

import (
	"github.com/google/uuid"

	"github.com/avikoski/bloglist-api/internal/domain"
)

// Common request/response structures

// CreateUserRequest defines the payload for the user registration endpoint.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"     validate:"omitempty"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=3"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// BlogRequest defines the payload for blog create and update endpoints.
// Likes is a pointer so an omitted field can be distinguished from an
// explicit zero; omitted defaults to 0.
type BlogRequest struct {
	Title  string `json:"title"  validate:"required,min=5"`
	Author string `json:"author" validate:"required"`
	URL    string `json:"url"    validate:"required"`
	Likes  *int   `json:"likes"  validate:"omitempty,gte=0"`
}

// LikesOrDefault returns the requested like count, defaulting to 0 when the
// field was omitted.
func (r *BlogRequest) LikesOrDefault() int {
	if r.Likes == nil {
		return 0
	}
	return *r.Likes
}

// OwnerResponse is the reduced owner view attached to blog responses.
// It never carries credential material.
type OwnerResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
}

// BlogResponse defines the representation of a blog returned by the API.
type BlogResponse struct {
	ID     uuid.UUID      `json:"id"`
	Title  string         `json:"title"`
	Author string         `json:"author"`
	URL    string         `json:"url"`
	Likes  int            `json:"likes"`
	User   *OwnerResponse `json:"user,omitempty"`
}

// BlogRefResponse is the reduced blog view attached to user responses.
type BlogRefResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	URL    string    `json:"url"`
}

// UserResponse defines the representation of a user returned by the API.
// The password hash is never serialized outward.
type UserResponse struct {
	ID       uuid.UUID         `json:"id"`
	Username string            `json:"username"`
	Name     string            `json:"name,omitempty"`
	Blogs    []BlogRefResponse `json:"blogs"`
}

// newBlogResponse converts a domain blog to its API representation.
func newBlogResponse(blog *domain.Blog) BlogResponse {
	resp := BlogResponse{
		ID:     blog.ID,
		Title:  blog.Title,
		Author: blog.Author,
		URL:    blog.URL,
		Likes:  blog.Likes,
	}
	if blog.Owner != nil {
		resp.User = &OwnerResponse{
			ID:       blog.Owner.ID,
			Username: blog.Owner.Username,
			Name:     blog.Owner.Name,
		}
	}
	return resp
}

// newUserResponse converts a domain user to its API representation.
func newUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Blogs:    make([]BlogRefResponse, 0, len(user.Blogs)),
	}
	for _, b := range user.Blogs {
		resp.Blogs = append(resp.Blogs, BlogRefResponse{
			ID:     b.ID,
			Title:  b.Title,
			Author: b.Author,
			URL:    b.URL,
		})
	}
	return resp
}
