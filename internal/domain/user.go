package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooShort    = errors.New("username must be at least 3 characters long")
	ErrPasswordTooShort    = errors.New("password must be at least 3 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// MinUsernameLength is the minimum number of characters in a username.
const MinUsernameLength = 3

// MinPasswordLength is the minimum number of characters in a plaintext password.
const MinPasswordLength = 3

// User represents a registered author of the bloglist application.
// The Blogs field holds a reduced view of the blogs the user owns; it is
// populated by joined reads and is derived from the blog owner relation,
// not stored on the user record itself.
type User struct {
	ID             uuid.UUID     `json:"id"`
	Username       string        `json:"username"`
	Name           string        `json:"name,omitempty"`
	Password       string        `json:"-"` // Plaintext password, used temporarily during registration
	HashedPassword string        `json:"-"` // Never expose password hash in JSON
	Blogs          []BlogSummary `json:"blogs,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// UserSummary is the reduced view of a blog's owner exposed on blog reads.
// It deliberately carries no credential material.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
}

// NewUser creates a new User with the given username, display name and
// plaintext password. It generates a new UUID for the user ID and sets the
// creation/update timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(username, name, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Name:      name,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if len(u.Username) < MinUsernameLength {
		return ErrUsernameTooShort
	}

	// During registration the plaintext password is validated; existing users
	// loaded from the store carry only the hash.
	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		// bcrypt's practical input limit
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else {
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}

// Summary returns the reduced owner view of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}
