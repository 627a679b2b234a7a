package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikoski/bloglist-api/internal/domain"
)

func TestNewBlog(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("valid blog", func(t *testing.T) {
		t.Parallel()

		blog, err := domain.NewBlog(ownerID, "React patterns", "Michael Chan", "https://reactpatterns.com/", 7)
		require.NoError(t, err)
		require.NotNil(t, blog)
		assert.NotEqual(t, uuid.Nil, blog.ID)
		assert.Equal(t, ownerID, blog.UserID)
		assert.Equal(t, 7, blog.Likes)
	})

	t.Run("zero likes are valid", func(t *testing.T) {
		t.Parallel()

		blog, err := domain.NewBlog(ownerID, "React patterns", "Michael Chan", "https://reactpatterns.com/", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, blog.Likes)
	})

	tests := []struct {
		name    string
		title   string
		author  string
		url     string
		likes   int
		owner   uuid.UUID
		wantErr error
	}{
		{
			name:    "empty title",
			title:   "",
			author:  "Michael Chan",
			url:     "https://reactpatterns.com/",
			owner:   ownerID,
			wantErr: domain.ErrEmptyTitle,
		},
		{
			name:    "title too short",
			title:   "Reac",
			author:  "Michael Chan",
			url:     "https://reactpatterns.com/",
			owner:   ownerID,
			wantErr: domain.ErrTitleTooShort,
		},
		{
			name:    "empty author",
			title:   "React patterns",
			author:  "",
			url:     "https://reactpatterns.com/",
			owner:   ownerID,
			wantErr: domain.ErrEmptyAuthor,
		},
		{
			name:    "empty url",
			title:   "React patterns",
			author:  "Michael Chan",
			url:     "",
			owner:   ownerID,
			wantErr: domain.ErrEmptyURL,
		},
		{
			name:    "negative likes",
			title:   "React patterns",
			author:  "Michael Chan",
			url:     "https://reactpatterns.com/",
			likes:   -1,
			owner:   ownerID,
			wantErr: domain.ErrNegativeLikes,
		},
		{
			name:    "missing owner",
			title:   "React patterns",
			author:  "Michael Chan",
			url:     "https://reactpatterns.com/",
			owner:   uuid.Nil,
			wantErr: domain.ErrEmptyBlogOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blog, err := domain.NewBlog(tt.owner, tt.title, tt.author, tt.url, tt.likes)
			assert.Nil(t, blog)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBlogSummary(t *testing.T) {
	t.Parallel()

	blog, err := domain.NewBlog(uuid.New(), "React patterns", "Michael Chan", "https://reactpatterns.com/", 7)
	require.NoError(t, err)

	summary := blog.Summary()
	assert.Equal(t, blog.ID, summary.ID)
	assert.Equal(t, "React patterns", summary.Title)
	assert.Equal(t, "Michael Chan", summary.Author)
	assert.Equal(t, "https://reactpatterns.com/", summary.URL)
}
