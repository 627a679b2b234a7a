package bloglist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/domain/bloglist"
)

func sampleBlogs() []domain.Blog {
	return []domain.Blog{
		{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
		{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
		{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
		{Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll", Likes: 10},
		{Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
		{Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
	}
}

func TestTotalLikes(t *testing.T) {
	t.Parallel()

	t.Run("no blogs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, bloglist.TotalLikes(nil))
	})

	t.Run("one blog", func(t *testing.T) {
		t.Parallel()
		blogs := sampleBlogs()[1:2]
		assert.Equal(t, 5, bloglist.TotalLikes(blogs))
	})

	t.Run("multiple blogs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 36, bloglist.TotalLikes(sampleBlogs()))
	})
}

func TestFavoriteBlog(t *testing.T) {
	t.Parallel()

	t.Run("no blogs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, bloglist.FavoriteBlog(nil))
	})

	t.Run("one blog", func(t *testing.T) {
		t.Parallel()
		blogs := sampleBlogs()[:1]
		favorite := bloglist.FavoriteBlog(blogs)
		require.NotNil(t, favorite)
		assert.Equal(t, "React patterns", favorite.Title)
	})

	t.Run("multiple blogs", func(t *testing.T) {
		t.Parallel()
		favorite := bloglist.FavoriteBlog(sampleBlogs())
		require.NotNil(t, favorite)
		assert.Equal(t, "Canonical string reduction", favorite.Title)
		assert.Equal(t, 12, favorite.Likes)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Parallel()

	t.Run("no blogs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, bloglist.MostBlogs(nil))
	})

	t.Run("multiple blogs", func(t *testing.T) {
		t.Parallel()
		top := bloglist.MostBlogs(sampleBlogs())
		require.NotNil(t, top)
		assert.Equal(t, "Robert C. Martin", top.Author)
		assert.Equal(t, 3, top.Blogs)
	})
}

func TestMostLikes(t *testing.T) {
	t.Parallel()

	t.Run("no blogs", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, bloglist.MostLikes(nil))
	})

	t.Run("multiple blogs", func(t *testing.T) {
		t.Parallel()
		top := bloglist.MostLikes(sampleBlogs())
		require.NotNil(t, top)
		assert.Equal(t, "Edsger W. Dijkstra", top.Author)
		assert.Equal(t, 17, top.Likes)
	})
}
