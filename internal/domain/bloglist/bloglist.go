// Package bloglist provides aggregation helpers over collections of blogs.
// All functions are pure and treat the input slice as read-only.
package bloglist

import "github.com/avikoski/bloglist-api/internal/domain"

// AuthorCount pairs an author with the number of blogs they have written.
type AuthorCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with the total likes across their blogs.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes returns the sum of likes across all blogs.
func TotalLikes(blogs []domain.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// slice. Ties resolve to the first blog with the maximum like count.
func FavoriteBlog(blogs []domain.Blog) *domain.Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := &blogs[0]
	for i := range blogs[1:] {
		if blogs[i+1].Likes > favorite.Likes {
			favorite = &blogs[i+1]
		}
	}
	return favorite
}

// MostBlogs returns the author with the largest number of blogs, or nil for
// an empty slice.
func MostBlogs(blogs []domain.Blog) *AuthorCount {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, b := range blogs {
		counts[b.Author]++
	}

	var top *AuthorCount
	for _, b := range blogs {
		if top == nil || counts[b.Author] > top.Blogs {
			top = &AuthorCount{Author: b.Author, Blogs: counts[b.Author]}
		}
	}
	return top
}

// MostLikes returns the author whose blogs have accumulated the most likes,
// or nil for an empty slice.
func MostLikes(blogs []domain.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	likes := make(map[string]int)
	for _, b := range blogs {
		likes[b.Author] += b.Likes
	}

	var top *AuthorLikes
	for _, b := range blogs {
		if top == nil || likes[b.Author] > top.Likes {
			top = &AuthorLikes{Author: b.Author, Likes: likes[b.Author]}
		}
	}
	return top
}
