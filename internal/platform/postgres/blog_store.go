package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avikoski/bloglist-api/internal/domain"
	"github.com/avikoski/bloglist-api/internal/platform/logger"
	"github.com/avikoski/bloglist-api/internal/store"
)

// PostgresBlogStore implements the store.BlogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBlogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBlogStore creates a new PostgreSQL implementation of the
// BlogStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, the
// default logger is used.
func NewPostgresBlogStore(db store.DBTX, logger *slog.Logger) *PostgresBlogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBlogStore{
		db:     db,
		logger: logger.With(slog.String("component", "blog_store")),
	}
}

// Ensure PostgresBlogStore implements store.BlogStore interface
var _ store.BlogStore = (*PostgresBlogStore)(nil)

// Create implements store.BlogStore.Create.
// Returns store.ErrInvalidEntity if the owner does not exist (foreign key
// violation on user_id).
func (s *PostgresBlogStore) Create(ctx context.Context, blog *domain.Blog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := blog.Validate(); err != nil {
		log.Warn("blog validation failed during create",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return err
	}

	query := `
		INSERT INTO blogs (id, title, author, url, likes, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		blog.ID,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
		blog.CreatedAt,
		blog.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during blog creation",
				slog.String("blog_id", blog.ID.String()),
				slog.String("user_id", blog.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, blog.UserID)
		}

		log.Error("failed to create blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()),
			slog.String("user_id", blog.UserID.String()))
		return MapError(err)
	}

	log.Info("blog created",
		slog.String("blog_id", blog.ID.String()),
		slog.String("user_id", blog.UserID.String()))
	return nil
}

// GetByID implements store.BlogStore.GetByID.
// Returns store.ErrBlogNotFound if the blog does not exist.
func (s *PostgresBlogStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id,
		       b.created_at, b.updated_at,
		       u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1
	`

	blog, err := scanBlogWithOwner(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrBlogNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return nil, mapped
	}
	return blog, nil
}

// List implements store.BlogStore.List.
// Blogs are returned in creation order, each with the reduced owner view.
func (s *PostgresBlogStore) List(ctx context.Context) ([]*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id,
		       b.created_at, b.updated_at,
		       u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	blogs := make([]*domain.Blog, 0)
	for rows.Next() {
		blog, err := scanBlogWithOwner(rows)
		if err != nil {
			return nil, MapError(err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return blogs, nil
}

// UpdateOwned implements store.BlogStore.UpdateOwned.
// The ownership condition is part of the UPDATE statement itself, so a blog
// owned by someone else is indistinguishable from a missing one: both yield
// store.ErrBlogNotFound.
func (s *PostgresBlogStore) UpdateOwned(
	ctx context.Context,
	ownerID uuid.UUID,
	blog *domain.Blog,
) (*domain.Blog, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6
		RETURNING id, title, author, url, likes, user_id, created_at, updated_at
	`
	var updated domain.Blog
	err := s.db.QueryRowContext(
		ctx,
		query,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.ID,
		ownerID,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Author,
		&updated.URL,
		&updated.Likes,
		&updated.UserID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("scoped blog update matched no row",
				slog.String("blog_id", blog.ID.String()),
				slog.String("owner_id", ownerID.String()))
			return nil, store.ErrBlogNotFound
		}
		log.Error("failed to update blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", blog.ID.String()))
		return nil, mapped
	}

	// Response enrichment only; the ownership gate above already committed.
	owner, err := s.ownerSummary(ctx, updated.UserID)
	if err != nil {
		return nil, err
	}
	updated.Owner = owner

	log.Info("blog updated",
		slog.String("blog_id", updated.ID.String()),
		slog.String("user_id", updated.UserID.String()))
	return &updated, nil
}

// DeleteOwned implements store.BlogStore.DeleteOwned.
// Same masking discipline as UpdateOwned: absent and not-owned both return
// store.ErrBlogNotFound.
func (s *PostgresBlogStore) DeleteOwned(ctx context.Context, ownerID, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM blogs WHERE id = $1 AND user_id = $2`
	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete blog",
			slog.String("error", err.Error()),
			slog.String("blog_id", id.String()))
		return MapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		log.Debug("scoped blog delete matched no row",
			slog.String("blog_id", id.String()),
			slog.String("owner_id", ownerID.String()))
		return store.ErrBlogNotFound
	}

	log.Info("blog deleted",
		slog.String("blog_id", id.String()),
		slog.String("user_id", ownerID.String()))
	return nil
}

func (s *PostgresBlogStore) ownerSummary(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.UserSummary, error) {
	query := `SELECT id, username, name FROM users WHERE id = $1`
	var owner domain.UserSummary
	err := s.db.QueryRowContext(ctx, query, userID).
		Scan(&owner.ID, &owner.Username, &owner.Name)
	if err != nil {
		return nil, MapError(err)
	}
	return &owner, nil
}

func scanBlogWithOwner(row rowScanner) (*domain.Blog, error) {
	var blog domain.Blog
	var owner domain.UserSummary
	err := row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&blog.UserID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&owner.ID,
		&owner.Username,
		&owner.Name,
	)
	if err != nil {
		return nil, err
	}
	blog.Owner = &owner
	return &blog, nil
}
