package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// BlogRepository defines the persistence interface for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, p *model.BlogPost) error
	List(ctx context.Context, publishedOnly bool) ([]*model.BlogPost, error)
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)
	// FetchBySlug returns a published post and increments its view
	// counter by exactly one, atomically.
	FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Update(ctx context.Context, p *model.BlogPost) error
	Delete(ctx context.Context, id string) error
	TotalViews(ctx context.Context) (int, error)
}

// PgBlogRepository is the PostgreSQL implementation of BlogRepository.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgBlogRepository creates a PgBlogRepository backed by the given pool.
func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ BlogRepository = (*PgBlogRepository)(nil)

const blogColumns = `id, title, slug, COALESCE(excerpt, ''), content, tags,
	published, views, created_at, updated_at`

const uniqueViolation = "23505"

// Create inserts a new blog_posts row. Returns ErrDuplicate when the
// slug is already taken.
func (r *PgBlogRepository) Create(ctx context.Context, p *model.BlogPost) error {
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO blog_posts (id, title, slug, excerpt, content, tags, published, views, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, 0, $8, $8)`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Tags, p.Published, now,
	)
	return mapDuplicate(err)
}

// List returns blog posts, newest first. Unpublished drafts are
// included only when publishedOnly is false.
func (r *PgBlogRepository) List(ctx context.Context, publishedOnly bool) ([]*model.BlogPost, error) {
	where := ""
	if publishedOnly {
		where = " WHERE published"
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blog_posts`+where+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetByID returns a single post (published or not) or ErrNotFound.
func (r *PgBlogRepository) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	p, err := scanBlogPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// FetchBySlug increments the view counter and returns the post in one
// statement, so concurrent fetches each count exactly once. Unknown or
// unpublished slugs return ErrNotFound.
func (r *PgBlogRepository) FetchBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE blog_posts SET views = views + 1
		 WHERE slug = $1 AND published
		 RETURNING `+blogColumns, slug)
	p, err := scanBlogPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update rewrites the author-supplied fields of a post. Returns
// ErrDuplicate when the new slug collides with another post.
func (r *PgBlogRepository) Update(ctx context.Context, p *model.BlogPost) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE blog_posts SET title = $2, slug = $3, excerpt = NULLIF($4, ''),
		        content = $5, tags = $6, published = $7, updated_at = NOW()
		 WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Tags, p.Published,
	)
	if err != nil {
		return mapDuplicate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a blog post row.
func (r *PgBlogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TotalViews returns the sum of view counters across all posts.
func (r *PgBlogRepository) TotalViews(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(views), 0) FROM blog_posts`).Scan(&n)
	return n, err
}

func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	var p model.BlogPost
	if err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Tags,
		&p.Published, &p.Views, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}
