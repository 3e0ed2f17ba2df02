package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	List(ctx context.Context, includeArchived bool) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
	UpdateImageURL(ctx context.Context, id, imageURL string) error
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, tech_stack,
	COALESCE(github_url, ''), COALESCE(live_url, ''), COALESCE(image_url, ''),
	featured, sort_order, status, created_at, updated_at`

// Create inserts a new projects row. The ID is assigned here.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projects (id, title, description, tech_stack, github_url, live_url, image_url,
		                       featured, sort_order, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11, $11)`,
		p.ID, p.Title, p.Description, p.TechStack, p.GitHubURL, p.LiveURL, p.ImageURL,
		p.Featured, p.SortOrder, p.Status, now,
	)
	return err
}

// List returns projects, featured first then by sort_order. Archived
// projects are included only when includeArchived is set.
func (r *PgProjectRepository) List(ctx context.Context, includeArchived bool) ([]*model.Project, error) {
	where := " WHERE status = 'active'"
	if includeArchived {
		where = ""
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects`+where+
			` ORDER BY featured DESC, sort_order ASC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID returns a single project or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update rewrites all author-supplied fields of a project.
func (r *PgProjectRepository) Update(ctx context.Context, p *model.Project) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET title = $2, description = $3, tech_stack = $4,
		        github_url = NULLIF($5, ''), live_url = NULLIF($6, ''),
		        featured = $7, sort_order = $8, status = $9, updated_at = NOW()
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, p.TechStack, p.GitHubURL, p.LiveURL,
		p.Featured, p.SortOrder, p.Status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project row.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateImageURL sets (or clears) the uploaded image URL for a project.
func (r *PgProjectRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET image_url = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`,
		id, imageURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack,
		&p.GitHubURL, &p.LiveURL, &p.ImageURL,
		&p.Featured, &p.SortOrder, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return &p, nil
}
