package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact
// submissions. It is defined here (in repository) to avoid an import
// cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, c *model.Contact) error
	List(ctx context.Context, opts model.ContactListOptions) (*model.ContactListResult, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	Recent(ctx context.Context, limit int) ([]*model.Contact, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, subject, message,
	COALESCE(ip_address, ''), COALESCE(user_agent, ''),
	status, created_at, read_at, replied_at`

// Save inserts a new contacts row. The ID is assigned here.
func (r *PgContactRepository) Save(ctx context.Context, c *model.Contact) error {
	c.ID = uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contacts (id, name, email, subject, message, ip_address, user_agent, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9)`,
		c.ID, c.Name, c.Email, c.Subject, c.Message, c.IPAddress, c.UserAgent, c.Status, c.CreatedAt,
	)
	return err
}

// List returns a page of contacts, newest first, optionally filtered by
// status. Page numbers are 1-based; TotalPages is ceil(total/size).
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactListResult, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, "status = $1")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contacts"+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	size := opts.Size
	if size < 1 {
		size = 20
	}

	limitArg := strconv.Itoa(len(args) + 1)
	offsetArg := strconv.Itoa(len(args) + 2)
	args = append(args, size, (page-1)*size)

	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts`+where+
			` ORDER BY created_at DESC LIMIT $`+limitArg+` OFFSET $`+offsetArg,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, err
	}

	return &model.ContactListResult{
		Contacts:   contacts,
		Total:      total,
		Page:       page,
		TotalPages: (total + size - 1) / size,
	}, nil
}

// UpdateStatus sets the status of a contact and stamps read_at /
// replied_at the first time the contact enters that status. Returns
// ErrNotFound if no contact has the given id.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`UPDATE contacts SET
			status = $2,
			read_at = CASE WHEN $2 = 'read' AND read_at IS NULL THEN NOW() ELSE read_at END,
			replied_at = CASE WHEN $2 = 'replied' AND replied_at IS NULL THEN NOW() ELSE replied_at END
		 WHERE id = $1
		 RETURNING `+contactColumns,
		id, status,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.IPAddress, &c.UserAgent,
		&c.Status, &c.CreatedAt, &c.ReadAt, &c.RepliedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CountByStatus returns the number of contacts with the given status,
// or the total count when status is empty.
func (r *PgContactRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	var err error
	if status == "" {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	} else {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE status = $1`, status).Scan(&n)
	}
	return n, err
}

// Recent returns the most recently created contacts.
func (r *PgContactRepository) Recent(ctx context.Context, limit int) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContacts(rows)
}

func scanContacts(rows pgx.Rows) ([]*model.Contact, error) {
	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message,
			&c.IPAddress, &c.UserAgent, &c.Status, &c.CreatedAt, &c.ReadAt, &c.RepliedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}
