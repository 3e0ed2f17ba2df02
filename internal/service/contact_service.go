package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
)

// ValidationError rejects a submission before any side effect occurs.
// Code is a stable snake_case identifier suitable for API responses.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string { return e.Code }

// ErrNotify marks a failure of the outbound notification emails. The
// submission is already persisted when this is returned.
var ErrNotify = errors.New("notification failed")

// ContactService defines the business logic for the contact workflow:
// validate, persist, then notify.
type ContactService interface {
	// Submit validates and normalizes c, persists it with status "new",
	// then dispatches the operator alert and sender acknowledgment.
	// Validation failures return *ValidationError before any write; a
	// send failure returns an error wrapping ErrNotify after the record
	// is already stored.
	Submit(ctx context.Context, c *model.Contact) error

	// List returns a page of contacts for the admin view.
	List(ctx context.Context, opts model.ContactListOptions) (*model.ContactListResult, error)

	// UpdateStatus sets the status of a contact.
	UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error)
}
