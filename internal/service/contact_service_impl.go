package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

const maxMessageLength = 5000

// emailPattern accepts the basic local@domain.tld shape. Full RFC 5322
// validation is not attempted; the acknowledgment bounce is the real
// check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactNotifier dispatches the post-submission emails. Satisfied by
// mailer.Notifier; defined here so tests can substitute a fake.
type ContactNotifier interface {
	ContactReceived(ctx context.Context, c *model.Contact) error
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a ContactService backed by the given
// repository and notifier.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit validates, persists, then notifies. Persistence happens
// before dispatch so a send failure never loses the stored record.
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	if err := normalize(c); err != nil {
		return err
	}

	c.Status = model.ContactStatusNew
	c.CreatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, c); err != nil {
		return err
	}

	if err := s.notifier.ContactReceived(ctx, c); err != nil {
		return fmt.Errorf("%w: %v", ErrNotify, err)
	}
	return nil
}

// normalize trims all fields, lower-cases the email, and rejects
// missing fields and malformed addresses. No side effects.
func normalize(c *model.Contact) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)

	switch {
	case c.Name == "":
		return &ValidationError{Code: "name_required"}
	case c.Email == "":
		return &ValidationError{Code: "email_required"}
	case c.Subject == "":
		return &ValidationError{Code: "subject_required"}
	case c.Message == "":
		return &ValidationError{Code: "message_required"}
	}
	if !emailPattern.MatchString(c.Email) {
		return &ValidationError{Code: "email_invalid"}
	}
	if len([]rune(c.Message)) > maxMessageLength {
		return &ValidationError{Code: "message_too_long"}
	}
	return nil
}

// List returns contacts according to the given filter/pagination options.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactListResult, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus changes the status of a contact. The status value is
// checked here; transitions between valid statuses are not restricted.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	if !model.ValidContactStatus(status) {
		return nil, &ValidationError{Code: "status_invalid"}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
