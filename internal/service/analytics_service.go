package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

const recentLimit = 10

// AnalyticsService assembles the admin dashboard overview.
type AnalyticsService interface {
	Overview(ctx context.Context) (*model.AnalyticsOverview, error)
}

// analyticsServiceImpl aggregates across the visitor, contact and blog
// repositories.
type analyticsServiceImpl struct {
	visitors repository.VisitorRepository
	contacts repository.ContactRepository
	blog     repository.BlogRepository
}

// NewAnalyticsService creates an AnalyticsService over the given repositories.
func NewAnalyticsService(visitors repository.VisitorRepository, contacts repository.ContactRepository, blog repository.BlogRepository) AnalyticsService {
	return &analyticsServiceImpl{visitors: visitors, contacts: contacts, blog: blog}
}

// Overview gathers counts and the most recent activity. Queries run
// sequentially; the first failure aborts.
func (s *analyticsServiceImpl) Overview(ctx context.Context) (*model.AnalyticsOverview, error) {
	var o model.AnalyticsOverview
	var err error

	if o.TotalVisitors, err = s.visitors.Count(ctx); err != nil {
		return nil, err
	}
	if o.ReturningVisitors, err = s.visitors.CountReturning(ctx); err != nil {
		return nil, err
	}
	if o.TotalContacts, err = s.contacts.CountByStatus(ctx, ""); err != nil {
		return nil, err
	}
	if o.NewContacts, err = s.contacts.CountByStatus(ctx, model.ContactStatusNew); err != nil {
		return nil, err
	}
	if o.TotalBlogViews, err = s.blog.TotalViews(ctx); err != nil {
		return nil, err
	}
	if o.RecentVisitors, err = s.visitors.Recent(ctx, recentLimit); err != nil {
		return nil, err
	}
	if o.RecentContacts, err = s.contacts.Recent(ctx, recentLimit); err != nil {
		return nil, err
	}

	if o.RecentVisitors == nil {
		o.RecentVisitors = []*model.Visitor{}
	}
	if o.RecentContacts == nil {
		o.RecentContacts = []*model.Contact{}
	}
	return &o, nil
}
