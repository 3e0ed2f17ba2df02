package service

import (
	"context"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// visitorServiceImpl is the production implementation of VisitorService.
type visitorServiceImpl struct {
	repo repository.VisitorRepository
}

// NewVisitorService creates a VisitorService backed by the given repository.
func NewVisitorService(repo repository.VisitorRepository) VisitorService {
	return &visitorServiceImpl{repo: repo}
}

// Track records one page visit. Unknown addresses create a record with
// a single event; known addresses append and flip the returning flag.
// The upsert is a single statement, so concurrent hits from the same
// address cannot overwrite each other's events.
func (s *visitorServiceImpl) Track(ctx context.Context, hit model.VisitorHit) error {
	if hit.IPAddress == "" {
		return nil
	}
	return s.repo.RecordHit(ctx, hit, time.Now().UTC())
}
