package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// VisitorService records page visits keyed by network address.
type VisitorService interface {
	// Track upserts the visitor for hit.IPAddress and appends one visit
	// event. Callers treat failures as best-effort telemetry.
	Track(ctx context.Context, hit model.VisitorHit) error
}
