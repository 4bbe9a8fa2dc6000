package service

import (
	"context"

	"github.com/tynanfleet/fleetcheck/internal/checklist/domain"
	"github.com/tynanfleet/fleetcheck/internal/checklist/store"
)

// MaxListLimit bounds how many entries an audit query may return.
const MaxListLimit = 300

// AuditService is the read-only side: bulk retrieval of recent entries for
// the administrator.
type AuditService struct {
	Store store.Store
}

// ListRecent returns up to limit entries, newest first, ties broken by
// insertion order. Limits outside (0, MaxListLimit] are clamped to the cap.
func (s *AuditService) ListRecent(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.Store.Entries().ListRecent(ctx, limit)
}
