package client

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
)

// CatalogLister fetches the raw catalog.
type CatalogLister interface {
	ListCountries(ctx context.Context) ([]catalog.RawEntry, error)
}

// CatalogFeed keeps the last good active snapshot of the catalog.
type CatalogFeed struct {
	lister CatalogLister
	logger *slog.Logger

	mu       sync.RWMutex
	snapshot catalog.Snapshot
}

// NewCatalogFeed creates a feed with an empty snapshot.
func NewCatalogFeed(lister CatalogLister, logger *slog.Logger) *CatalogFeed {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogFeed{lister: lister, logger: logger, snapshot: catalog.Snapshot{}}
}

// Refresh fetches and filters the catalog. On failure the error is logged,
// the previous snapshot stays in place and no retry is attempted.
func (f *CatalogFeed) Refresh(ctx context.Context) (catalog.Snapshot, error) {
	raw, err := f.lister.ListCountries(ctx)
	if err != nil {
		f.logger.Warn("Failed to refresh catalog, keeping previous snapshot", slog.String("error", err.Error()))
		return f.Snapshot(), err
	}

	snap := catalog.FilterActive(raw)
	f.mu.Lock()
	f.snapshot = snap
	f.mu.Unlock()
	f.logger.Debug("Catalog refreshed", slog.Int("entries", len(snap)))
	return snap, nil
}

// Snapshot returns the current snapshot.
func (f *CatalogFeed) Snapshot() catalog.Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshot
}
