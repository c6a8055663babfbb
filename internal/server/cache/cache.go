// Package cache keeps a short-lived copy of the full user list so repeated
// reads do not hit the store.
package cache

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// ListCache stores the result of a full directory listing.
//
// Get reports ok=false on a miss. Every Invalidate advances the version.
// A reader takes Version before querying the store and passes it to Set;
// Set stores nothing if the version has moved on, so a listing read
// before a write can never outlive that write's invalidation.
type ListCache interface {
	Get(ctx context.Context) (users []models.User, ok bool, err error)
	Version(ctx context.Context) (int64, error)
	Set(ctx context.Context, version int64, users []models.User) error
	Invalidate(ctx context.Context) error
	Close() error
}

// NopListCache is used when no cache backend is configured. Every Get misses.
type NopListCache struct{}

func (NopListCache) Get(context.Context) ([]models.User, bool, error) { return nil, false, nil }
func (NopListCache) Version(context.Context) (int64, error)           { return 0, nil }
func (NopListCache) Set(context.Context, int64, []models.User) error  { return nil }
func (NopListCache) Invalidate(context.Context) error                 { return nil }
func (NopListCache) Close() error                                     { return nil }
