// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// OverviewCache defines the interface for caching serialized per-user
// overview payloads. Implementations store JSON blobs keyed by user and view.
type OverviewCache interface {
	// Get retrieves the cached payload for a user's view. Returns ok=false on miss.
	Get(ctx context.Context, userID uuid.UUID, view string) (payload []byte, ok bool, err error)

	// Set stores the payload for a user's view with the cache's TTL.
	Set(ctx context.Context, userID uuid.UUID, view string, payload []byte) error

	// Invalidate drops all cached views for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
