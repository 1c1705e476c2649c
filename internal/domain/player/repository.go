package player

import "context"

// Catalog describes access to the player catalog snapshot.
type Catalog interface {
	// Load applies drift to the backing snapshot, then returns every player keyed by id.
	Load(ctx context.Context) (map[int64]Player, error)
	// Snapshot returns the players in row order without drifting them.
	Snapshot(ctx context.Context) ([]Player, error)
}
