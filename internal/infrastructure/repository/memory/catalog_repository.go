package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-market/internal/domain/drift"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
)

// CatalogRepository keeps the catalog rows in process. Load drifts them like the file
// backed catalog does. A nil roller disables drift.
type CatalogRepository struct {
	mu      sync.Mutex
	players []player.Player
	roller  *drift.Roller
}

func NewCatalogRepository(players []player.Player, roller *drift.Roller) *CatalogRepository {
	return &CatalogRepository{
		players: append([]player.Player(nil), players...),
		roller:  roller,
	}
}

func (r *CatalogRepository) Load(_ context.Context) (map[int64]player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roller != nil {
		for i, p := range r.players {
			r.players[i] = drift.Apply(p, r.roller.Roll(p.IsGoalkeeper()))
		}
	}

	out := make(map[int64]player.Player, len(r.players))
	for _, p := range r.players {
		out[p.ID] = p
	}
	return out, nil
}

func (r *CatalogRepository) Snapshot(_ context.Context) ([]player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)
	return out, nil
}
