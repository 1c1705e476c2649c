package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-market/internal/domain/ledger"
)

type LedgerRepository struct {
	mu     sync.RWMutex
	doc    ledger.Document
	writes int
}

func NewLedgerRepository(doc ledger.Document) *LedgerRepository {
	return &LedgerRepository{doc: doc.Clone()}
}

func (r *LedgerRepository) Read(_ context.Context) (ledger.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.doc.Clone(), nil
}

func (r *LedgerRepository) Write(_ context.Context, doc ledger.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc = doc.Clone()
	r.writes++
	return nil
}

// Writes counts stored documents.
func (r *LedgerRepository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.writes
}
