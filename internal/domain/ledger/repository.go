package ledger

import "context"

// Store reads and replaces the whole ledger document.
type Store interface {
	Read(ctx context.Context) (Document, error)
	Write(ctx context.Context, doc Document) error
}
