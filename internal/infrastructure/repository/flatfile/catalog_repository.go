package flatfile

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fantasy-market/internal/domain/drift"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
)

// CatalogRepository serves the player catalog from a CSV document.
type CatalogRepository struct {
	handle storage.Handle
	roller *drift.Roller
}

func NewCatalogRepository(handle storage.Handle, roller *drift.Roller) *CatalogRepository {
	if roller == nil {
		roller = drift.NewRoller(nil, true)
	}
	return &CatalogRepository{
		handle: handle,
		roller: roller,
	}
}

// Load drifts every row of the backing document, writes it back, then re-reads it.
// Duplicate ids resolve to the last row.
func (r *CatalogRepository) Load(ctx context.Context) (map[int64]player.Player, error) {
	if err := r.Drift(ctx); err != nil {
		return nil, err
	}

	players, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]player.Player, len(players))
	for _, p := range players {
		out[p.ID] = p
	}
	return out, nil
}

// Drift rewrites market values and stats of every data row in place.
// A malformed row aborts before anything is written.
func (r *CatalogRepository) Drift(ctx context.Context) error {
	body, err := r.handle.ReadAll(ctx)
	if err != nil {
		return crerr.Wrap(err, "read catalog for drift")
	}

	doc := splitCatalog(body)
	if !doc.hasHeader {
		return nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(doc.header)
	_ = buf.WriteByte('\n')
	for _, row := range doc.rows {
		p, err := decodePlayerRow(r.handle.Name(), row)
		if err != nil {
			return err
		}
		drifted := drift.Apply(p, r.roller.Roll(p.IsGoalkeeper()))
		writeDriftedRow(buf, row, drifted)
	}

	if err := r.handle.ReplaceAll(ctx, buf.Bytes()); err != nil {
		return crerr.Wrap(err, "write drifted catalog")
	}
	return nil
}

func (r *CatalogRepository) Snapshot(ctx context.Context) ([]player.Player, error) {
	body, err := r.handle.ReadAll(ctx)
	if err != nil {
		return nil, crerr.Wrap(err, "read catalog")
	}

	doc := splitCatalog(body)
	out := make([]player.Player, 0, len(doc.rows))
	for _, row := range doc.rows {
		p, err := decodePlayerRow(r.handle.Name(), row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Seed writes players as a new catalog when the document does not exist yet.
// It reports whether the document was created.
func (r *CatalogRepository) Seed(ctx context.Context, players []player.Player) (bool, error) {
	_, err := r.handle.ReadAll(ctx)
	if err == nil {
		return false, nil
	}
	if !storage.IsNotExist(err) {
		return false, crerr.Wrap(err, "check catalog")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(catalogHeader)
	_ = buf.WriteByte('\n')
	for _, p := range players {
		if err := writePlayerRow(buf, r.handle.Name(), p); err != nil {
			return false, err
		}
	}

	if err := r.handle.ReplaceAll(ctx, buf.Bytes()); err != nil {
		return false, crerr.Wrap(err, "write seeded catalog")
	}
	return true, nil
}
