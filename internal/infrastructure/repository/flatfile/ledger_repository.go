package flatfile

import (
	"context"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-market/internal/domain/ledger"
	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
)

// LedgerRepository persists the team ledger as a single JSON document.
// It keeps no state between calls: every Read decodes the document from the handle.
type LedgerRepository struct {
	handle   storage.Handle
	validate *validator.Validate
}

func NewLedgerRepository(handle storage.Handle) *LedgerRepository {
	return &LedgerRepository{
		handle:   handle,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (r *LedgerRepository) Read(ctx context.Context) (ledger.Document, error) {
	body, err := r.handle.ReadAll(ctx)
	if err != nil {
		return ledger.Document{}, crerr.Wrap(err, "read ledger")
	}

	var model ledgerDocumentModel
	if err := sonic.ConfigStd.Unmarshal(body, &model); err != nil {
		return ledger.Document{}, storage.MarkMalformed(err, r.handle.Name())
	}
	if err := r.validate.Struct(model); err != nil {
		return ledger.Document{}, storage.Malformedf(r.handle.Name(), "missing budget: %v", err)
	}
	if model.Team == nil {
		return ledger.Document{}, storage.Malformedf(r.handle.Name(), "missing team")
	}
	for i, entry := range *model.Team {
		if err := r.validate.Struct(entry); err != nil {
			return ledger.Document{}, storage.Malformedf(r.handle.Name(), "team entry %d: %v", i, err)
		}
	}

	return model.toDomain(), nil
}

func (r *LedgerRepository) Write(ctx context.Context, doc ledger.Document) error {
	body, err := sonic.ConfigStd.Marshal(toLedgerModel(doc))
	if err != nil {
		return crerr.Wrap(err, "encode ledger")
	}

	if err := r.handle.ReplaceAll(ctx, body); err != nil {
		return crerr.Wrap(err, "write ledger")
	}
	return nil
}
