package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-market/internal/domain/ledger"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
)

// LedgerService exposes the team ledger. It holds no document between calls; every
// operation reads the store fresh and mutators write the whole document back.
type LedgerService struct {
	store  ledger.Store
	logger *logging.Logger
}

func NewLedgerService(store ledger.Store, logger *logging.Logger) *LedgerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LedgerService{
		store:  store,
		logger: logger,
	}
}

// Budget returns ledger.UnknownBudget alongside any error.
func (s *LedgerService) Budget(ctx context.Context) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.Budget")
	defer span.End()

	doc, err := s.store.Read(ctx)
	if err != nil {
		return ledger.UnknownBudget, fmt.Errorf("read ledger: %w", err)
	}
	return doc.Budget, nil
}

// BudgetOrUnknown logs read failures and reports them as ledger.UnknownBudget.
func (s *LedgerService) BudgetOrUnknown(ctx context.Context) int64 {
	budget, err := s.Budget(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "get budget failed", "kind", Classify(err).String(), "error", err)
	}
	return budget
}

func (s *LedgerService) IsOwned(ctx context.Context, playerID int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.IsOwned")
	defer span.End()

	doc, err := s.store.Read(ctx)
	if err != nil {
		return false, fmt.Errorf("read ledger: %w", err)
	}
	return doc.Owns(playerID), nil
}

// OwnsOrFalse logs read failures and reports them as not owned.
func (s *LedgerService) OwnsOrFalse(ctx context.Context, playerID int64) bool {
	owned, err := s.IsOwned(ctx, playerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "check ownership failed", "player_id", playerID, "kind", Classify(err).String(), "error", err)
		return false
	}
	return owned
}

// Team rebuilds summary-form players keyed by id. On failure the map is empty, never nil.
func (s *LedgerService) Team(ctx context.Context) (map[int64]player.Player, error) {
	roster, err := s.Roster(ctx)
	out := make(map[int64]player.Player, len(roster))
	if err != nil {
		return out, err
	}
	for _, item := range roster {
		out[item.ID] = item.Player()
	}
	return out, nil
}

// Roster returns the owned players in purchase order.
func (s *LedgerService) Roster(ctx context.Context) ([]player.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.Roster")
	defer span.End()

	doc, err := s.store.Read(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "read team failed", "kind", Classify(err).String(), "error", err)
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	return doc.Team, nil
}

// Update runs fn against a freshly read document and writes it back when fn succeeds.
// An error from fn discards the changes.
func (s *LedgerService) Update(ctx context.Context, fn func(doc *ledger.Document) error) error {
	doc, err := s.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}

	if err := fn(&doc); err != nil {
		return err
	}

	if err := s.store.Write(ctx, doc); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

// Buy debits p's current market value and adds it to the team. An insufficient budget
// is reported as an outcome, not an error, and leaves the ledger untouched.
func (s *LedgerService) Buy(ctx context.Context, p player.Player) (ledger.Outcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.Buy")
	defer span.End()

	var budgetLeft int64
	err := s.Update(ctx, func(doc *ledger.Document) error {
		if err := doc.Purchase(p); err != nil {
			return err
		}
		budgetLeft = doc.Budget
		return nil
	})

	switch {
	case errors.Is(err, ledger.ErrInsufficientBudget):
		s.logger.InfoContext(ctx, "purchase rejected", "player_id", p.ID, "market_value", p.MarketValue, "reason", err.Error())
		return ledger.OutcomeInsufficientBudget, nil
	case err != nil:
		s.logger.ErrorContext(ctx, "purchase failed", "player_id", p.ID, "kind", Classify(err).String(), "error", err)
		return ledger.OutcomeFailed, fmt.Errorf("buy player %d: %w", p.ID, err)
	}

	s.logger.InfoContext(ctx, "player purchased",
		"player_id", p.ID,
		"market_value", p.MarketValue,
		"budget", budgetLeft,
	)
	return ledger.OutcomePurchased, nil
}

// Sell removes every team entry for p and credits its current market value. Ownership
// is not checked here.
func (s *LedgerService) Sell(ctx context.Context, p player.Player) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LedgerService.Sell")
	defer span.End()

	var removed int
	var budget int64
	err := s.Update(ctx, func(doc *ledger.Document) error {
		removed = doc.Release(p)
		budget = doc.Budget
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "sale failed", "player_id", p.ID, "kind", Classify(err).String(), "error", err)
		return fmt.Errorf("sell player %d: %w", p.ID, err)
	}

	s.logger.InfoContext(ctx, "player sold",
		"player_id", p.ID,
		"market_value", p.MarketValue,
		"removed_entries", removed,
		"budget", budget,
	)
	return nil
}

// Init creates an empty ledger with the given budget when none exists yet.
// It reports whether a document was created.
func (s *LedgerService) Init(ctx context.Context, budget int64) (bool, error) {
	if budget < 0 {
		return false, fmt.Errorf("%w: budget must be >= 0", ErrInvalidInput)
	}

	_, err := s.store.Read(ctx)
	if err == nil {
		return false, nil
	}
	if !storage.IsNotExist(err) {
		return false, fmt.Errorf("read ledger: %w", err)
	}

	if err := s.store.Write(ctx, ledger.Document{Budget: budget, Team: []player.Summary{}}); err != nil {
		return false, fmt.Errorf("write ledger: %w", err)
	}

	s.logger.InfoContext(ctx, "ledger created", "budget", budget)
	return true, nil
}
