package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-market/internal/domain/ledger"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
)

const (
	MessagePurchased          = "purchase completed"
	MessageInsufficientBudget = "not enough budget"
	MessageSold               = "sale completed"
	MessageFailed             = "something went wrong"
)

// Listing is one catalog entry as shown in the market.
type Listing struct {
	Player player.Player
	Owned  bool
}

type TransactionKind string

const (
	TransactionBuy  TransactionKind = "buy"
	TransactionSell TransactionKind = "sell"
)

// TransactionResult is what the market shows after a buy or sell.
// Outcome is only meaningful for buys.
type TransactionResult struct {
	Kind      TransactionKind
	PlayerID  int64
	Completed bool
	Outcome   ledger.Outcome
	Budget    int64
	Message   string
}

// MarketService opens market sessions over the catalog and the ledger.
type MarketService struct {
	catalog *CatalogService
	ledger  *LedgerService
	logger  *logging.Logger
}

func NewMarketService(catalog *CatalogService, ledgerSvc *LedgerService, logger *logging.Logger) *MarketService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MarketService{
		catalog: catalog,
		ledger:  ledgerSvc,
		logger:  logger,
	}
}

// Session is one market view: the catalog as loaded when it opened, the owned flag of
// every player and the displayed budget. It is not safe for concurrent use.
type Session struct {
	ledger  *LedgerService
	logger  *logging.Logger
	players map[int64]player.Player
	owned   map[int64]bool
	budget  int64
	loadErr error
}

// Open loads the catalog (drifting it) and resolves ownership for each player.
// When the catalog cannot be loaded the session is still returned, empty, together
// with the load error.
func (s *MarketService) Open(ctx context.Context) (*Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MarketService.Open")
	defer span.End()

	players, err := s.catalog.LoadCatalog(ctx)
	session := &Session{
		ledger:  s.ledger,
		logger:  s.logger,
		players: players,
		owned:   make(map[int64]bool, len(players)),
		loadErr: err,
	}

	for id := range players {
		session.owned[id] = s.ledger.OwnsOrFalse(ctx, id)
	}
	session.budget = s.ledger.BudgetOrUnknown(ctx)

	s.logger.DebugContext(ctx, "market session opened", "player_count", len(players), "budget", session.budget)
	return session, err
}

// LoadErr is the catalog load failure, if any.
func (s *Session) LoadErr() error {
	return s.loadErr
}

func (s *Session) Listings() []Listing {
	out := make([]Listing, 0, len(s.players))
	for id, p := range s.players {
		out = append(out, Listing{Player: p, Owned: s.owned[id]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Player.ID < out[j].Player.ID
	})
	return out
}

func (s *Session) Player(playerID int64) (player.Player, bool) {
	p, ok := s.players[playerID]
	return p, ok
}

func (s *Session) Owned(playerID int64) bool {
	return s.owned[playerID]
}

// Budget is the figure shown to the user. ledger.UnknownBudget when unreadable.
func (s *Session) Budget() int64 {
	return s.budget
}

func (s *Session) BudgetLabel() string {
	return FormatEuros(s.budget)
}

// Buy purchases a player listed in this session. Owned players are refused before the
// ledger is touched, since the ledger itself accepts duplicates.
func (s *Session) Buy(ctx context.Context, playerID int64) (TransactionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.Buy")
	defer span.End()

	result := TransactionResult{Kind: TransactionBuy, PlayerID: playerID, Outcome: ledger.OutcomeFailed, Budget: s.budget, Message: MessageFailed}

	p, ok := s.players[playerID]
	if !ok {
		return result, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	owned, err := s.ledger.IsOwned(ctx, playerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "check ownership before buy failed", "player_id", playerID, "error", err)
		return result, fmt.Errorf("check ownership: %w", err)
	}
	if owned {
		s.owned[playerID] = true
		return result, fmt.Errorf("%w: player=%d", ErrAlreadyOwned, playerID)
	}

	outcome, err := s.ledger.Buy(ctx, p)
	result.Outcome = outcome
	switch outcome {
	case ledger.OutcomePurchased:
		s.owned[playerID] = true
		result.Completed = true
		result.Message = MessagePurchased
	case ledger.OutcomeInsufficientBudget:
		result.Message = MessageInsufficientBudget
	}

	s.budget = s.ledger.BudgetOrUnknown(ctx)
	result.Budget = s.budget
	return result, err
}

// Sell releases an owned player at its market value in this session.
func (s *Session) Sell(ctx context.Context, playerID int64) (TransactionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Session.Sell")
	defer span.End()

	result := TransactionResult{Kind: TransactionSell, PlayerID: playerID, Budget: s.budget, Message: MessageFailed}

	p, ok := s.players[playerID]
	if !ok {
		return result, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	owned, err := s.ledger.IsOwned(ctx, playerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "check ownership before sell failed", "player_id", playerID, "error", err)
		return result, fmt.Errorf("check ownership: %w", err)
	}
	if !owned {
		s.owned[playerID] = false
		return result, fmt.Errorf("%w: player=%d", ErrNotOwned, playerID)
	}

	if err := s.ledger.Sell(ctx, p); err != nil {
		s.budget = s.ledger.BudgetOrUnknown(ctx)
		result.Budget = s.budget
		return result, err
	}

	s.owned[playerID] = false
	s.budget = s.ledger.BudgetOrUnknown(ctx)
	result.Completed = true
	result.Message = MessageSold
	result.Budget = s.budget
	return result, nil
}
