package usecase

import (
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-market/internal/domain/ledger"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/infrastructure/repository/flatfile"
	ledgermock "github.com/riskibarqy/fantasy-market/internal/mocks/domain/ledger"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
)

func ledgerJSON(t *testing.T, budget int64, team ...player.Summary) []byte {
	t.Helper()

	type entry struct {
		ID             int64  `json:"ID"`
		Name           string `json:"Name"`
		ClubName       string `json:"ClubName"`
		Position       string `json:"Position"`
		PlayerImageURL string `json:"PlayerImageURL"`
		ClubImageURL   string `json:"ClubImageURL"`
	}
	entries := make([]entry, 0, len(team))
	for _, s := range team {
		entries = append(entries, entry{s.ID, s.Name, s.ClubName, string(s.Position), s.PlayerImageURL, s.ClubImageURL})
	}

	body, err := sonic.Marshal(map[string]any{"budget": budget, "team": entries})
	require.NoError(t, err)
	return body
}

func newFileLedger(t *testing.T, budget int64, team ...player.Summary) (*LedgerService, *storage.Memory) {
	t.Helper()

	handle := storage.NewMemory("team.json", ledgerJSON(t, budget, team...))
	return NewLedgerService(flatfile.NewLedgerRepository(handle), logging.NewNop()), handle
}

func TestLedgerService_BuyThenSellRestoresBudget(t *testing.T) {
	svc, _ := newFileLedger(t, 300000, player.Summary{ID: 99, Name: "Keeper"})
	p := player.Player{ID: 7, Name: "Pedri", ClubName: "Barcelona", Position: player.PositionMidfielder, MarketValue: 120000}

	outcome, err := svc.Buy(t.Context(), p)
	require.NoError(t, err)
	require.Equal(t, ledger.OutcomePurchased, outcome)

	budget, err := svc.Budget(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(180000), budget)

	owned, err := svc.IsOwned(t.Context(), p.ID)
	require.NoError(t, err)
	require.True(t, owned)

	require.NoError(t, svc.Sell(t.Context(), p))

	budget, err = svc.Budget(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(300000), budget)

	owned, err = svc.IsOwned(t.Context(), p.ID)
	require.NoError(t, err)
	require.False(t, owned)

	roster, err := svc.Roster(t.Context())
	require.NoError(t, err)
	require.Equal(t, []player.Summary{{ID: 99, Name: "Keeper"}}, roster)
}

func TestLedgerService_BuyBudgetBoundary(t *testing.T) {
	tests := []struct {
		name        string
		budget      int64
		value       int64
		wantOutcome ledger.Outcome
		wantBudget  int64
		wantWrites  int
	}{
		{name: "exact budget reaches zero", budget: 100000, value: 100000, wantOutcome: ledger.OutcomePurchased, wantBudget: 0, wantWrites: 1},
		{name: "one unit short", budget: 99999, value: 100000, wantOutcome: ledger.OutcomeInsufficientBudget, wantBudget: 99999, wantWrites: 0},
		{name: "negative value credits budget", budget: 0, value: -5000, wantOutcome: ledger.OutcomePurchased, wantBudget: 5000, wantWrites: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, handle := newFileLedger(t, tc.budget)
			p := player.Player{ID: 1, Name: "Lamine Yamal", MarketValue: tc.value}

			outcome, err := svc.Buy(t.Context(), p)
			require.NoError(t, err)
			require.Equal(t, tc.wantOutcome, outcome)
			require.Equal(t, tc.wantWrites, handle.Writes())
			require.Equal(t, tc.wantBudget, svc.BudgetOrUnknown(t.Context()))
			require.Equal(t, tc.wantOutcome == ledger.OutcomePurchased, svc.OwnsOrFalse(t.Context(), p.ID))
		})
	}
}

func TestLedgerService_TeamIsSummaryForm(t *testing.T) {
	svc, _ := newFileLedger(t, 10,
		player.Summary{ID: 3, Name: "Bellingham", ClubName: "Real Madrid", Position: player.PositionMidfielder, PlayerImageURL: "p3", ClubImageURL: "c1"},
		player.Summary{ID: 1, Name: "Courtois", ClubName: "Real Madrid", Position: player.PositionGoalkeeper},
	)

	team, err := svc.Team(t.Context())
	require.NoError(t, err)
	require.Len(t, team, 2)
	require.Equal(t, "Bellingham", team[3].Name)
	require.Equal(t, "p3", team[3].PlayerImageURL)
	require.Zero(t, team[3].MarketValue)
	require.True(t, team[1].IsGoalkeeper())
}

func TestLedgerService_ReadFailuresDegrade(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		wantKind FailureKind
	}{
		{name: "missing document", body: nil, wantKind: FailureIO},
		{name: "malformed document", body: []byte(`{"budget":"lots"}`), wantKind: FailureParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewLedgerService(flatfile.NewLedgerRepository(storage.NewMemory("team.json", tc.body)), logging.NewNop())

			budget, err := svc.Budget(t.Context())
			require.Equal(t, ledger.UnknownBudget, budget)
			require.Equal(t, tc.wantKind, Classify(err))
			require.Equal(t, ledger.UnknownBudget, svc.BudgetOrUnknown(t.Context()))

			require.False(t, svc.OwnsOrFalse(t.Context(), 1))

			team, err := svc.Team(t.Context())
			require.NotNil(t, team)
			require.Empty(t, team)
			require.Equal(t, tc.wantKind, Classify(err))

			outcome, err := svc.Buy(t.Context(), player.Player{ID: 1, Name: "A", MarketValue: 1})
			require.Equal(t, ledger.OutcomeFailed, outcome)
			require.Equal(t, tc.wantKind, Classify(err))

			err = svc.Sell(t.Context(), player.Player{ID: 1, Name: "A", MarketValue: 1})
			require.Equal(t, tc.wantKind, Classify(err))
		})
	}
}

func TestLedgerService_BuyWriteFailureUsingMockery(t *testing.T) {
	t.Parallel()

	store := ledgermock.NewStore(t)
	svc := NewLedgerService(store, logging.NewNop())
	p := player.Player{ID: 4, Name: "Vinicius", MarketValue: 50}

	store.On("Read", mock.Anything).Return(ledger.Document{Budget: 100}, nil).Once()
	store.
		On("Write", mock.Anything, mock.MatchedBy(func(doc ledger.Document) bool {
			return doc.Budget == 50 && doc.Owns(p.ID)
		})).
		Return(storage.MarkIO(errors.New("disk full"), "write team.json")).
		Once()

	outcome, err := svc.Buy(t.Context(), p)
	require.Equal(t, ledger.OutcomeFailed, outcome)
	require.Equal(t, FailureIO, Classify(err))
}

func TestLedgerService_InsufficientBudgetSkipsWriteUsingMockery(t *testing.T) {
	t.Parallel()

	store := ledgermock.NewStore(t)
	svc := NewLedgerService(store, logging.NewNop())

	store.On("Read", mock.Anything).Return(ledger.Document{Budget: 10}, nil).Once()

	outcome, err := svc.Buy(t.Context(), player.Player{ID: 4, Name: "Vinicius", MarketValue: 50})
	require.NoError(t, err)
	require.Equal(t, ledger.OutcomeInsufficientBudget, outcome)
	store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestLedgerService_TradesCatalogRowsWithoutIdentityChecks(t *testing.T) {
	tests := []struct {
		name   string
		player player.Player
	}{
		{name: "empty name", player: player.Player{ID: 7, MarketValue: 1000}},
		{name: "zero id", player: player.Player{ID: 0, Name: "Trialist", MarketValue: 1000}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, handle := newFileLedger(t, 5000)

			outcome, err := svc.Buy(t.Context(), tc.player)
			require.NoError(t, err)
			require.Equal(t, ledger.OutcomePurchased, outcome)
			require.Equal(t, int64(4000), svc.BudgetOrUnknown(t.Context()))
			require.True(t, svc.OwnsOrFalse(t.Context(), tc.player.ID))

			require.NoError(t, svc.Sell(t.Context(), tc.player))
			require.Equal(t, int64(5000), svc.BudgetOrUnknown(t.Context()))
			require.False(t, svc.OwnsOrFalse(t.Context(), tc.player.ID))
			require.Equal(t, 2, handle.Writes())
		})
	}
}

func TestLedgerService_SellCreditsCurrentValueWithoutOwnershipCheck(t *testing.T) {
	svc, _ := newFileLedger(t, 1000)

	require.NoError(t, svc.Sell(t.Context(), player.Player{ID: 8, Name: "Ghost", MarketValue: 5000}))
	require.Equal(t, int64(6000), svc.BudgetOrUnknown(t.Context()))
}

func TestLedgerService_Init(t *testing.T) {
	handle := storage.NewMemory("team.json", nil)
	svc := NewLedgerService(flatfile.NewLedgerRepository(handle), logging.NewNop())

	created, err := svc.Init(t.Context(), 750000)
	require.NoError(t, err)
	require.True(t, created)
	require.JSONEq(t, `{"budget":750000,"team":[]}`, string(handle.Bytes()))

	created, err = svc.Init(t.Context(), 1)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, int64(750000), svc.BudgetOrUnknown(t.Context()))

	broken := NewLedgerService(flatfile.NewLedgerRepository(storage.NewMemory("team.json", []byte("{"))), logging.NewNop())
	_, err = broken.Init(t.Context(), 1)
	require.Equal(t, FailureParse, Classify(err))

	_, err = svc.Init(t.Context(), -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}
