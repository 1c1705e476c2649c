package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-market/internal/domain/drift"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/infrastructure/repository/flatfile"
	"github.com/riskibarqy/fantasy-market/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/fantasy-market/internal/mocks/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
)

func newFlatfileLedger(handle storage.Handle) *flatfile.LedgerRepository {
	return flatfile.NewLedgerRepository(handle)
}

func TestCatalogService_LoadCatalogDriftsValues(t *testing.T) {
	seed := memory.SeedPlayers()
	repo := memory.NewCatalogRepository(seed, drift.NewRoller(drift.NewSource(7), true))
	svc := NewCatalogService(repo, logging.NewNop())

	players, err := svc.LoadCatalog(t.Context())
	require.NoError(t, err)
	require.Len(t, players, len(seed))

	for _, before := range seed {
		after := players[before.ID]
		delta := after.MarketValue - before.MarketValue
		require.Contains(t, []int64{-drift.MarketValueStep, drift.MarketValueStep}, delta)
		require.Equal(t, before.Name, after.Name)
	}
}

func TestCatalogService_LoadCatalogFailuresUsingMockery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind FailureKind
	}{
		{name: "unreadable", err: storage.MarkIO(errors.New("permission denied"), "read players.csv"), wantKind: FailureIO},
		{name: "malformed", err: storage.Malformedf("players.csv", "line %d: invalid Rating %q", 3, "x"), wantKind: FailureParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			catalog := playermock.NewCatalog(t)
			catalog.On("Load", mock.Anything).Return(nil, tc.err).Once()

			players, err := NewCatalogService(catalog, logging.NewNop()).LoadCatalog(t.Context())
			require.NotNil(t, players)
			require.Empty(t, players)
			require.Equal(t, tc.wantKind, Classify(err))
		})
	}
}

func TestCatalogService_ClubValuations(t *testing.T) {
	players := []player.Player{
		{ID: 1, Name: "A", ClubName: "Real Madrid", MarketValue: 100},
		{ID: 2, Name: "B", ClubName: " Real Madrid ", MarketValue: 50},
		{ID: 3, Name: "C", ClubName: "Barcelona", MarketValue: 150},
		{ID: 4, Name: "D", ClubName: "Atletico Madrid", MarketValue: 20},
	}
	svc := NewCatalogService(memory.NewCatalogRepository(players, nil), logging.NewNop())

	got, err := svc.ClubValuations(t.Context())
	require.NoError(t, err)
	require.Equal(t, []ClubValuation{
		{ClubName: "Barcelona", TotalMarketValue: 150, PlayerCount: 1},
		{ClubName: "Real Madrid", TotalMarketValue: 150, PlayerCount: 2},
		{ClubName: "Atletico Madrid", TotalMarketValue: 20, PlayerCount: 1},
	}, got)
}

func TestCatalogService_ClubValuationsDoNotDrift(t *testing.T) {
	handle := storage.NewMemory("players.csv", []byte(
		"id,name,rating,marketValue,age,teamID,clubName,position,goals,assists,saves,playerImageURL,clubImageURL\n"+
			"1,Pedri,87,100000,22,2,Barcelona,MID,4,7,0,p.png,c.png\n",
	))
	repo := flatfile.NewCatalogRepository(handle, drift.NewRoller(drift.NewSource(1), true))
	svc := NewCatalogService(repo, logging.NewNop())

	got, err := svc.ClubValuations(t.Context())
	require.NoError(t, err)
	require.Equal(t, []ClubValuation{{ClubName: "Barcelona", TotalMarketValue: 100000, PlayerCount: 1}}, got)
	require.Zero(t, handle.Writes())
}
