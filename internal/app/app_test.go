package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-market/internal/config"
	"github.com/riskibarqy/fantasy-market/internal/domain/ledger"
	"github.com/riskibarqy/fantasy-market/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		AppEnv:        config.EnvDev,
		LogLevel:      logging.LevelInfo,
		DataDir:       t.TempDir(),
		PlayersFile:   "players.csv",
		TeamFile:      "team.json",
		InitialBudget: 300000000,
		DriftCoupled:  true,
		DriftSeed:     11,
	}
}

func TestNew_RequiresLogger(t *testing.T) {
	_, err := New(testConfig(t), nil)
	require.Error(t, err)
}

func TestApp_InitThenTrade(t *testing.T) {
	cfg := testConfig(t)
	a, err := New(cfg, logging.NewNop())
	require.NoError(t, err)

	result, err := a.Init(t.Context())
	require.NoError(t, err)
	require.Equal(t, InitResult{CatalogCreated: true, LedgerCreated: true}, result)

	_, err = os.Stat(filepath.Join(cfg.DataDir, "players.csv"))
	require.NoError(t, err)

	again, err := a.Init(t.Context())
	require.NoError(t, err)
	require.Equal(t, InitResult{}, again)

	session, err := a.Market.Open(t.Context())
	require.NoError(t, err)
	require.Len(t, session.Listings(), len(memory.SeedPlayers()))
	require.Equal(t, cfg.InitialBudget, session.Budget())

	p, ok := session.Player(7)
	require.True(t, ok)

	bought, err := session.Buy(t.Context(), 7)
	require.NoError(t, err)
	require.Equal(t, ledger.OutcomePurchased, bought.Outcome)
	require.Equal(t, cfg.InitialBudget-p.MarketValue, bought.Budget)

	roster, err := a.Ledger.Roster(t.Context())
	require.NoError(t, err)
	require.Len(t, roster, 1)
	require.Equal(t, p.Summary(), roster[0])
}

func TestApp_OpenWithoutDocuments(t *testing.T) {
	a, err := New(testConfig(t), logging.NewNop())
	require.NoError(t, err)

	session, err := a.Market.Open(t.Context())
	require.Error(t, err)
	require.Empty(t, session.Listings())
	require.Equal(t, ledger.UnknownBudget, session.Budget())
}
