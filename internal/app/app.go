package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-market/internal/config"
	"github.com/riskibarqy/fantasy-market/internal/domain/drift"
	"github.com/riskibarqy/fantasy-market/internal/infrastructure/repository/flatfile"
	"github.com/riskibarqy/fantasy-market/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
	"github.com/riskibarqy/fantasy-market/internal/usecase"
)

// App wires the file backed catalog and ledger into the market use cases.
type App struct {
	Catalog *usecase.CatalogService
	Ledger  *usecase.LedgerService
	Market  *usecase.MarketService

	cfg         config.Config
	catalogRepo *flatfile.CatalogRepository
	logger      *logging.Logger
}

// InitResult reports which documents Init created.
type InitResult struct {
	CatalogCreated bool
	LedgerCreated  bool
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	roller := drift.NewRoller(drift.NewSource(cfg.DriftSeed), cfg.DriftCoupled)
	catalogRepo := flatfile.NewCatalogRepository(storage.NewFile(cfg.PlayersPath()), roller)
	ledgerRepo := flatfile.NewLedgerRepository(storage.NewFile(cfg.TeamPath()))

	catalogSvc := usecase.NewCatalogService(catalogRepo, logger)
	ledgerSvc := usecase.NewLedgerService(ledgerRepo, logger)

	logger.Debug("app wired",
		"players_path", cfg.PlayersPath(),
		"team_path", cfg.TeamPath(),
		"drift_coupled", roller.Coupled(),
	)

	return &App{
		Catalog:     catalogSvc,
		Ledger:      ledgerSvc,
		Market:      usecase.NewMarketService(catalogSvc, ledgerSvc, logger),
		cfg:         cfg,
		catalogRepo: catalogRepo,
		logger:      logger,
	}, nil
}

// Init writes the starter catalog and an empty ledger with the configured budget.
// Existing documents are left alone.
func (a *App) Init(ctx context.Context) (InitResult, error) {
	var result InitResult

	created, err := a.catalogRepo.Seed(ctx, memory.SeedPlayers())
	if err != nil {
		return result, fmt.Errorf("seed catalog: %w", err)
	}
	result.CatalogCreated = created

	created, err = a.Ledger.Init(ctx, a.cfg.InitialBudget)
	if err != nil {
		return result, fmt.Errorf("init ledger: %w", err)
	}
	result.LedgerCreated = created

	a.logger.InfoContext(ctx, "market initialised",
		"catalog_created", result.CatalogCreated,
		"ledger_created", result.LedgerCreated,
	)
	return result, nil
}
