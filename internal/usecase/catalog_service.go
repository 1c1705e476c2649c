package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
)

// ClubValuation is the summed market value of one club's players.
type ClubValuation struct {
	ClubName         string
	TotalMarketValue int64
	PlayerCount      int
}

type CatalogService struct {
	catalog player.Catalog
	logger  *logging.Logger
}

func NewCatalogService(catalog player.Catalog, logger *logging.Logger) *CatalogService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CatalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// LoadCatalog drifts and returns the catalog. On failure the map is empty, never nil,
// and the error says whether the document was unreadable or malformed.
func (s *CatalogService) LoadCatalog(ctx context.Context) (map[int64]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.LoadCatalog")
	defer span.End()

	players, err := s.catalog.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "load catalog failed", "kind", Classify(err).String(), "error", err)
		return map[int64]player.Player{}, fmt.Errorf("load catalog: %w", err)
	}

	s.logger.DebugContext(ctx, "catalog loaded", "player_count", len(players))
	return players, nil
}

// ClubValuations sums market value per club from the current snapshot without drifting it.
func (s *CatalogService) ClubValuations(ctx context.Context) ([]ClubValuation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ClubValuations")
	defer span.End()

	players, err := s.catalog.Snapshot(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "read catalog snapshot failed", "kind", Classify(err).String(), "error", err)
		return nil, fmt.Errorf("read catalog snapshot: %w", err)
	}

	byClub := make(map[string]*ClubValuation)
	for _, p := range players {
		club := strings.TrimSpace(p.ClubName)
		item, ok := byClub[club]
		if !ok {
			item = &ClubValuation{ClubName: club}
			byClub[club] = item
		}
		item.TotalMarketValue += p.MarketValue
		item.PlayerCount++
	}

	out := make([]ClubValuation, 0, len(byClub))
	for _, item := range byClub {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalMarketValue != out[j].TotalMarketValue {
			return out[i].TotalMarketValue > out[j].TotalMarketValue
		}
		return out[i].ClubName < out[j].ClubName
	})

	return out, nil
}
