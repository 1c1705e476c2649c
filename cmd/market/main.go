package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/fantasy-market/internal/app"
	"github.com/riskibarqy/fantasy-market/internal/config"
	"github.com/riskibarqy/fantasy-market/internal/domain/player"
	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
	"github.com/riskibarqy/fantasy-market/internal/usecase"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(execute())
}

func execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, logger, os.Args[1:], os.Stdout)
	switch {
	case errors.Is(err, errUsage):
		printUsage(os.Stderr)
		return 2
	case err != nil:
		fmt.Fprintf(os.Stderr, "error (%s): %v\n", usecase.Classify(err), err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, args []string, out io.Writer) error {
	asJSON, args := extractFlag(args, "--json")
	if len(args) == 0 {
		return errUsage
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	p := printer{out: out, json: asJSON}
	cmd := strings.ToLower(strings.TrimSpace(args[0]))
	switch cmd {
	case "list":
		session, err := a.Market.Open(ctx)
		if err != nil {
			return err
		}
		return p.listings(session)
	case "team":
		roster, err := a.Ledger.Roster(ctx)
		if err != nil {
			return err
		}
		return p.roster(roster)
	case "budget":
		budget, err := a.Ledger.Budget(ctx)
		if err != nil {
			return err
		}
		return p.budget(budget)
	case "buy", "sell":
		playerID, err := parsePlayerID(args[1:])
		if err != nil {
			return err
		}
		session, err := a.Market.Open(ctx)
		if err != nil {
			return err
		}

		var result usecase.TransactionResult
		if cmd == "buy" {
			result, err = session.Buy(ctx, playerID)
		} else {
			result, err = session.Sell(ctx, playerID)
		}
		if err != nil {
			return err
		}
		return p.transaction(result)
	case "clubs":
		valuations, err := a.Catalog.ClubValuations(ctx)
		if err != nil {
			return err
		}
		return p.clubs(valuations)
	case "init":
		result, err := a.Init(ctx)
		if err != nil {
			return err
		}
		return p.initResult(result, cfg)
	default:
		return errUsage
	}
}

func extractFlag(args []string, flag string) (bool, []string) {
	found := false
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == flag {
			found = true
			continue
		}
		rest = append(rest, arg)
	}
	return found, rest
}

func parsePlayerID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}

	value, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, args[0])
	}
	return value, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: market [--json] <command> [args]")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  list          show the catalog (drifts market values)")
	fmt.Fprintln(w, "  team          show owned players")
	fmt.Fprintln(w, "  budget        show the remaining budget")
	fmt.Fprintln(w, "  buy <id>      buy a player")
	fmt.Fprintln(w, "  sell <id>     sell an owned player")
	fmt.Fprintln(w, "  clubs         show total market value per club")
	fmt.Fprintln(w, "  init          create the starter catalog and an empty team")
}

type printer struct {
	out  io.Writer
	json bool
}

func (p printer) encode(v any) error {
	body, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(body))
	return err
}

type listingOutput struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ClubName    string `json:"clubName"`
	Position    string `json:"position"`
	Rating      int64  `json:"rating"`
	Age         int64  `json:"age"`
	MarketValue int64  `json:"marketValue"`
	Goals       int64  `json:"goals"`
	Assists     int64  `json:"assists"`
	Saves       int64  `json:"saves"`
	Owned       bool   `json:"owned"`
}

func (p printer) listings(session *usecase.Session) error {
	items := session.Listings()
	if p.json {
		out := struct {
			Budget  int64           `json:"budget"`
			Players []listingOutput `json:"players"`
		}{Budget: session.Budget(), Players: make([]listingOutput, 0, len(items))}
		for _, item := range items {
			pl := item.Player
			out.Players = append(out.Players, listingOutput{
				ID:          pl.ID,
				Name:        pl.Name,
				ClubName:    pl.ClubName,
				Position:    string(pl.Position),
				Rating:      pl.Rating,
				Age:         pl.Age,
				MarketValue: pl.MarketValue,
				Goals:       pl.Goals,
				Assists:     pl.Assists,
				Saves:       pl.Saves,
				Owned:       item.Owned,
			})
		}
		return p.encode(out)
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCLUB\tPOS\tRATING\tVALUE\tG\tA\tSV\tOWNED")
	for _, item := range items {
		pl := item.Player
		owned := ""
		if item.Owned {
			owned = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%d\t%d\t%d\t%s\n",
			pl.ID, pl.Name, pl.ClubName, pl.Position, pl.Rating,
			usecase.FormatEuros(pl.MarketValue), pl.Goals, pl.Assists, pl.Saves, owned)
	}
	fmt.Fprintf(tw, "\nbudget: %s\n", session.BudgetLabel())
	return tw.Flush()
}

type rosterOutput struct {
	ID             int64  `json:"ID"`
	Name           string `json:"Name"`
	ClubName       string `json:"ClubName"`
	Position       string `json:"Position"`
	PlayerImageURL string `json:"PlayerImageURL"`
	ClubImageURL   string `json:"ClubImageURL"`
}

func (p printer) roster(roster []player.Summary) error {
	if p.json {
		out := make([]rosterOutput, 0, len(roster))
		for _, s := range roster {
			out = append(out, rosterOutput{
				ID:             s.ID,
				Name:           s.Name,
				ClubName:       s.ClubName,
				Position:       string(s.Position),
				PlayerImageURL: s.PlayerImageURL,
				ClubImageURL:   s.ClubImageURL,
			})
		}
		return p.encode(out)
	}

	if len(roster) == 0 {
		_, err := fmt.Fprintln(p.out, "no players owned")
		return err
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCLUB\tPOS")
	for _, s := range roster {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.ClubName, s.Position)
	}
	return tw.Flush()
}

func (p printer) budget(budget int64) error {
	if p.json {
		return p.encode(map[string]any{"budget": budget, "label": usecase.FormatEuros(budget)})
	}
	_, err := fmt.Fprintln(p.out, usecase.FormatEuros(budget))
	return err
}

func (p printer) transaction(result usecase.TransactionResult) error {
	if p.json {
		return p.encode(struct {
			Kind      string `json:"kind"`
			PlayerID  int64  `json:"playerId"`
			Completed bool   `json:"completed"`
			Outcome   string `json:"outcome,omitempty"`
			Budget    int64  `json:"budget"`
			Message   string `json:"message"`
		}{
			Kind:      string(result.Kind),
			PlayerID:  result.PlayerID,
			Completed: result.Completed,
			Outcome:   outcomeLabel(result),
			Budget:    result.Budget,
			Message:   result.Message,
		})
	}
	_, err := fmt.Fprintf(p.out, "%s (budget %s)\n", result.Message, usecase.FormatEuros(result.Budget))
	return err
}

func outcomeLabel(result usecase.TransactionResult) string {
	if result.Kind != usecase.TransactionBuy {
		return ""
	}
	return result.Outcome.String()
}

func (p printer) clubs(valuations []usecase.ClubValuation) error {
	if p.json {
		type clubOutput struct {
			ClubName         string `json:"clubName"`
			TotalMarketValue int64  `json:"totalMarketValue"`
			PlayerCount      int    `json:"playerCount"`
		}
		out := make([]clubOutput, 0, len(valuations))
		for _, v := range valuations {
			out = append(out, clubOutput{v.ClubName, v.TotalMarketValue, v.PlayerCount})
		}
		return p.encode(out)
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CLUB\tPLAYERS\tVALUE")
	for _, v := range valuations {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", v.ClubName, v.PlayerCount, usecase.FormatEuros(v.TotalMarketValue))
	}
	return tw.Flush()
}

func (p printer) initResult(result app.InitResult, cfg config.Config) error {
	if p.json {
		return p.encode(struct {
			CatalogCreated bool   `json:"catalogCreated"`
			LedgerCreated  bool   `json:"ledgerCreated"`
			PlayersPath    string `json:"playersPath"`
			TeamPath       string `json:"teamPath"`
		}{result.CatalogCreated, result.LedgerCreated, cfg.PlayersPath(), cfg.TeamPath()})
	}

	fmt.Fprintf(p.out, "catalog %s: %s\n", createdLabel(result.CatalogCreated), cfg.PlayersPath())
	_, err := fmt.Fprintf(p.out, "team %s: %s\n", createdLabel(result.LedgerCreated), cfg.TeamPath())
	return err
}

func createdLabel(created bool) string {
	if created {
		return "created"
	}
	return "kept"
}
