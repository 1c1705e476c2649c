package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/riskibarqy/fantasy-market/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the market.
type Config struct {
	AppEnv        string
	LogLevel      logging.Level
	DataDir       string
	PlayersFile   string
	TeamFile      string
	InitialBudget int64
	// DriftCoupled reuses the stat magnitude draw as the market value direction.
	DriftCoupled bool
	// DriftSeed seeds the drift source. Zero means unseeded.
	DriftSeed uint64
}

type rawConfig struct {
	AppEnv        string `env:"APP_ENV" envDefault:"dev"`
	LogLevel      string `env:"APP_LOG_LEVEL" envDefault:"info"`
	DataDir       string `env:"MARKET_DATA_DIR" envDefault:"data"`
	PlayersFile   string `env:"MARKET_PLAYERS_FILE" envDefault:"players.csv"`
	TeamFile      string `env:"MARKET_TEAM_FILE" envDefault:"team.json"`
	InitialBudget int64  `env:"MARKET_INITIAL_BUDGET" envDefault:"100000000"`
	DriftCoupled  bool   `env:"MARKET_DRIFT_COUPLED" envDefault:"true"`
	DriftSeed     uint64 `env:"MARKET_DRIFT_SEED" envDefault:"0"`
}

// Load reads an optional .env file from the working directory, then the environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(dotEnvPath string) (Config, error) {
	if strings.TrimSpace(dotEnvPath) != "" {
		if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotEnvPath, err)
		}
	}

	var raw rawConfig
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	appEnv, err := parseAppEnv(raw.AppEnv)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:        appEnv,
		LogLevel:      logging.ParseLevel(raw.LogLevel),
		DataDir:       strings.TrimSpace(raw.DataDir),
		PlayersFile:   strings.TrimSpace(raw.PlayersFile),
		TeamFile:      strings.TrimSpace(raw.TeamFile),
		InitialBudget: raw.InitialBudget,
		DriftCoupled:  raw.DriftCoupled,
		DriftSeed:     raw.DriftSeed,
	}

	if cfg.PlayersFile == "" {
		return Config{}, fmt.Errorf("MARKET_PLAYERS_FILE cannot be empty")
	}
	if cfg.TeamFile == "" {
		return Config{}, fmt.Errorf("MARKET_TEAM_FILE cannot be empty")
	}
	if cfg.InitialBudget < 0 {
		return Config{}, fmt.Errorf("MARKET_INITIAL_BUDGET must be >= 0")
	}

	return cfg, nil
}

// PlayersPath resolves the catalog CSV against DataDir unless it is absolute.
func (c Config) PlayersPath() string {
	return resolve(c.DataDir, c.PlayersFile)
}

// TeamPath resolves the ledger JSON against DataDir unless it is absolute.
func (c Config) TeamPath() string {
	return resolve(c.DataDir, c.TeamFile)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
