package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Драйверы хранилища слота.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

type Config struct {
	App      App
	Log      Log
	Bot      Bot
	Storage  Storage
	Postgres Postgres
	Redis    Redis
	Probe    Probe
	Metrics  Metrics
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"scoreboard"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Bot struct {
	Token string `env:"BOT_TOKEN,required,notEmpty" json:"-"`
	// Единственный пользователь, которому бот отвечает.
	AdminID int64 `env:"BOT_ADMIN_ID,required"`
	// Куда дублировать итоги; 0 выключает рассылку.
	AnnounceChatID int64         `env:"BOT_ANNOUNCE_CHAT_ID" envDefault:"0"`
	SessionTTL     time.Duration `env:"BOT_SESSION_TTL" envDefault:"30m"`
	LogFieldMaxLen int           `env:"BOT_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Storage struct {
	Driver         string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	Slot           string `env:"STORAGE_SLOT" envDefault:"scoreLeaderboardTeams"`
	ResetOnCorrupt bool   `env:"STORAGE_RESET_ON_CORRUPT" envDefault:"false"`
	// Предохранитель для удалённых хранилищ.
	BreakerFailures    uint32        `env:"STORAGE_BREAKER_FAILURES" envDefault:"3"`
	BreakerOpenTimeout time.Duration `env:"STORAGE_BREAKER_OPEN_TIMEOUT" envDefault:"30s"`
}

type Probe struct {
	ListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	ShutdownTimeout time.Duration `env:"PROBE_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

// Parse читает конфиг только из окружения, без .env.
func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("PG_DSN is required for postgres storage")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, c.Storage.Driver)
	}

	if c.Storage.Slot == "" {
		return errors.New("STORAGE_SLOT must not be empty")
	}

	return nil
}
