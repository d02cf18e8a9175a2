package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"scoreboard/internal/config"
	"scoreboard/internal/infrastructure/persistence"
)

func TestStoreMemory(t *testing.T) {
	rq := require.New(t)

	app := New(config.Config{Storage: config.Storage{Driver: config.StorageMemory, Slot: persistence.DefaultSlot}})

	store, checkers, err := app.store(context.Background())
	rq.NoError(err)
	rq.IsType(&persistence.MemoryStore{}, store)
	rq.Empty(checkers)
}

func TestStoreUnknownDriver(t *testing.T) {
	rq := require.New(t)

	app := New(config.Config{Storage: config.Storage{Driver: "localStorage"}})

	_, _, err := app.store(context.Background())
	rq.ErrorIs(err, config.ErrUnknownStorageDriver)
}

func TestStoreRedisUnreachable(t *testing.T) {
	rq := require.New(t)

	app := New(config.Config{
		Storage: config.Storage{Driver: config.StorageRedis, Slot: "board"},
		Redis:   config.Redis{Address: "127.0.0.1:1"},
	})

	_, _, err := app.store(context.Background())
	rq.Error(err)

	app.close(context.Background())
}
