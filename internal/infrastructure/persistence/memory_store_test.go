package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/internal/infrastructure/persistence"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := persistence.NewMemoryStore()

	_, err := store.Load(ctx)
	rq.ErrorIs(err, persistence.ErrSlotEmpty)

	teams := []entity.Team{
		{Name: "开发一组", Score: 100},
		{Name: "B", Score: 0},
		{Name: "A", Score: 7},
	}

	rq.NoError(store.Save(ctx, teams))

	loaded, err := store.Load(ctx)
	rq.NoError(err)
	rq.Equal(teams, loaded)

	rq.JSONEq(`[{"name":"开发一组","score":100},{"name":"B","score":0},{"name":"A","score":7}]`, string(store.Document()))
}

func TestMemoryStoreSaveReplacesDocument(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := persistence.NewMemoryStore()

	rq.NoError(store.Save(ctx, []entity.Team{{Name: "old", Score: 1}}))
	rq.NoError(store.Save(ctx, []entity.Team{{Name: "new", Score: 2}}))

	loaded, err := store.Load(ctx)
	rq.NoError(err)
	rq.Equal([]entity.Team{{Name: "new", Score: 2}}, loaded)
}

func TestMemoryStoreEmptyList(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := persistence.NewMemoryStore()
	rq.NoError(store.Save(ctx, nil))

	loaded, err := store.Load(ctx)
	rq.NoError(err)
	rq.Empty(loaded)
}

func TestMemoryStoreCorruptedDocument(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "Not JSON", doc: `{{{`},
		{name: "Wrong shape", doc: `{"name":"A"}`},
		{name: "Missing name", doc: `[{"score":3}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			store := persistence.NewMemoryStoreWithDocument([]byte(tc.doc))

			_, err := store.Load(context.Background())
			rq.Error(err)
			rq.NotErrorIs(err, persistence.ErrSlotEmpty)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal("CorruptedState", code.String())
		})
	}
}
