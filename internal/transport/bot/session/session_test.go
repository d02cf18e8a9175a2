package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scoreboard/internal/transport/bot/session"
)

func TestSelection(t *testing.T) {
	rq := require.New(t)

	store := session.New(time.Minute)

	_, ok := store.Selected(1)
	rq.False(ok)

	store.Select(1, "A")
	store.Select(2, "B")

	team, ok := store.Selected(1)
	rq.True(ok)
	rq.Equal("A", team)

	store.Deselect(1)

	_, ok = store.Selected(1)
	rq.False(ok)

	team, ok = store.Selected(2)
	rq.True(ok)
	rq.Equal("B", team)
}

func TestIntents(t *testing.T) {
	rq := require.New(t)

	store := session.New(time.Minute)
	intent := session.Intent{Action: session.ActionConfirmRemove, ChatID: 7, Team: "A (10分)"}

	token := store.Issue(intent)
	rq.LessOrEqual(len(token), 60)
	rq.NotEqual(token, store.Issue(intent))

	got, ok := store.Resolve(token)
	rq.True(ok)
	rq.Equal(intent, got)

	got, ok = store.Consume(token)
	rq.True(ok)
	rq.Equal(intent, got)

	_, ok = store.Consume(token)
	rq.False(ok, "token must be single use")

	_, ok = store.Resolve("unknown")
	rq.False(ok)
}

func TestIntentExpires(t *testing.T) {
	rq := require.New(t)

	store := session.New(50 * time.Millisecond)
	token := store.Issue(session.Intent{Action: session.ActionSelect, Team: "A"})

	time.Sleep(100 * time.Millisecond)

	_, ok := store.Resolve(token)
	rq.False(ok)
}
