package view_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/internal/domain/service/ranking"
	"scoreboard/internal/domain/value"
	"scoreboard/internal/transport/bot/view"
	"scoreboard/pkg/errcodes"
)

func TestBoardMedals(t *testing.T) {
	rq := require.New(t)

	reply := view.Board(ranking.Compute([]entity.Team{
		{Name: "A", Score: 10},
		{Name: "B", Score: 30},
		{Name: "C", Score: 20},
		{Name: "D", Score: 5},
	}))

	lines := strings.Split(strings.TrimSpace(reply.Text), "\n")
	rq.Len(lines, 6)
	rq.Equal("🥇 <b>B</b> — 30 очк.", lines[2])
	rq.Equal("🥈 <b>C</b> — 20 очк.", lines[3])
	rq.Equal("🥉 <b>A</b> — 10 очк.", lines[4])
	rq.Equal("4. D — 5 очк.", lines[5])
	rq.Nil(reply.Keyboard)
}

func TestBoardEmpty(t *testing.T) {
	rq := require.New(t)

	rq.Equal(view.BoardEmpty, view.Board(nil).Text)
	rq.Equal(view.SettlementEmpty, view.Settlement(nil).Text)
}

func TestBoardEscapesNames(t *testing.T) {
	rq := require.New(t)

	reply := view.Board(ranking.Compute([]entity.Team{{Name: "<script>", Score: 1}}))
	rq.Contains(reply.Text, "&lt;script&gt;")
	rq.NotContains(reply.Text, "<script>")
}

func TestSettlement(t *testing.T) {
	rq := require.New(t)

	podium := ranking.TopN([]entity.Team{
		{Name: "A", Score: 1},
		{Name: "B", Score: 2},
		{Name: "C", Score: 3},
		{Name: "D", Score: 4},
	}, ranking.SettlementSize)

	reply := view.Settlement(podium)
	rq.True(strings.HasPrefix(reply.Text, view.SettlementBanner))
	rq.Contains(reply.Text, "🥇 <b>D</b>")
	rq.Contains(reply.Text, "🥉 <b>B</b>")
	rq.NotContains(reply.Text, "<b>A</b>")
}

func TestMedal(t *testing.T) {
	rq := require.New(t)

	rq.Equal("🥇", view.Medal(entity.TierFirst))
	rq.Equal("🥈", view.Medal(entity.TierSecond))
	rq.Equal("🥉", view.Medal(entity.TierThird))
	rq.Empty(view.Medal(entity.TierDefault))
}

func TestTeamsKeyboard(t *testing.T) {
	rq := require.New(t)

	reply := view.TeamsKeyboard([]view.Button{
		{Label: view.TeamLabel(entity.Team{Name: "A", Score: 3}), Data: "sel:1"},
		{Label: view.TeamLabel(entity.Team{Name: "B", Score: 1}), Data: "sel:2"},
	})

	rq.Equal(view.TeamsPrompt, reply.Text)
	rq.NotNil(reply.Keyboard)
	rq.Len(reply.Keyboard.InlineKeyboard, 2)
	rq.Equal("A (3)", reply.Keyboard.InlineKeyboard[0][0].Text)
	rq.Equal("sel:1", reply.Keyboard.InlineKeyboard[0][0].CallbackData)

	rq.Equal(view.BoardEmpty, view.TeamsKeyboard(nil).Text)
}

func TestConfirmRemoval(t *testing.T) {
	rq := require.New(t)

	reply := view.ConfirmRemoval("A", "rm:1", "keep:1")
	rq.Contains(reply.Text, "<b>A</b>")
	rq.Len(reply.Keyboard.InlineKeyboard, 1)
	rq.Equal("rm:1", reply.Keyboard.InlineKeyboard[0][0].CallbackData)
	rq.Equal("keep:1", reply.Keyboard.InlineKeyboard[0][1].CallbackData)
}

func TestAdjusted(t *testing.T) {
	rq := require.New(t)

	rq.Contains(view.Adjusted(entity.Team{Name: "A", Score: 15}, 5, value.Increase).Text, "+5 → 15")
	rq.Contains(view.Adjusted(entity.Team{Name: "A", Score: 0}, 20, value.Decrease).Text, "−20 → 0")
}

func TestError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "Empty name", err: domain.NewError(errcodes.InvalidTeamName, ""), expected: view.ErrInvalidName},
		{name: "Duplicate", err: domain.NewError(errcodes.TeamNameAlreadyInUse, ""), expected: view.ErrDuplicateName},
		{name: "Not found", err: domain.NewError(errcodes.TeamNotFound, ""), expected: view.ErrTeamNotFound},
		{name: "Delta", err: domain.NewError(errcodes.InvalidScoreDelta, ""), expected: view.ErrInvalidDelta},
		{name: "Storage", err: domain.NewError(errcodes.StorageUnavailable, ""), expected: view.ErrStorage},
		{name: "Plain error", err: errors.New("boom"), expected: view.ErrInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, view.Error(tc.err))
		})
	}
}
