package handler

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"scoreboard/internal/domain"
	"scoreboard/internal/domain/entity"
	"scoreboard/internal/domain/service/scoreboard"
	"scoreboard/internal/domain/value"
	"scoreboard/internal/transport/bot/session"
	"scoreboard/internal/transport/bot/view"
	"scoreboard/pkg/contextx"
	"scoreboard/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Префиксы callback data. После префикса идёт только токен сессии.
const (
	PrefixSelect = "sel:"
	PrefixRemove = "rm:"
	PrefixKeep   = "keep:"
)

type Scoreboard interface {
	AddTeam(ctx context.Context, name string) (entity.Team, error)
	RemoveTeam(ctx context.Context, name string) error
	AdjustScore(ctx context.Context, name string, delta int, direction value.Direction) (entity.Team, error)
	Team(ctx context.Context, name string) (entity.Team, error)
	Ranking(ctx context.Context) ([]entity.RankedTeam, error)
	Settlement(ctx context.Context) (scoreboard.Settlement, error)
}

type Handler struct {
	svc      Scoreboard
	session  *session.Store
	validate *validator.Validate
}

func New(svc Scoreboard, sessions *session.Store) *Handler {
	return &Handler{
		svc:      svc,
		session:  sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Board показывает текущий рейтинг.
func (h *Handler) Board(ctx context.Context) view.Reply {
	ranked, err := h.svc.Ranking(ctx)
	if err != nil {
		return h.fail(ctx, "svc.Ranking", err)
	}

	return view.Board(ranked)
}

// Add добавляет команду из текста команды /add.
func (h *Handler) Add(ctx context.Context, text string) view.Reply {
	args, err := parseAddTeam(h.validate, text)
	switch {
	case errors.Is(err, errNameTooLong):
		return view.Text(view.AddTooLong, MaxTeamNameLen)
	case err != nil:
		return view.Reply{Text: view.AddUsage}
	}

	team, err := h.svc.AddTeam(ctx, args.Name)
	if err != nil {
		return h.fail(ctx, "svc.AddTeam", err)
	}

	return h.withBoard(ctx, view.Added(team))
}

// Teams строит клавиатуру выбора. Порядок как в рейтинге, в кнопке только токен.
func (h *Handler) Teams(ctx context.Context, chatID int64) view.Reply {
	ranked, err := h.svc.Ranking(ctx)
	if err != nil {
		return h.fail(ctx, "svc.Ranking", err)
	}

	buttons := lo.Map(ranked, func(rt entity.RankedTeam, _ int) view.Button {
		token := h.session.Issue(session.Intent{
			Action: session.ActionSelect,
			ChatID: chatID,
			Team:   rt.Team.Name,
		})

		return view.Button{Label: view.TeamLabel(rt.Team), Data: PrefixSelect + token}
	})

	return view.TeamsKeyboard(buttons)
}

// Select запоминает выбранную команду и показывает её карточку.
func (h *Handler) Select(ctx context.Context, chatID int64, token string) view.Reply {
	intent, ok := h.intent(chatID, token, session.ActionSelect, false)
	if !ok {
		return view.Reply{Text: view.SelectionGone}
	}

	team, err := h.svc.Team(ctx, intent.Team)
	if err != nil {
		return h.fail(ctx, "svc.Team", err)
	}

	h.session.Select(chatID, team.Name)

	return view.TeamCard(team)
}

// Adjust меняет счёт выбранной команды.
func (h *Handler) Adjust(ctx context.Context, chatID int64, text string, direction value.Direction) view.Reply {
	args, err := parseScore(h.validate, text)
	if err != nil {
		return view.Text(view.DeltaUsage, commandFor(direction))
	}

	name, ok := h.session.Selected(chatID)
	if !ok {
		return view.Reply{Text: view.NoTeamSelected}
	}

	team, err := h.svc.AdjustScore(ctx, name, args.Delta, direction)
	if err != nil {
		if domain.IsNotFound(err) {
			h.session.Deselect(chatID)
		}

		return h.fail(ctx, "svc.AdjustScore", err)
	}

	return h.withBoard(ctx, view.Adjusted(team, args.Delta, direction))
}

// AskRemove спрашивает подтверждение удаления выбранной команды.
func (h *Handler) AskRemove(ctx context.Context, chatID int64) view.Reply {
	name, ok := h.session.Selected(chatID)
	if !ok {
		return view.Reply{Text: view.NoTeamSelected}
	}

	if _, err := h.svc.Team(ctx, name); err != nil {
		h.session.Deselect(chatID)
		return h.fail(ctx, "svc.Team", err)
	}

	yes := h.session.Issue(session.Intent{Action: session.ActionConfirmRemove, ChatID: chatID, Team: name})
	no := h.session.Issue(session.Intent{Action: session.ActionCancelRemove, ChatID: chatID, Team: name})

	return view.ConfirmRemoval(name, PrefixRemove+yes, PrefixKeep+no)
}

// ConfirmRemove удаляет команду по подтверждённому намерению.
func (h *Handler) ConfirmRemove(ctx context.Context, chatID int64, token string) view.Reply {
	intent, ok := h.intent(chatID, token, session.ActionConfirmRemove, true)
	if !ok {
		return view.Reply{Text: view.SelectionGone}
	}

	if err := h.svc.RemoveTeam(ctx, intent.Team); err != nil {
		return h.fail(ctx, "svc.RemoveTeam", err)
	}

	if selected, ok := h.session.Selected(chatID); ok && selected == intent.Team {
		h.session.Deselect(chatID)
	}

	return h.withBoard(ctx, view.Removed(intent.Team))
}

func (h *Handler) CancelRemove(_ context.Context, chatID int64, token string) view.Reply {
	if _, ok := h.intent(chatID, token, session.ActionCancelRemove, true); !ok {
		return view.Reply{Text: view.SelectionGone}
	}

	return view.Reply{Text: view.RemoveCancelled}
}

// Settle показывает тройку лидеров.
func (h *Handler) Settle(ctx context.Context) view.Reply {
	settlement, err := h.svc.Settlement(ctx)
	if err != nil {
		return h.fail(ctx, "svc.Settlement", err)
	}

	return view.Settlement(settlement.Podium)
}

func (h *Handler) intent(chatID int64, token string, action session.Action, consume bool) (session.Intent, bool) {
	var (
		intent session.Intent
		ok     bool
	)

	if consume {
		intent, ok = h.session.Consume(token)
	} else {
		intent, ok = h.session.Resolve(token)
	}

	if !ok || intent.Action != action || intent.ChatID != chatID {
		return session.Intent{}, false
	}

	return intent, true
}

func (h *Handler) withBoard(ctx context.Context, reply view.Reply) view.Reply {
	board := h.Board(ctx)
	reply.Text = reply.Text + "\n\n" + board.Text

	return reply
}

func (h *Handler) fail(ctx context.Context, op string, err error) view.Reply {
	if domain.IsInvalidInput(err) || domain.IsDuplicateName(err) || domain.IsNotFound(err) {
		logger(ctx).Warn(op, logx.Error(err))
	} else {
		logger(ctx).Error(op, logx.Error(err))
	}

	return view.Reply{Text: view.Error(err)}
}

func commandFor(direction value.Direction) string {
	if direction == value.Decrease {
		return CommandMinus
	}

	return CommandPlus
}
