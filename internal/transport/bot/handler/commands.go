package handler

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"scoreboard/internal/domain/value"
	"scoreboard/internal/transport/bot/view"
	"scoreboard/pkg/logx"
)

const (
	CommandStart  = "start"
	CommandHelp   = "help"
	CommandBoard  = "board"
	CommandAdd    = "add"
	CommandTeams  = "teams"
	CommandPlus   = "plus"
	CommandMinus  = "minus"
	CommandRemove = "remove"
	CommandSettle = "settle"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, view.Reply{Text: view.StartMessage})
}

func (h *Handler) OnBoard(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.Board(ctx))
}

func (h *Handler) OnAdd(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.Add(ctx, msg.Text))
}

func (h *Handler) OnTeams(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.Teams(ctx, msg.Chat.ID))
}

func (h *Handler) OnPlus(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.Adjust(ctx, msg.Chat.ID, msg.Text, value.Increase))
}

func (h *Handler) OnMinus(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.Adjust(ctx, msg.Chat.ID, msg.Text, value.Decrease))
}

func (h *Handler) OnRemove(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.AskRemove(ctx, msg.Chat.ID))
}

func (h *Handler) OnSettle(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.Settle(ctx))
}

func (h *Handler) send(ctx *th.Context, chatID int64, reply view.Reply) error {
	msg := tu.Message(tu.ID(chatID), reply.Text).WithParseMode(telego.ModeHTML)
	if reply.Keyboard != nil {
		msg = msg.WithReplyMarkup(reply.Keyboard)
	}

	if _, err := ctx.Bot().SendMessage(ctx, msg); err != nil {
		logger(ctx).Error("bot.SendMessage", slog.Int64(logx.FieldChatID, chatID), logx.Error(err))
		return err
	}

	return nil
}
