package handler

import (
	"context"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"scoreboard/internal/transport/bot/view"
	"scoreboard/pkg/logx"
)

func (h *Handler) OnSelectCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return h.callback(ctx, query, PrefixSelect, false, h.Select)
}

func (h *Handler) OnRemoveCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return h.callback(ctx, query, PrefixRemove, true, h.ConfirmRemove)
}

func (h *Handler) OnKeepCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return h.callback(ctx, query, PrefixKeep, true, h.CancelRemove)
}

// callback отвечает на нажатие и шлёт результат новым сообщением.
// closeKeyboard убирает кнопки у исходного сообщения, чтобы не нажать дважды.
func (h *Handler) callback(
	ctx *th.Context,
	query telego.CallbackQuery,
	prefix string,
	closeKeyboard bool,
	action func(ctx context.Context, chatID int64, token string) view.Reply,
) error {
	// Без часиков на кнопке в любом случае.
	defer func() {
		if err := ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID)); err != nil {
			logger(ctx).Warn("bot.AnswerCallbackQuery", logx.Error(err))
		}
	}()

	if query.Message == nil {
		return nil
	}

	chatID := query.Message.GetChat().ID
	reply := action(ctx, chatID, strings.TrimPrefix(query.Data, prefix))

	if closeKeyboard {
		_, err := ctx.Bot().EditMessageReplyMarkup(ctx, &telego.EditMessageReplyMarkupParams{
			ChatID:    tu.ID(chatID),
			MessageID: query.Message.GetMessageID(),
		})
		if err != nil {
			logger(ctx).Warn("bot.EditMessageReplyMarkup", logx.Error(err))
		}
	}

	return h.send(ctx, chatID, reply)
}
