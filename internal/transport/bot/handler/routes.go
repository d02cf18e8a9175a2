package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"scoreboard/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	bh.Use(middleware.Trace)

	// Сообщения и кнопки принимаются только от оператора.
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual(CommandStart))
	adminGroup.HandleMessage(h.OnStart, th.CommandEqual(CommandHelp))
	adminGroup.HandleMessage(h.OnBoard, th.CommandEqual(CommandBoard))
	adminGroup.HandleMessage(h.OnAdd, th.CommandEqual(CommandAdd))
	adminGroup.HandleMessage(h.OnTeams, th.CommandEqual(CommandTeams))
	adminGroup.HandleMessage(h.OnPlus, th.CommandEqual(CommandPlus))
	adminGroup.HandleMessage(h.OnMinus, th.CommandEqual(CommandMinus))
	adminGroup.HandleMessage(h.OnRemove, th.CommandEqual(CommandRemove))
	adminGroup.HandleMessage(h.OnSettle, th.CommandEqual(CommandSettle))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnSelectCallback, th.CallbackDataPrefix(PrefixSelect))
	cbGroup.HandleCallbackQuery(h.OnRemoveCallback, th.CallbackDataPrefix(PrefixRemove))
	cbGroup.HandleCallbackQuery(h.OnKeepCallback, th.CallbackDataPrefix(PrefixKeep))
}
