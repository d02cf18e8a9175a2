package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"scoreboard/pkg/logx"
)

// AdminOnly пропускает дальше только апдейты от оператора, остальные молча глотает.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		userID, ok := senderID(update)
		if !ok {
			return nil
		}

		if userID == adminID {
			return ctx.Next(update)
		}

		logger(ctx).Warn("update from non-admin ignored", slog.Int64(logx.FieldUserID, userID))

		return nil
	}
}

func senderID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, true
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID, true
	default:
		return 0, false
	}
}
