package middleware

import (
	"log/slog"
	"strconv"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/rs/xid"

	"scoreboard/pkg/contextx"
	"scoreboard/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Trace кладёт в контекст trace id, id пользователя и логгер с ними.
func Trace(ctx *th.Context, update telego.Update) error {
	traceID := contextx.TraceID(xid.New().String())

	attrs := []any{
		logx.Stringer(logx.FieldTraceID, traceID),
		slog.Int(logx.FieldUpdateID, update.UpdateID),
	}

	c := contextx.WithTraceID(ctx, traceID)

	if userID, ok := senderID(update); ok {
		id := contextx.UserID(strconv.FormatInt(userID, 10))
		c = contextx.WithUserID(c, id)
		attrs = append(attrs, logx.Stringer(logx.FieldUserID, id))
	}

	c = contextx.WithLogger(c, logger(c).With(attrs...))

	return ctx.WithContext(c).Next(update)
}
