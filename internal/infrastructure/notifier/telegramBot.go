package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"scoreboard/internal/domain/entity"
	"scoreboard/internal/domain/service/scoreboard"
	"scoreboard/pkg/contextx"
	"scoreboard/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Formatter рендерит пьедестал в HTML.
type Formatter func(podium []entity.RankedTeam) string

// TelegramBot дублирует итоги в отдельный чат.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
	format Formatter
}

func NewTelegramBot(bot *telego.Bot, chatID int64, format Formatter) *TelegramBot {
	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
		format: format,
	}
}

// Run рассылает итоги из канала, пока не закроется канал или ctx.
func (b *TelegramBot) Run(ctx context.Context, settlements <-chan scoreboard.Settlement) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case settlement, ok := <-settlements:
			if !ok {
				return nil
			}

			if err := b.SendSettlement(ctx, settlement); err != nil {
				logger(ctx).Error("failed to announce settlement", slog.Int64(logx.FieldChatID, b.chatID), logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendSettlement(ctx context.Context, settlement scoreboard.Settlement) error {
	return b.send(ctx, tu.Message(tu.ID(b.chatID), b.format(settlement.Podium)).WithParseMode(telego.ModeHTML))
}

func (b *TelegramBot) send(ctx context.Context, msg *telego.SendMessageParams) error {
	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
