package bot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"scoreboard/internal/config"
	"scoreboard/internal/transport/bot/handler"
	"scoreboard/internal/transport/bot/session"
	"scoreboard/pkg/contextx"
	"scoreboard/pkg/httpx"
	"scoreboard/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollingTimeout = 60

// Bot представляет собой Telegram-бота
type Bot struct {
	bot     *telego.Bot
	adminID int64
	handler *handler.Handler
}

// NewClient создаёт клиент Bot API. Запросы и ответы пишутся в лог, токен маскируется.
func NewClient(cfg config.Bot) (*telego.Bot, error) {
	masker := logx.NewSensitiveDataMasker()

	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
		),
	}

	bot, err := telego.NewBot(cfg.Token,
		telego.WithHTTPClient(httpClient),
		telego.WithLogger(newSlogAdapter(masker)),
	)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return bot, nil
}

// New создает новый экземпляр бота
func New(client *telego.Bot, cfg config.Bot, svc handler.Scoreboard) *Bot {
	return &Bot{
		bot:     client,
		adminID: cfg.AdminID,
		handler: handler.New(svc, session.New(cfg.SessionTTL)),
	}
}

// Run получает обновления long polling-ом до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.adminID)

	go func() {
		<-ctx.Done()

		if err := botHandler.StopWithContext(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("botHandler.Stop", logx.Error(err))
		}
	}()

	logger(ctx).Info("bot started")

	if err := botHandler.Start(); err != nil {
		return fmt.Errorf("botHandler.Start: %w", err)
	}

	logger(ctx).Info("bot stopped")

	return nil
}
