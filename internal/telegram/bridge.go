// ABOUTME: Telegram transport bridge for the exchanger
// ABOUTME: Long-polls updates, decodes them into flow events, routes by sender

package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Donlord192/SmartExchangerBot/internal/config"
	"github.com/Donlord192/SmartExchangerBot/internal/exchange"
	"github.com/Donlord192/SmartExchangerBot/internal/flow"
	"github.com/Donlord192/SmartExchangerBot/internal/relay"
	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

// Bridge connects the Telegram Bot API to the conversation flows. Updates
// are processed one at a time off a single long-polling loop, so sessions
// are never mutated concurrently.
type Bridge struct {
	bot          *tgbotapi.BotAPI
	userFlow     *flow.UserFlow
	operatorFlow *flow.OperatorFlow
	operatorID   int64
	logger       *slog.Logger
}

// New creates a bridge and wires the session store, rate table, relay and
// flows behind it.
func New(cfg *config.Config, logger *slog.Logger) (*Bridge, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}

	table := exchange.DefaultTable()
	for code, rate := range cfg.Rates {
		table[code] = rate
	}

	sessions := session.NewStore()
	r := relay.New(&sender{bot: bot}, logger)

	return &Bridge{
		bot:          bot,
		userFlow:     flow.NewUserFlow(sessions, table, r, cfg.Telegram.OperatorID, logger),
		operatorFlow: flow.NewOperatorFlow(sessions, r, cfg.Telegram.OperatorID, logger),
		operatorID:   cfg.Telegram.OperatorID,
		logger:       logger.With("component", "telegram"),
	}, nil
}

// BotUsername returns the authenticated bot account name.
func (b *Bridge) BotUsername() string {
	return b.bot.Self.UserName
}

// Run polls for updates until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.bot.GetUpdatesChan(updateCfg)

	b.logger.Info("telegram bridge running", "bot", b.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("shutting down telegram bridge")
			b.bot.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bridge) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		b.handleMessage(ctx, upd.Message)
	}
}

// handleMessage routes commands and free text. Errors are logged and the
// event's remaining processing is dropped; there are no retries.
func (b *Bridge) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.From.IsBot {
		return
	}
	from := flow.Sender{ID: msg.From.ID, ChatID: msg.Chat.ID, Username: msg.From.UserName}

	if msg.IsCommand() {
		if msg.Command() != "start" {
			return
		}
		if err := b.userFlow.Handle(ctx, from, flow.Start{}); err != nil {
			b.logger.Error("start command failed", "user_id", from.ID, "error", err)
		}
		return
	}
	if msg.Text == "" {
		return
	}

	// The operator may also run exchanges as a regular user, so operator
	// text is offered to both flows; each ignores text its state does not
	// await.
	if err := b.userFlow.Handle(ctx, from, flow.Text{Body: msg.Text}); err != nil {
		b.logger.Error("user message failed", "user_id", from.ID, "error", err)
	}
	if msg.From.ID == b.operatorID {
		if err := b.operatorFlow.Handle(ctx, flow.Text{Body: msg.Text}); err != nil {
			b.logger.Error("operator message failed", "error", err)
		}
	}
}

func (b *Bridge) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	from := flow.Sender{ID: cq.From.ID, ChatID: cq.Message.Chat.ID, Username: cq.From.UserName}

	if cq.From.ID == b.operatorID {
		if ev, ok := decodeOperatorEvent(cq.Data); ok {
			if err := b.operatorFlow.Handle(ctx, ev); err != nil {
				b.logger.Error("operator callback failed", "data", cq.Data, "error", err)
			}
			return
		}
	}

	ev, ok := decodeUserEvent(cq.Data, cq.ID)
	if !ok {
		b.logger.Debug("unhandled callback", "data", cq.Data, "user_id", from.ID)
		return
	}
	if err := b.userFlow.Handle(ctx, from, ev); err != nil {
		b.logger.Error("user callback failed", "data", cq.Data, "user_id", from.ID, "error", err)
	}
}
