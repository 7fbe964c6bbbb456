// ABOUTME: relay.Messenger implementation over the Telegram Bot API
// ABOUTME: Renders Choice rows as inline keyboards, sends Markdown messages

package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Donlord192/SmartExchangerBot/internal/relay"
)

// sender adapts tgbotapi to relay.Messenger. The Bot API client has no
// context support, so ctx is accepted for the interface but not consulted.
type sender struct {
	bot *tgbotapi.BotAPI
}

func (s *sender) Send(_ context.Context, chatID int64, text string, menu [][]relay.Choice) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if len(menu) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(menu))
		for _, row := range menu {
			buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
			for _, c := range row {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Data))
			}
			rows = append(rows, buttons)
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	_, err := s.bot.Send(msg)
	return err
}

func (s *sender) AnswerCallback(_ context.Context, callbackID, text string, alert bool) error {
	cb := tgbotapi.NewCallback(callbackID, text)
	cb.ShowAlert = alert
	_, err := s.bot.Request(cb)
	return err
}
