// ABOUTME: Formats and emits every message the exchanger sends to either party
// ABOUTME: Menus, prompts, warnings and the cross-party notifications

package relay

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Donlord192/SmartExchangerBot/internal/currency"
	"github.com/Donlord192/SmartExchangerBot/internal/exchange"
	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

const (
	emojiStart    = "👋"
	emojiExchange = "🔄"
	emojiCrypto   = "₿"
	emojiFiat     = "💵"
	emojiNetwork  = "📡"
	emojiWallet   = "💳"
	emojiCard     = "💴"
	emojiTimer    = "⏳"
	emojiSuccess  = "✅"
	emojiDetails  = "📝"
	emojiPaid     = "💰"
	emojiWarning  = "⚠️"
	emojiCopy     = "📋"
	emojiPin      = "📌"
)

// Relay renders the conversation's outbound messages and hands them to the
// Messenger. It holds no state; every method is a single formatted send.
type Relay struct {
	m      Messenger
	logger *slog.Logger
}

// New creates a relay. Pass nil logger for default.
func New(m Messenger, logger *slog.Logger) *Relay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Relay{m: m, logger: logger.With("component", "relay")}
}

// MainMenu greets the user and offers the two exchange directions.
func (r *Relay) MainMenu(ctx context.Context, chatID int64) error {
	text := emojiStart + " *Привет! Я бот для безопасного обмена валют*\n\n" +
		emojiExchange + " *Выберите направление обмена:*"
	menu := [][]Choice{
		{{Label: emojiCrypto + " Крипта → " + emojiFiat + " Фиат", Data: CallbackCryptoToFiat}},
		{{Label: emojiFiat + " Фиат → " + emojiCrypto + " Крипта", Data: CallbackFiatToCrypto}},
	}
	return r.m.Send(ctx, chatID, text, menu)
}

// SourceCurrencyMenu lists the currencies the user can sell for the chosen
// direction.
func (r *Relay) SourceCurrencyMenu(ctx context.Context, chatID int64, dir exchange.Direction) error {
	if dir == exchange.CryptoToFiat {
		return r.currencyMenu(ctx, chatID, "Выберите криптовалюту для обмена:", currency.Cryptos(), PrefixFrom)
	}
	return r.currencyMenu(ctx, chatID, "Выберите фиатную валюту для обмена:", currency.Fiats(), PrefixFrom)
}

// DestCurrencyMenu lists the opposite catalog for the receiving side.
func (r *Relay) DestCurrencyMenu(ctx context.Context, chatID int64, dir exchange.Direction) error {
	if dir == exchange.CryptoToFiat {
		return r.currencyMenu(ctx, chatID, "Выберите фиатную валюту для получения:", currency.Fiats(), PrefixTo)
	}
	return r.currencyMenu(ctx, chatID, "Выберите криптовалюту для получения:", currency.Cryptos(), PrefixTo)
}

// OperatorCurrencyMenu lists the catalog matching the requisites type the
// operator picked.
func (r *Relay) OperatorCurrencyMenu(ctx context.Context, chatID int64, ct session.CurrencyType) error {
	if ct == session.CurrencyCrypto {
		return r.currencyMenu(ctx, chatID, "Выберите криптовалюту:", currency.Cryptos(), PrefixAdminCurrency)
	}
	return r.currencyMenu(ctx, chatID, "Выберите фиатную валюту:", currency.Fiats(), PrefixAdminCurrency)
}

func (r *Relay) currencyMenu(ctx context.Context, chatID int64, title string, list []currency.Descriptor, prefix string) error {
	menu := make([][]Choice, 0, len(list))
	for _, c := range list {
		menu = append(menu, []Choice{{Label: c.Name, Data: prefix + c.Code}})
	}
	return r.m.Send(ctx, chatID, emojiExchange+" *"+title+"*", menu)
}

// UserNetworkMenu asks the user which network the crypto should arrive on.
func (r *Relay) UserNetworkMenu(ctx context.Context, chatID int64, networks []string) error {
	return r.networkMenu(ctx, chatID, networks, PrefixNet)
}

// OperatorNetworkMenu asks the operator which network the requisites are for.
func (r *Relay) OperatorNetworkMenu(ctx context.Context, chatID int64, networks []string) error {
	return r.networkMenu(ctx, chatID, networks, PrefixAdminNet)
}

func (r *Relay) networkMenu(ctx context.Context, chatID int64, networks []string, prefix string) error {
	menu := make([][]Choice, 0, len(networks))
	for _, n := range networks {
		menu = append(menu, []Choice{{Label: emojiNetwork + " " + n, Data: prefix + n}})
	}
	return r.m.Send(ctx, chatID, emojiNetwork+" *Выберите сеть:*", menu)
}

// AmountPrompt asks for the exchange amount.
func (r *Relay) AmountPrompt(ctx context.Context, chatID int64) error {
	text := emojiFiat + " *Введите сумму для обмена:*\n\n" +
		"Пример: 1000 или 0.5"
	return r.m.Send(ctx, chatID, text, nil)
}

// InvalidAmount re-prompts after unparsable input.
func (r *Relay) InvalidAmount(ctx context.Context, chatID int64) error {
	text := emojiWarning + " *Неверный формат суммы!*\n\n" +
		"Пожалуйста, введите число (например: 1000 или 0.5)"
	return r.m.Send(ctx, chatID, text, nil)
}

// NotPositiveAmount re-prompts after a zero or negative amount.
func (r *Relay) NotPositiveAmount(ctx context.Context, chatID int64) error {
	return r.m.Send(ctx, chatID, emojiWarning+" *Сумма должна быть больше нуля!*", nil)
}

// RequisitesPrompt asks where the converted funds should be delivered. The
// wording depends on what the user receives: card details for fiat, a wallet
// address (with the chosen network, if any) for crypto.
func (r *Relay) RequisitesPrompt(ctx context.Context, chatID int64, u *session.User) error {
	return r.m.Send(ctx, chatID, requisitesPromptText(u), nil)
}

func requisitesPromptText(u *session.User) string {
	if u.Direction == exchange.CryptoToFiat {
		return emojiCard + " *Введите реквизиты для получения " + u.To + ":*\n\n" +
			"• Номер карты\n" +
			"• Банк (если требуется)\n" +
			"• Имя держателя карты"
	}
	suffix := ""
	if u.Network != "" {
		suffix = " (" + u.Network + ")"
	}
	return emojiWallet + " *Введите адрес кошелька для получения " + u.To + suffix + ":*"
}

// UserSummary confirms the finalized exchange back to the requester.
func (r *Relay) UserSummary(ctx context.Context, chatID int64, u *session.User) error {
	return r.m.Send(ctx, chatID, summaryText(u), nil)
}

func summaryText(u *session.User) string {
	return emojiExchange + " *Детали вашего обмена:*\n\n" +
		"▫️ *Отдаете:* " + formatInput(u.Amount) + " " + u.From + "\n" +
		"▫️ *Получаете:* ~" + exchange.FormatAmount(u.Converted) + " " + u.To + "\n\n" +
		emojiTimer + " *Ожидайте реквизиты для оплаты...*"
}

// OperatorRequest notifies the operator of a new finalized request and
// attaches the respond affordance bound to the requester.
func (r *Relay) OperatorRequest(ctx context.Context, operatorChat int64, req exchange.Request) error {
	menu := [][]Choice{{{
		Label: emojiDetails + " Отправить реквизиты",
		Data:  PrefixSendDetails + strconv.FormatInt(req.UserID, 10),
	}}}
	return r.m.Send(ctx, operatorChat, requestText(req), menu)
}

func requestText(req exchange.Request) string {
	text := emojiPin + " *Новый запрос на обмен:*\n\n" +
		"▫️ *Заявка:* `" + req.ID + "`\n" +
		"▫️ *Направление:* " + req.From + " → " + req.To + "\n" +
		"▫️ *Сумма:* " + formatInput(req.Amount) + " " + req.From + "\n" +
		"▫️ *Получает:* ~" + exchange.FormatAmount(req.Converted) + " " + req.To + "\n"
	if req.Network != "" {
		text += "▫️ *Сеть:* " + req.Network + "\n"
	}
	username := req.Username
	if username == "" {
		username = "нет"
	}
	text += "▫️ *Реквизиты получателя:*\n" + req.Requisites + "\n\n" +
		"👤 *Пользователь:* @" + username + " (ID: " + strconv.FormatInt(req.UserID, 10) + ")"
	return text
}

// PaidConfirmation acknowledges the user's payment claim.
func (r *Relay) PaidConfirmation(ctx context.Context, chatID int64) error {
	text := emojiSuccess + " *Ваша оплата получена!*\n\n" +
		emojiTimer + " Средства поступят на указанные реквизиты в течение 15-20 минут."
	return r.m.Send(ctx, chatID, text, nil)
}

// PaidNotice tells the operator the user claims to have paid.
func (r *Relay) PaidNotice(ctx context.Context, operatorChat int64, username string, userID int64) error {
	who := username
	if who == "" {
		who = strconv.FormatInt(userID, 10)
	}
	return r.m.Send(ctx, operatorChat, emojiPaid+" Пользователь @"+who+" подтвердил оплату по обмену", nil)
}

// CopyAck answers a copy-requisites tap with an ephemeral toast.
func (r *Relay) CopyAck(ctx context.Context, callbackID string) error {
	return r.m.AnswerCallback(ctx, callbackID, "Реквизиты скопированы в буфер!", false)
}

// DetailsTypeMenu asks the operator which kind of requisites they will send.
func (r *Relay) DetailsTypeMenu(ctx context.Context, chatID int64) error {
	menu := [][]Choice{
		{{Label: emojiCrypto + " Криптовалюта", Data: CallbackAdminCrypto}},
		{{Label: emojiFiat + " Фиат", Data: CallbackAdminFiat}},
	}
	return r.m.Send(ctx, chatID, emojiDetails+" *Выберите тип валюты для реквизитов:*", menu)
}

// DetailsPrompt asks the operator for free-text requisites.
func (r *Relay) DetailsPrompt(ctx context.Context, chatID int64) error {
	text := emojiDetails + " *Введите реквизиты для отправки:*\n\n" +
		"Для крипты: адрес кошелька\n" +
		"Для фиата: реквизиты карты/счета"
	return r.m.Send(ctx, chatID, text, nil)
}

// DetailsPromptNetwork is the wallet-specific prompt once a network is set.
func (r *Relay) DetailsPromptNetwork(ctx context.Context, chatID int64, code, network string) error {
	text := emojiDetails + " *Введите реквизиты для отправки:*\n\n" +
		"Адрес кошелька " + code + " (" + network + ")"
	return r.m.Send(ctx, chatID, text, nil)
}

// Instructions delivers the operator's payment details to the requester with
// the paid and copy affordances.
func (r *Relay) Instructions(ctx context.Context, userChat int64, ct session.CurrencyType, code, network, details string) error {
	menu := [][]Choice{
		{{Label: emojiSuccess + " Я оплатил", Data: CallbackPaid}},
		{{Label: emojiCopy + " Скопировать реквизиты", Data: PrefixCopy + details}},
	}
	return r.m.Send(ctx, userChat, instructionsText(ct, code, network, details), menu)
}

func instructionsText(ct session.CurrencyType, code, network, details string) string {
	if ct == session.CurrencyCrypto {
		suffix := ""
		if network != "" {
			suffix = " (" + network + ")"
		}
		return emojiWallet + " *Реквизиты для оплаты " + code + suffix + ":*\n\n" +
			"`" + details + "`\n\n" +
			emojiCopy + " Нажмите на текст, чтобы скопировать"
	}
	return emojiCard + " *Реквизиты для оплаты (" + code + "):*\n\n" +
		"`" + details + "`\n\n" +
		emojiCopy + " Нажмите на текст, чтобы скопировать"
}

// OperatorConfirm tells the operator the instructions went out.
func (r *Relay) OperatorConfirm(ctx context.Context, chatID int64) error {
	return r.m.Send(ctx, chatID, emojiSuccess+" *Реквизиты успешно отправлены пользователю!*", nil)
}

// formatInput renders an amount the way the user typed it, without padding.
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
