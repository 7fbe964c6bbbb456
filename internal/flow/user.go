// ABOUTME: State machine driving a requester from direction choice to a finalized request
// ABOUTME: State is implicit in which session fields are already populated

package flow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Donlord192/SmartExchangerBot/internal/currency"
	"github.com/Donlord192/SmartExchangerBot/internal/exchange"
	"github.com/Donlord192/SmartExchangerBot/internal/relay"
	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

// UserFlow advances a requester's conversation one inbound event at a time.
// On completion it relays the finalized request to the operator and resets
// the session, cycling back to the initial empty state.
type UserFlow struct {
	sessions     *session.Store
	rates        exchange.Table
	relay        *relay.Relay
	operatorChat int64
	logger       *slog.Logger
}

// NewUserFlow creates a user flow. Pass nil logger for default.
func NewUserFlow(sessions *session.Store, rates exchange.Table, r *relay.Relay, operatorChat int64, logger *slog.Logger) *UserFlow {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserFlow{
		sessions:     sessions,
		rates:        rates,
		relay:        r,
		operatorChat: operatorChat,
		logger:       logger.With("component", "user_flow"),
	}
}

// Handle applies one inbound event. A returned error means an outbound send
// failed; the event's remaining sends are skipped and nothing is rolled
// back.
func (f *UserFlow) Handle(ctx context.Context, from Sender, ev Event) error {
	switch ev := ev.(type) {
	case Start:
		return f.relay.MainMenu(ctx, from.ChatID)

	case DirectionChosen:
		u := f.sessions.User(from.ID)
		u.Direction = ev.Direction
		return f.relay.SourceCurrencyMenu(ctx, from.ChatID, ev.Direction)

	case CurrencyChosen:
		return f.handleCurrency(ctx, from, ev)

	case NetworkChosen:
		u := f.sessions.User(from.ID)
		u.Network = ev.Name
		return f.relay.AmountPrompt(ctx, from.ChatID)

	case Text:
		return f.handleText(ctx, from, ev.Body)

	case PaidAck:
		if err := f.relay.PaidConfirmation(ctx, from.ChatID); err != nil {
			return err
		}
		return f.relay.PaidNotice(ctx, f.operatorChat, from.Username, from.ID)

	case CopyRequest:
		return f.relay.CopyAck(ctx, ev.CallbackID)
	}
	return nil
}

func (f *UserFlow) handleCurrency(ctx context.Context, from Sender, ev CurrencyChosen) error {
	u := f.sessions.User(from.ID)
	switch ev.Role {
	case RoleFrom:
		u.From = ev.Code
		return f.relay.DestCurrencyMenu(ctx, from.ChatID, u.Direction)

	case RoleTo:
		u.To = ev.Code
		// The network question only arises when the user will receive
		// crypto, i.e. on the FiatToCrypto leg for the destination
		// currency.
		if u.Direction == exchange.FiatToCrypto {
			if c, ok := currency.Find(ev.Code); ok && c.HasNetworks() {
				return f.relay.UserNetworkMenu(ctx, from.ChatID, c.Networks)
			}
		}
		return f.relay.AmountPrompt(ctx, from.ChatID)
	}
	return nil
}

func (f *UserFlow) handleText(ctx context.Context, from Sender, body string) error {
	u, ok := f.sessions.Lookup(from.ID)
	if !ok {
		return nil
	}
	switch {
	case u.AwaitingAmount():
		amount, err := exchange.ParseAmount(body)
		if errors.Is(err, exchange.ErrNotPositive) {
			return f.relay.NotPositiveAmount(ctx, from.ChatID)
		}
		if err != nil {
			return f.relay.InvalidAmount(ctx, from.ChatID)
		}
		// Amount and converted amount are set together and never
		// recomputed afterwards.
		u.Amount = amount
		u.Converted = f.rates.Convert(amount, u.From, u.To, u.Direction)
		return f.relay.RequisitesPrompt(ctx, from.ChatID, u)

	case u.AwaitingRequisites():
		u.Requisites = body
		if err := f.relay.UserSummary(ctx, from.ChatID, u); err != nil {
			return err
		}
		req := exchange.Request{
			ID:         exchange.NewRequestID(),
			UserID:     from.ID,
			Username:   from.Username,
			Direction:  u.Direction,
			From:       u.From,
			To:         u.To,
			Network:    u.Network,
			Amount:     u.Amount,
			Converted:  u.Converted,
			Requisites: u.Requisites,
		}
		if err := f.relay.OperatorRequest(ctx, f.operatorChat, req); err != nil {
			return err
		}
		f.logger.Info("exchange request relayed",
			"request_id", req.ID,
			"user_id", req.UserID,
			"direction", req.Direction.String(),
			"from", req.From,
			"to", req.To)
		f.sessions.ResetUser(from.ID)
		return nil
	}
	// No field awaits text; ignore.
	return nil
}
