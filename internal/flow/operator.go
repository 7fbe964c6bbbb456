// ABOUTME: State machine driving the operator's respond sub-flow
// ABOUTME: One respond flow exists system-wide; restarting rebinds the slot

package flow

import (
	"context"
	"log/slog"

	"github.com/Donlord192/SmartExchangerBot/internal/currency"
	"github.com/Donlord192/SmartExchangerBot/internal/relay"
	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

// OperatorFlow walks the operator from picking a pending request to
// dispatching payment instructions back to the requester. The bridge only
// feeds it events from the configured operator identity.
type OperatorFlow struct {
	sessions *session.Store
	relay    *relay.Relay
	chatID   int64
	logger   *slog.Logger
}

// NewOperatorFlow creates an operator flow bound to the operator's chat.
// Pass nil logger for default.
func NewOperatorFlow(sessions *session.Store, r *relay.Relay, chatID int64, logger *slog.Logger) *OperatorFlow {
	if logger == nil {
		logger = slog.Default()
	}
	return &OperatorFlow{
		sessions: sessions,
		relay:    r,
		chatID:   chatID,
		logger:   logger.With("component", "operator_flow"),
	}
}

// Handle applies one inbound operator event. Events that do not fit the
// current step are silently dropped.
func (f *OperatorFlow) Handle(ctx context.Context, ev Event) error {
	switch ev := ev.(type) {
	case Respond:
		f.sessions.StartOperator(ev.UserID)
		f.logger.Info("operator responding to request", "user_id", ev.UserID)
		return f.relay.DetailsTypeMenu(ctx, f.chatID)

	case TypeChosen:
		op, ok := f.sessions.Operator()
		if !ok {
			return nil
		}
		op.CurrencyType = ev.Type
		if ev.Type == session.CurrencyCrypto {
			op.Step = session.StepSelectCrypto
		} else {
			op.Step = session.StepSelectFiat
		}
		return f.relay.OperatorCurrencyMenu(ctx, f.chatID, ev.Type)

	case CurrencyChosen:
		op, ok := f.sessions.Operator()
		if !ok {
			return nil
		}
		op.Currency = ev.Code
		if op.CurrencyType == session.CurrencyCrypto {
			if c, found := currency.Find(ev.Code); found && c.HasNetworks() {
				op.Step = session.StepSelectNetwork
				return f.relay.OperatorNetworkMenu(ctx, f.chatID, c.Networks)
			}
		}
		op.Step = session.StepEnterDetails
		return f.relay.DetailsPrompt(ctx, f.chatID)

	case NetworkChosen:
		op, ok := f.sessions.Operator()
		if !ok {
			return nil
		}
		op.Network = ev.Name
		op.Step = session.StepEnterDetails
		return f.relay.DetailsPromptNetwork(ctx, f.chatID, op.Currency, ev.Name)

	case Text:
		op, ok := f.sessions.Operator()
		if !ok || op.Step != session.StepEnterDetails {
			return nil
		}
		if err := f.relay.Instructions(ctx, op.UserID, op.CurrencyType, op.Currency, op.Network, ev.Body); err != nil {
			return err
		}
		if err := f.relay.OperatorConfirm(ctx, f.chatID); err != nil {
			return err
		}
		f.logger.Info("instructions dispatched",
			"user_id", op.UserID,
			"currency", op.Currency,
			"network", op.Network)
		f.sessions.EndOperator()
		return nil
	}
	return nil
}
