// ABOUTME: Decodes inline keyboard callback data into flow events
// ABOUTME: Inverse of the relay's menu encoding, same prefix constants

package telegram

import (
	"strconv"
	"strings"

	"github.com/Donlord192/SmartExchangerBot/internal/exchange"
	"github.com/Donlord192/SmartExchangerBot/internal/flow"
	"github.com/Donlord192/SmartExchangerBot/internal/relay"
	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

// decodeUserEvent maps callback data any sender may produce to a user flow
// event. callbackID is attached to events answered ephemerally.
func decodeUserEvent(data, callbackID string) (flow.Event, bool) {
	switch {
	case data == relay.CallbackCryptoToFiat:
		return flow.DirectionChosen{Direction: exchange.CryptoToFiat}, true
	case data == relay.CallbackFiatToCrypto:
		return flow.DirectionChosen{Direction: exchange.FiatToCrypto}, true
	case data == relay.CallbackPaid:
		return flow.PaidAck{}, true
	case strings.HasPrefix(data, relay.PrefixFrom):
		return flow.CurrencyChosen{Role: flow.RoleFrom, Code: strings.TrimPrefix(data, relay.PrefixFrom)}, true
	case strings.HasPrefix(data, relay.PrefixTo):
		return flow.CurrencyChosen{Role: flow.RoleTo, Code: strings.TrimPrefix(data, relay.PrefixTo)}, true
	case strings.HasPrefix(data, relay.PrefixNet):
		return flow.NetworkChosen{Name: strings.TrimPrefix(data, relay.PrefixNet)}, true
	case strings.HasPrefix(data, relay.PrefixCopy):
		return flow.CopyRequest{CallbackID: callbackID}, true
	}
	return nil, false
}

// decodeOperatorEvent maps operator-only callback data to an operator flow
// event. Returns false for data the user decoder should handle instead.
func decodeOperatorEvent(data string) (flow.Event, bool) {
	switch {
	case strings.HasPrefix(data, relay.PrefixSendDetails):
		userID, err := strconv.ParseInt(strings.TrimPrefix(data, relay.PrefixSendDetails), 10, 64)
		if err != nil {
			return nil, false
		}
		return flow.Respond{UserID: userID}, true
	case data == relay.CallbackAdminCrypto:
		return flow.TypeChosen{Type: session.CurrencyCrypto}, true
	case data == relay.CallbackAdminFiat:
		return flow.TypeChosen{Type: session.CurrencyFiat}, true
	case strings.HasPrefix(data, relay.PrefixAdminCurrency):
		return flow.CurrencyChosen{Role: flow.RolePayout, Code: strings.TrimPrefix(data, relay.PrefixAdminCurrency)}, true
	case strings.HasPrefix(data, relay.PrefixAdminNet):
		return flow.NetworkChosen{Name: strings.TrimPrefix(data, relay.PrefixAdminNet)}, true
	}
	return nil, false
}
