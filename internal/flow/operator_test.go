// ABOUTME: Scenario tests for the operator respond sub-flow
// ABOUTME: Covers currency/network selection, dispatch and slot rebinding

package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

func TestOperatorFlow_CryptoWithNetwork(t *testing.T) {
	_, of, sessions, m := newTestFlows(t)
	ctx := context.Background()

	require.NoError(t, of.Handle(ctx, Respond{UserID: 42}))
	msg := m.last(t)
	assert.Equal(t, operatorChat, msg.chatID)
	assert.Contains(t, msg.text, "Выберите тип валюты для реквизитов")
	assert.Equal(t, []string{"admin_crypto", "admin_fiat"}, menuData(msg))

	require.NoError(t, of.Handle(ctx, TypeChosen{Type: session.CurrencyCrypto}))
	msg = m.last(t)
	assert.Contains(t, msg.text, "Выберите криптовалюту")
	assert.Contains(t, menuData(msg), "admin_currency_USDT")

	require.NoError(t, of.Handle(ctx, CurrencyChosen{Role: RolePayout, Code: "USDT"}))
	msg = m.last(t)
	assert.Contains(t, msg.text, "Выберите сеть")
	assert.Equal(t, []string{"admin_net_ERC20", "admin_net_TRC20", "admin_net_BEP20"}, menuData(msg))

	require.NoError(t, of.Handle(ctx, NetworkChosen{Name: "TRC20"}))
	assert.Contains(t, m.last(t).text, "Адрес кошелька USDT (TRC20)")

	require.NoError(t, of.Handle(ctx, Text{Body: "TXyzWalletAddress"}))

	// Instructions go to the captured requester with both affordances.
	require.GreaterOrEqual(t, len(m.sent), 2)
	instructions := m.sent[len(m.sent)-2]
	assert.Equal(t, int64(42), instructions.chatID)
	assert.Contains(t, instructions.text, "Реквизиты для оплаты USDT (TRC20)")
	assert.Contains(t, instructions.text, "`TXyzWalletAddress`")
	assert.Equal(t, []string{"paid", "copy_TXyzWalletAddress"}, menuData(instructions))

	confirm := m.last(t)
	assert.Equal(t, operatorChat, confirm.chatID)
	assert.Contains(t, confirm.text, "Реквизиты успешно отправлены")

	// Session destroyed: further text is ignored.
	_, ok := sessions.Operator()
	assert.False(t, ok)
	before := len(m.sent)
	require.NoError(t, of.Handle(ctx, Text{Body: "again"}))
	assert.Equal(t, before, len(m.sent))
}

func TestOperatorFlow_FiatSkipsNetwork(t *testing.T) {
	_, of, _, m := newTestFlows(t)
	ctx := context.Background()

	require.NoError(t, of.Handle(ctx, Respond{UserID: 7}))
	require.NoError(t, of.Handle(ctx, TypeChosen{Type: session.CurrencyFiat}))
	msg := m.last(t)
	assert.Contains(t, msg.text, "Выберите фиатную валюту")
	assert.Contains(t, menuData(msg), "admin_currency_RUB")

	require.NoError(t, of.Handle(ctx, CurrencyChosen{Role: RolePayout, Code: "RUB"}))
	assert.Contains(t, m.last(t).text, "Введите реквизиты для отправки")
	assert.False(t, m.anySentContains("Выберите сеть"))

	require.NoError(t, of.Handle(ctx, Text{Body: "4276 0000 1111 2222, Иван И."}))
	instructions := m.sent[len(m.sent)-2]
	assert.Equal(t, int64(7), instructions.chatID)
	assert.Contains(t, instructions.text, "Реквизиты для оплаты (RUB)")
}

func TestOperatorFlow_RespondRebindsSlot(t *testing.T) {
	_, of, sessions, _ := newTestFlows(t)
	ctx := context.Background()

	require.NoError(t, of.Handle(ctx, Respond{UserID: 1}))
	require.NoError(t, of.Handle(ctx, TypeChosen{Type: session.CurrencyCrypto}))
	require.NoError(t, of.Handle(ctx, CurrencyChosen{Role: RolePayout, Code: "BTC"}))

	// A new respond mid-flow discards the first flow's progress.
	require.NoError(t, of.Handle(ctx, Respond{UserID: 2}))
	op, ok := sessions.Operator()
	require.True(t, ok)
	assert.Equal(t, int64(2), op.UserID)
	assert.Equal(t, session.StepSelectCurrencyType, op.Step)
	assert.Empty(t, op.Currency)
}

func TestOperatorFlow_TextBeforeDetailsIgnored(t *testing.T) {
	_, of, _, m := newTestFlows(t)
	ctx := context.Background()

	// No operator session at all.
	require.NoError(t, of.Handle(ctx, Text{Body: "hello"}))
	assert.Empty(t, m.sent)

	// Session exists but details are not awaited yet.
	require.NoError(t, of.Handle(ctx, Respond{UserID: 3}))
	before := len(m.sent)
	require.NoError(t, of.Handle(ctx, Text{Body: "hello"}))
	assert.Equal(t, before, len(m.sent))
}

func TestOperatorFlow_SelectionsWithoutSessionIgnored(t *testing.T) {
	_, of, _, m := newTestFlows(t)
	ctx := context.Background()

	require.NoError(t, of.Handle(ctx, TypeChosen{Type: session.CurrencyCrypto}))
	require.NoError(t, of.Handle(ctx, CurrencyChosen{Role: RolePayout, Code: "BTC"}))
	require.NoError(t, of.Handle(ctx, NetworkChosen{Name: "TRC20"}))
	assert.Empty(t, m.sent)
}
