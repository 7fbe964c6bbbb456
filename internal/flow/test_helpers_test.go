// ABOUTME: Shared test fixtures for the flow state machines
// ABOUTME: Records every outbound send so scenarios can assert on it

package flow

import (
	"context"
	"strings"
	"testing"

	"github.com/Donlord192/SmartExchangerBot/internal/exchange"
	"github.com/Donlord192/SmartExchangerBot/internal/relay"
	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

const operatorChat int64 = 9000

// sentMessage captures one Messenger.Send call.
type sentMessage struct {
	chatID int64
	text   string
	menu   [][]relay.Choice
}

// mockMessenger implements relay.Messenger and records all traffic.
type mockMessenger struct {
	sent []sentMessage
	acks []string
	err  error
}

func (m *mockMessenger) Send(_ context.Context, chatID int64, text string, menu [][]relay.Choice) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text, menu: menu})
	return nil
}

func (m *mockMessenger) AnswerCallback(_ context.Context, callbackID, text string, _ bool) error {
	if m.err != nil {
		return m.err
	}
	m.acks = append(m.acks, callbackID+": "+text)
	return nil
}

// last returns the most recent send.
func (m *mockMessenger) last(t *testing.T) sentMessage {
	t.Helper()
	if len(m.sent) == 0 {
		t.Fatal("no messages sent")
	}
	return m.sent[len(m.sent)-1]
}

// menuData flattens a sent menu into its callback data values.
func menuData(msg sentMessage) []string {
	var data []string
	for _, row := range msg.menu {
		for _, c := range row {
			data = append(data, c.Data)
		}
	}
	return data
}

// anySentContains reports whether any recorded message contains substr.
func (m *mockMessenger) anySentContains(substr string) bool {
	for _, s := range m.sent {
		if strings.Contains(s.text, substr) {
			return true
		}
	}
	return false
}

// newTestFlows wires both flows over a fresh store and mock messenger.
func newTestFlows(t *testing.T) (*UserFlow, *OperatorFlow, *session.Store, *mockMessenger) {
	t.Helper()
	m := &mockMessenger{}
	sessions := session.NewStore()
	r := relay.New(m, nil)
	uf := NewUserFlow(sessions, exchange.DefaultTable(), r, operatorChat, nil)
	of := NewOperatorFlow(sessions, r, operatorChat, nil)
	return uf, of, sessions, m
}
