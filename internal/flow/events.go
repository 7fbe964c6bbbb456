// ABOUTME: Tagged inbound events the transport decodes updates into
// ABOUTME: One event set shared by the user and operator state machines

package flow

import (
	"github.com/Donlord192/SmartExchangerBot/internal/exchange"
	"github.com/Donlord192/SmartExchangerBot/internal/session"
)

// Sender identifies who triggered an event and where replies go. In private
// Telegram chats ChatID equals ID, but the flows never rely on that for
// inbound routing.
type Sender struct {
	ID       int64
	ChatID   int64
	Username string
}

// Event is a decoded inbound interaction. The concrete type carries the
// payload; the receiving flow decides whether it applies in the current
// state.
type Event interface {
	event()
}

// Start is the explicit begin command.
type Start struct{}

// DirectionChosen selects the exchange direction from the main menu.
type DirectionChosen struct {
	Direction exchange.Direction
}

// Role distinguishes which side of the exchange a currency selection is for.
type Role int

const (
	// RoleFrom is the currency the user gives away.
	RoleFrom Role = iota
	// RoleTo is the currency the user receives.
	RoleTo
	// RolePayout is the operator's requisites currency.
	RolePayout
)

// CurrencyChosen selects a currency from a rendered catalog menu.
type CurrencyChosen struct {
	Role Role
	Code string
}

// NetworkChosen selects a network from a rendered network menu.
type NetworkChosen struct {
	Name string
}

// Text is a free-form message. Whether it is an amount, requisites or noise
// depends on the session state.
type Text struct {
	Body string
}

// PaidAck is the user's "I have paid" tap. Reachable any time after
// instructions were delivered; never mutates session state.
type PaidAck struct{}

// CopyRequest is the copy-requisites tap, answered ephemerally.
type CopyRequest struct {
	CallbackID string
}

// Respond starts the operator sub-flow for a pending request's user.
type Respond struct {
	UserID int64
}

// TypeChosen selects crypto or fiat requisites in the operator sub-flow.
type TypeChosen struct {
	Type session.CurrencyType
}

func (Start) event()           {}
func (DirectionChosen) event() {}
func (CurrencyChosen) event()  {}
func (NetworkChosen) event()   {}
func (Text) event()            {}
func (PaidAck) event()         {}
func (CopyRequest) event()     {}
func (Respond) event()         {}
func (TypeChosen) event()      {}
