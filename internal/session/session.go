// ABOUTME: Mutable per-user and operator conversation records
// ABOUTME: The set of populated fields implies the current conversation state

package session

import "github.com/Donlord192/SmartExchangerBot/internal/exchange"

// User is the in-progress state of one requester's conversation. Fields are
// populated strictly in order: Direction, From, To, (Network), Amount with
// Converted, Requisites. Submitting requisites resets the record to empty;
// there is no terminal state.
type User struct {
	Direction  exchange.Direction
	From       string
	To         string
	Network    string
	Amount     float64
	Converted  float64
	Requisites string
}

// AwaitingAmount reports whether the next free-text message is an amount.
// Amount is never zero once set (non-positive input is rejected), so zero
// means unset.
func (u *User) AwaitingAmount() bool {
	return u.From != "" && u.To != "" && u.Amount == 0
}

// AwaitingRequisites reports whether the next free-text message is the
// payout requisites.
func (u *User) AwaitingRequisites() bool {
	return u.Amount != 0 && u.Requisites == ""
}

// OperatorStep tracks where the operator is in the respond sub-flow.
type OperatorStep int

const (
	StepSelectCurrencyType OperatorStep = iota
	StepSelectCrypto
	StepSelectFiat
	StepSelectNetwork
	StepEnterDetails
)

// CurrencyType is the kind of requisites the operator is about to send.
type CurrencyType int

const (
	CurrencyTypeUnset CurrencyType = iota
	CurrencyCrypto
	CurrencyFiat
)

// Operator is the singleton respond-flow state. UserID is the requester the
// instructions will be delivered to, captured when the operator picks a
// pending request.
type Operator struct {
	UserID       int64
	Step         OperatorStep
	CurrencyType CurrencyType
	Currency     string
	Network      string
}
