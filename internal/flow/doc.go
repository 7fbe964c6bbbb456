// Package flow implements the two conversation state machines of the
// exchanger.
//
// # Events
//
// The transport decodes every inbound update into a tagged Event (Start,
// DirectionChosen, CurrencyChosen, NetworkChosen, Text, PaidAck,
// CopyRequest, Respond, TypeChosen) and routes it to the matching flow.
// Events that do not apply in the current state are dropped without reply.
//
// # User flow
//
// A requester moves through: direction, source currency, destination
// currency, network (only when receiving a multi-network crypto), amount,
// payout requisites. The current state is implicit in which session fields
// are populated. Submitting requisites relays the finalized request to the
// operator and resets the session to empty; there is no terminal state.
//
// # Operator flow
//
// The operator picks a pending request, then chooses the requisites
// currency (and network for crypto) and enters free-text payment details,
// which are delivered to the captured requester. At most one operator flow
// is in progress system-wide; starting another discards the first.
//
// Outbound sends are fire-and-forget: a failed send is logged by the caller
// and the remainder of the transition's sends is skipped, without rollback.
package flow
