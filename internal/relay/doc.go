// Package relay formats and emits every outbound message of the exchanger:
// menus and prompts within each conversation, and the cross-party
// notifications (user summary to operator, payment instructions back to the
// user, paid confirmations).
//
// The relay is stateless. It writes through the Messenger interface so flow
// logic and tests never touch transport types.
package relay
