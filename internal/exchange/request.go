// ABOUTME: Finalized exchange request handed from the user flow to the operator
// ABOUTME: Carries a generated request id for operator notifications and logs

package exchange

import "github.com/google/uuid"

// Request is a completed exchange request, ready to be relayed to the
// operator. It is a value object; the session it was built from has already
// been reset by the time a Request exists.
type Request struct {
	ID         string
	UserID     int64
	Username   string
	Direction  Direction
	From       string
	To         string
	Network    string
	Amount     float64
	Converted  float64
	Requisites string
}

// NewRequestID generates the id attached to a finalized request.
func NewRequestID() string {
	return uuid.New().String()
}
