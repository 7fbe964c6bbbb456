// Package session provides the transient, in-memory conversation state for
// requesters and the operator. All state is lost on restart by design.
package session
