// ABOUTME: In-memory store of conversation sessions keyed by Telegram user id
// ABOUTME: Holds the single operator slot alongside the per-user records

package session

import "sync"

// Store owns every session record. Flows look records up fresh on each
// inbound event and never retain them across events. The transport delivers
// events sequentially, so the mutex only guards map bookkeeping, not field
// mutation inside a record.
type Store struct {
	mu       sync.Mutex
	users    map[int64]*User
	operator *Operator
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[int64]*User)}
}

// User returns the session for id, creating an empty one if absent.
func (s *Store) User(id int64) *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		u = &User{}
		s.users[id] = u
	}
	return u
}

// Lookup returns the session for id without creating one.
func (s *Store) Lookup(id int64) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

// ResetUser replaces the session for id with a fresh empty record.
func (s *Store) ResetUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = &User{}
}

// StartOperator binds the operator slot to userID and returns the new
// record. Any in-flight operator flow is silently discarded; at most one
// respond flow exists system-wide.
func (s *Store) StartOperator(userID int64) *Operator {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operator = &Operator{UserID: userID, Step: StepSelectCurrencyType}
	return s.operator
}

// Operator returns the in-flight operator record, if any.
func (s *Store) Operator() (*Operator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.operator, s.operator != nil
}

// EndOperator destroys the operator record after instructions are sent.
func (s *Store) EndOperator() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.operator = nil
}
