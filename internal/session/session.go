// Package session tracks the authenticated principal of a client.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNoPrincipal is returned when an operation requires a principal but
// the session has none.
var ErrNoPrincipal = errors.New("you need to be signed in for this request")

// Kind is the type of an authentication event.
type Kind int

const (
	SignedIn Kind = iota
	SignedOut
)

func (k Kind) String() string {
	switch k {
	case SignedIn:
		return "signed in"
	case SignedOut:
		return "signed out"
	}
	return "unknown"
}

// Event is published whenever the authentication state of a principal changes.
type Event struct {
	Kind      Kind
	Principal uuid.UUID
}

// Source publishes authentication events.
type Source interface {
	// Subscribe registers fn for all future events. The returned
	// function removes the subscription.
	Subscribe(fn func(Event)) (unsubscribe func())
}

// Principal is the read side of a Session.
type Principal interface {
	UserID() (uuid.UUID, bool)
}

// Session holds the current principal, or none, and whether the
// principal is still being resolved.
//
// A Session is created with New, attached to an event source with Start
// and detached with Close.
type Session struct {
	mu          sync.RWMutex
	user        uuid.UUID
	loading     bool
	unsubscribe func()
}

// New returns a Session that is loading.
func New() *Session {
	return &Session{loading: true}
}

// Start subscribes the session to the authentication events of src.
func (s *Session) Start(src Source) {
	unsubscribe := src.Subscribe(s.handle)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.unsubscribe = unsubscribe
}

// Resolve sets the principal and ends loading. uuid.Nil means no principal.
func (s *Session) Resolve(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = id
	s.loading = false
}

func (s *Session) handle(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.Kind {
	case SignedIn:
		// Only Resolve sets the principal
		if s.user != uuid.Nil && s.user == e.Principal {
			s.loading = false
		}
	case SignedOut:
		if s.user == e.Principal {
			s.user = uuid.Nil
		}
	}
}

// UserID returns the current principal. ok is false if there is none.
func (s *Session) UserID() (id uuid.UUID, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user, s.user != uuid.Nil
}

// Loading reports whether the principal is still being resolved.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Close unsubscribes from the event source.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
