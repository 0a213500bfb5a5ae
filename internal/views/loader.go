// Package views holds the state of the dashboard and the list views and
// implements their data loading and mutations on top of a gateway.
package views

import (
	"context"
	"errors"
	"sync"

	"github.com/pocketbook-app/backend/internal/session"
	"github.com/pocketbook-app/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// FailurePolicy decides what a view does when loading fails.
type FailurePolicy int

const (
	// Silent logs the failure and keeps the previous state.
	Silent FailurePolicy = iota

	// Surface logs the failure, keeps the previous state and returns
	// the error to the caller.
	Surface
)

// ErrSuperseded is returned for loads that were replaced by a newer load
// or a mutation before they could be committed.
var ErrSuperseded = errors.New("the load was superseded by a newer one")

type options struct {
	policy FailurePolicy
	today  func() types.Date
}

// Option configures a view.
type Option func(*options)

// WithPolicy sets the failure policy for loads.
func WithPolicy(p FailurePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithClock sets the function returning the current date.
func WithClock(today func() types.Date) Option {
	return func(o *options) {
		o.today = today
	}
}

func newOptions(opts []Option) options {
	o := options{
		policy: Silent,
		today:  types.Today,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// loader guards the state of a view. Every load gets a generation, only
// the latest generation may commit its results.
type loader struct {
	name      string
	principal session.Principal
	options

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	lastErr    error
}

func (l *loader) init(name string, p session.Principal, opts []Option) {
	l.name = name
	l.principal = p
	l.options = newOptions(opts)
}

// begin starts a new generation and cancels the load of the previous one.
func (l *loader) begin(ctx context.Context) (context.Context, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}

	ctx, l.cancel = context.WithCancel(ctx)
	l.generation++

	return ctx, l.generation
}

// invalidate supersedes any running load. It is called by mutations so that
// a load that started before them does not overwrite their result.
// l.mu must be held.
func (l *loader) invalidate() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.generation++
}

// commit calls apply with l.mu held if the generation is still current and
// the session has a principal.
func (l *loader) commit(generation uint64, apply func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if generation != l.generation {
		return ErrSuperseded
	}

	if _, ok := l.principal.UserID(); !ok {
		return l.failLocked(generation, session.ErrNoPrincipal)
	}

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	apply()
	l.lastErr = nil

	return nil
}

// fail records the failure of a load and returns it depending on the
// failure policy.
func (l *loader) fail(generation uint64, err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.failLocked(generation, err)
}

func (l *loader) failLocked(generation uint64, err error) error {
	if generation != l.generation {
		return ErrSuperseded
	}

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	log.Error().Err(err).Str("view", l.name).Msg("loading failed")
	l.lastErr = err

	if l.policy == Surface {
		return err
	}
	return nil
}

// LastError returns the error of the last load, or nil if it succeeded.
func (l *loader) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.lastErr
}

// mutate runs fn, which changes the state of the view, with l.mu held and
// supersedes running loads.
func (l *loader) mutate(fn func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.principal.UserID(); !ok {
		return session.ErrNoPrincipal
	}

	l.invalidate()
	fn()

	return nil
}
