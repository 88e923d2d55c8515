// internal/confirm/confirm.go
//
// Two-step confirmation workflow for destructive admin actions.
//
// Context
// -------
// Deleting a program, deleting a subscriber, and saving a program edit all
// pass through an explicit confirm step: the first request parks a
// PendingAction and the console renders a confirmation prompt; the second
// request either commits or cancels it.  The broker is a three-state
// machine — Idle, AwaitingConfirmation, Committing — and holds at most one
// pending action.  A new request while one is pending is rejected rather
// than queued or replaced, so the admin always resolves the prompt on
// screen before starting another.
//
// Workflow
// --------
//	Request → AwaitingConfirmation, returns an opaque token.
//	Confirm → token must match; Committing while the commit runs, then Idle.
//	Cancel  → back to Idle, commit never runs.
//
// Notes
// -----
// • The token guards against stale submissions from a re-rendered page; a
//   mismatch leaves the pending action untouched.
// • Oxford commas, two spaces after periods.

package confirm

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Action kinds.
const (
	KindDeleteProgram    = "delete-program"
	KindDeleteSubscriber = "delete-subscriber"
	KindUpdateProgram    = "update-program"
)

// Intents color the confirmation prompt.
const (
	IntentDanger  = "danger"
	IntentPrimary = "primary"
)

var (
	// ErrActionPending is returned by Request while another action awaits
	// confirmation or is committing.
	ErrActionPending = errors.New("confirm: another action is pending")

	// ErrNoPendingAction is returned by Confirm and Cancel in the Idle state.
	ErrNoPendingAction = errors.New("confirm: no pending action")

	// ErrTokenMismatch is returned for a stale or forged token.
	ErrTokenMismatch = errors.New("confirm: token mismatch")
)

type state int

const (
	stateIdle state = iota
	stateAwaiting
	stateCommitting
)

// PendingAction is the parked request awaiting the admin's decision.
type PendingAction struct {
	Token      string // opaque, single-use
	Kind       string // KindDeleteProgram, KindDeleteSubscriber, or KindUpdateProgram
	Intent     string // IntentDanger or IntentPrimary
	MessageKey string // translation key for the prompt body
	Label      string // display name interpolated into the prompt
	ID         int64  // target record

	// Payload carries the edit snapshot for KindUpdateProgram so the commit
	// applies what the admin saw, not what the form holds now.
	Payload any
}

// Broker is the single-slot confirmation machine.  Safe for concurrent use.
type Broker struct {
	mu      sync.Mutex
	state   state
	pending PendingAction
}

// NewBroker returns an Idle broker.
func NewBroker() *Broker { return &Broker{} }

// Request parks a and returns it with a freshly minted token.  Fails with
// ErrActionPending unless the broker is Idle.
func (b *Broker) Request(a PendingAction) (PendingAction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != stateIdle {
		return PendingAction{}, ErrActionPending
	}
	a.Token = uuid.NewString()
	b.pending = a
	b.state = stateAwaiting
	return a, nil
}

// Pending returns the parked action, if any.
func (b *Broker) Pending() (PendingAction, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending, b.state != stateIdle
}

// Confirm runs commit for the action matching token.  Whatever commit
// returns, the broker ends up Idle; a failed commit is the caller's to
// surface, not to retry through the same pending action.
func (b *Broker) Confirm(ctx context.Context, token string, commit func(ctx context.Context, a PendingAction) error) error {
	b.mu.Lock()
	switch {
	case b.state == stateIdle:
		b.mu.Unlock()
		return ErrNoPendingAction
	case b.state == stateCommitting:
		b.mu.Unlock()
		return ErrActionPending
	case b.pending.Token != token:
		b.mu.Unlock()
		return ErrTokenMismatch
	}
	b.state = stateCommitting
	a := b.pending
	b.mu.Unlock()

	err := commit(ctx, a)
	if err != nil {
		zap.S().Errorw("confirmed action failed", "kind", a.Kind, "id", a.ID, "error", err)
	}

	b.mu.Lock()
	b.state = stateIdle
	b.pending = PendingAction{}
	b.mu.Unlock()
	return err
}

// Cancel discards the parked action matching token.
func (b *Broker) Cancel(token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.state == stateIdle:
		return ErrNoPendingAction
	case b.state == stateCommitting:
		return ErrActionPending
	case b.pending.Token != token:
		return ErrTokenMismatch
	}
	b.state = stateIdle
	b.pending = PendingAction{}
	return nil
}
