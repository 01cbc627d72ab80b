// Package confirm lets a command pause for a yes/no follow-up from the same
// player in the same room without holding any store lock while it waits.
package confirm

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-table/internal/pkg/idgen"
)

// DefaultTimeout is how long Await waits for a follow-up
const DefaultTimeout = 30 * time.Second

// Result is the outcome of a confirmation wait
type Result int

const (
	// Confirmed means the player answered yes
	Confirmed Result = iota + 1
	// Declined means the player answered anything else, or a newer
	// confirmation for the same key replaced this one
	Declined
	// TimedOut means no answer arrived in time or the wait was canceled
	TimedOut
)

func (r Result) String() string {
	switch r {
	case Confirmed:
		return "confirmed"
	case Declined:
		return "declined"
	case TimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Err reports a result other than Confirmed as an error: DeadlineExceeded
// for TimedOut, Canceled otherwise
func (r Result) Err() error {
	switch r {
	case Confirmed:
		return nil
	case TimedOut:
		return errors.DeadlineExceeded("confirmation timed out")
	default:
		return errors.Canceled("confirmation declined")
	}
}

var affirmative = map[string]bool{
	"sim": true,
	"s":   true,
	"yes": true,
	"y":   true,
}

// Key scopes a confirmation to one player in one room
func Key(playerID, roomID string) string {
	return roomID + ":" + playerID
}

// Config holds the dependencies for a Waiter
type Config struct {
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type answer struct {
	text       string
	superseded bool
}

type pending struct {
	id     string
	answer chan answer
}

// Waiter tracks pending confirmations
type Waiter struct {
	clock clock.Clock
	idGen idgen.Generator

	mu      sync.Mutex
	pending map[string]*pending
}

// NewWaiter creates a Waiter
func NewWaiter(cfg *Config) (*Waiter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Waiter{
		clock:   cfg.Clock,
		idGen:   cfg.IDGenerator,
		pending: make(map[string]*pending),
	}, nil
}

// Ticket is a confirmation registered with Begin and not yet resolved
type Ticket struct {
	w   *Waiter
	key string
	p   *pending
}

// Begin registers a pending confirmation for key and returns without
// blocking, so a reply that arrives before Wait is called is not lost. A
// confirmation already pending on key resolves Declined.
func (w *Waiter) Begin(key string) *Ticket {
	p := &pending{
		id:     w.idGen.Generate(),
		answer: make(chan answer, 1),
	}

	w.mu.Lock()
	if prev, ok := w.pending[key]; ok {
		prev.answer <- answer{superseded: true}
	}
	w.pending[key] = p
	w.mu.Unlock()

	return &Ticket{w: w, key: key, p: p}
}

// Await is Begin followed by Wait
func (w *Waiter) Await(ctx context.Context, key string, timeout time.Duration) Result {
	return w.Begin(key).Wait(ctx, timeout)
}

// Wait blocks until Deliver is called for the ticket's key, timeout
// elapses or ctx is done. A non-positive timeout uses DefaultTimeout.
func (t *Ticket) Wait(ctx context.Context, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	slog.Debug("Awaiting confirmation",
		"key", t.key,
		"confirmation_id", t.p.id,
		"timeout", timeout,
	)

	select {
	case a := <-t.p.answer:
		return resolve(a)
	case <-t.w.clock.After(timeout):
	case <-ctx.Done():
	}

	t.w.mu.Lock()
	defer t.w.mu.Unlock()

	// An answer may have landed while the timer fired
	select {
	case a := <-t.p.answer:
		return resolve(a)
	default:
	}

	if cur, ok := t.w.pending[t.key]; ok && cur.id == t.p.id {
		delete(t.w.pending, t.key)
	}

	slog.Info("Confirmation timed out",
		"key", t.key,
		"confirmation_id", t.p.id,
	)
	return TimedOut
}

// Deliver hands text to the confirmation pending for key. It reports false
// when nothing was waiting, in which case the caller should treat text as
// an ordinary message.
func (w *Waiter) Deliver(key, text string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.pending[key]
	if !ok {
		return false
	}
	delete(w.pending, key)
	p.answer <- answer{text: text}
	return true
}

// Pending reports whether a confirmation is waiting on key
func (w *Waiter) Pending(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.pending[key]
	return ok
}

func resolve(a answer) Result {
	if a.superseded {
		return Declined
	}
	if affirmative[strings.ToLower(strings.TrimSpace(a.text))] {
		return Confirmed
	}
	return Declined
}
