package attention

import (
	"context"

	"github.com/Iron-Ham/spotlight/internal/errors"
)

// Claimant adapts a widget's "I want attention" condition into claim and
// release calls on the scope found in its construction context.
//
// A widget creates one Claimant, calls Sync with its current condition after
// every state change, and calls Close when it is torn down:
//
//	c, err := attention.NewClaimant(ctx, p.hide, p.ref)
//	...
//	p.open = true
//	c.Sync(p.open)
type Claimant struct {
	scope    *Scope
	reset    func()
	boundary Boundary
	id       ID
	claiming bool
	closed   bool
}

// NewClaimant binds reset and boundary to the scope carried by ctx.
//
// It fails with a *errors.MisuseError when ctx carries no scope
// (ErrNoScope), the scope is closed (ErrScopeClosed), reset is nil
// (ErrNoReset), or boundary is nil (ErrNoBoundary). Pass NoBoundary to opt
// out of outside-click handling.
func NewClaimant(ctx context.Context, reset func(), boundary Boundary) (*Claimant, error) {
	const op = "attention.NewClaimant"

	scope, ok := FromContext(ctx)
	switch {
	case !ok:
		return nil, errors.NewMisuseError(op, errors.ErrNoScope)
	case scope.Closed():
		return nil, errors.NewMisuseError(op, errors.ErrScopeClosed)
	case reset == nil:
		return nil, errors.NewMisuseError(op, errors.ErrNoReset)
	case boundary == nil:
		return nil, errors.NewMisuseError(op, errors.ErrNoBoundary)
	}

	return &Claimant{scope: scope, reset: reset, boundary: boundary}, nil
}

// MustClaimant is like NewClaimant but panics on error.
func MustClaimant(ctx context.Context, reset func(), boundary Boundary) *Claimant {
	c, err := NewClaimant(ctx, reset, boundary)
	if err != nil {
		panic(err)
	}
	return c
}

// Sync applies the current claiming condition. A false-to-true transition
// claims with a fresh id, evicting whoever held attention. A true-to-false
// transition releases the id from that claim. Repeating the current value
// does nothing.
func (c *Claimant) Sync(claiming bool) error {
	if c.closed || claiming == c.claiming {
		return nil
	}
	if !claiming {
		c.releaseHeld()
		return nil
	}

	id, err := c.scope.Claim(c.reset, c.boundary)
	if err != nil {
		return err
	}
	c.id = id
	c.claiming = true
	return nil
}

// Claiming reports whether the last Sync left the claimant claiming.
// The claim itself may have been evicted since; eviction is reported only
// through the reset callback.
func (c *Claimant) Claiming() bool {
	return c.claiming
}

// ID returns the id of the current claiming period, or "" when not claiming.
func (c *Claimant) ID() ID {
	return c.id
}

// Close releases any held claim and disables the claimant.
// It is safe to call more than once.
func (c *Claimant) Close() {
	if c.closed {
		return
	}
	c.releaseHeld()
	c.closed = true
}

func (c *Claimant) releaseHeld() {
	if c.claiming {
		c.scope.Release(c.id)
	}
	c.id = ""
	c.claiming = false
}
