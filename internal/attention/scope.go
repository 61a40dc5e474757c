package attention

import (
	"github.com/Iron-Ham/spotlight/internal/errors"
	"github.com/Iron-Ham/spotlight/internal/event"
	"github.com/Iron-Ham/spotlight/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type scopeState int

const (
	stateNew scopeState = iota
	stateOpen
	stateClosed
)

// Scope owns one registry and its outside-click detector for the lifetime
// of a UI tree. Create it with NewScope, Open it (or Wrap a root model), and
// Close it when the program exits.
type Scope struct {
	id       string
	reg      *registry
	detector *detector
	buttons  []tea.MouseButton
	state    scopeState
	logger   *logging.Logger
	bus      *event.Bus
}

// Option configures a Scope.
type Option func(*Scope)

// WithLogger sets the logger used for claim activity.
func WithLogger(l *logging.Logger) Option {
	return func(s *Scope) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBus publishes claim activity on b.
func WithBus(b *event.Bus) Option {
	return func(s *Scope) { s.bus = b }
}

// WithButtons sets which mouse buttons dismiss a claim on press.
// An empty list keeps DefaultButtons.
func WithButtons(buttons ...tea.MouseButton) Option {
	return func(s *Scope) {
		if len(buttons) > 0 {
			s.buttons = append([]tea.MouseButton(nil), buttons...)
		}
	}
}

// NewScope creates an unopened scope.
func NewScope(opts ...Option) *Scope {
	s := &Scope{
		id:      uuid.NewString(),
		buttons: DefaultButtons,
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithScope(s.id)
	s.reg = newRegistry(observer{
		claimed:  s.onClaimed,
		evicted:  s.onEvicted,
		released: s.onReleased,
	})
	return s
}

// ID returns the scope's unique identifier.
func (s *Scope) ID() string {
	return s.id
}

// Open installs the outside-click detector. Opening an open scope is a
// no-op; opening a closed one fails with ErrScopeClosed.
func (s *Scope) Open() error {
	switch s.state {
	case stateOpen:
		return nil
	case stateClosed:
		return errors.ErrScopeClosed
	}
	s.detector = newDetector(s.reg, s.buttons)
	s.state = stateOpen
	s.logger.Debug("scope opened", "buttons", len(s.buttons))
	s.publish(event.NewScopeOpenedEvent(s.id))
	return nil
}

// Close removes the detector and discards every claim without resetting it.
// It is safe to call more than once.
func (s *Scope) Close() {
	if s.state == stateClosed {
		return
	}
	s.detector = nil
	s.reg.discard()
	s.state = stateClosed
	s.logger.Debug("scope closed")
	s.publish(event.NewScopeClosedEvent(s.id))
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	return s.state == stateClosed
}

// Claim resets every current claim, registers a new one, and returns its id.
// reset must not be nil and boundary must be a Boundary or NoBoundary.
func (s *Scope) Claim(reset func(), boundary Boundary) (ID, error) {
	const op = "attention.Scope.Claim"
	switch {
	case s.state == stateClosed:
		return "", errors.NewMisuseError(op, errors.ErrScopeClosed)
	case reset == nil:
		return "", errors.NewMisuseError(op, errors.ErrNoReset)
	case boundary == nil:
		return "", errors.NewMisuseError(op, errors.ErrNoBoundary)
	}
	return s.reg.claim(reset, boundary), nil
}

// Release drops a claim without resetting it. Releasing an id that was
// already evicted or released, or releasing after Close, does nothing.
func (s *Scope) Release(id ID) {
	if s.state == stateClosed || id == "" {
		return
	}
	s.reg.release(id)
}

// HandleMouse feeds a mouse message to the detector and returns how many
// claims it evicted. It does nothing unless the scope is open.
func (s *Scope) HandleMouse(msg tea.MouseMsg) int {
	if s.detector == nil {
		return 0
	}
	return s.detector.handle(msg)
}

// Len returns the number of resident claims.
func (s *Scope) Len() int {
	return s.reg.len()
}

// Active returns the resident claim, if any.
func (s *Scope) Active() (ID, bool) {
	return s.reg.active()
}

func (s *Scope) onClaimed(id ID, evicted int) {
	s.logger.WithClaim(string(id)).Debug("claim registered", "evicted", evicted)
	s.publish(event.NewClaimRegisteredEvent(s.id, string(id), evicted))
}

func (s *Scope) onEvicted(id ID, reason event.EvictReason) {
	s.logger.WithClaim(string(id)).Debug("claim evicted", "reason", string(reason))
	s.publish(event.NewClaimEvictedEvent(s.id, string(id), reason))
}

func (s *Scope) onReleased(id ID, present bool) {
	s.logger.WithClaim(string(id)).Debug("claim released", "present", present)
	s.publish(event.NewClaimReleasedEvent(s.id, string(id), present))
}

func (s *Scope) publish(e event.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
