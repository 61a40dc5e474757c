package attention

import (
	"context"
	"testing"

	"github.com/Iron-Ham/spotlight/internal/errors"
)

func scopedContext(t *testing.T) (context.Context, *Scope) {
	t.Helper()
	s := openScope(t)
	return WithScope(context.Background(), s), s
}

func TestNewClaimant_RequiresScope(t *testing.T) {
	_, err := NewClaimant(context.Background(), func() {}, NoBoundary)
	if !errors.Is(err, errors.ErrNoScope) {
		t.Fatalf("err = %v, want ErrNoScope", err)
	}
	var misuse *errors.MisuseError
	if !errors.As(err, &misuse) || misuse.Op != "attention.NewClaimant" {
		t.Errorf("err = %#v, want MisuseError for attention.NewClaimant", err)
	}
}

func TestNewClaimant_Misuse(t *testing.T) {
	ctx, _ := scopedContext(t)

	closed := NewScope()
	closed.Close()

	tests := []struct {
		name     string
		ctx      context.Context
		reset    func()
		boundary Boundary
		want     error
	}{
		{"nil context", nil, func() {}, NoBoundary, errors.ErrNoScope},
		{"nil reset", ctx, nil, NoBoundary, errors.ErrNoReset},
		{"nil boundary", ctx, func() {}, nil, errors.ErrNoBoundary},
		{"closed scope", WithScope(context.Background(), closed), func() {}, NoBoundary, errors.ErrScopeClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClaimant(tt.ctx, tt.reset, tt.boundary)
			if c != nil {
				t.Error("expected nil claimant on error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustClaimant_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustClaimant should panic without a scope")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, errors.ErrNoScope) {
			t.Errorf("panic value = %v, want ErrNoScope", r)
		}
	}()
	MustClaimant(context.Background(), func() {}, NoBoundary)
}

func TestClaimant_SyncTransitions(t *testing.T) {
	ctx, s := scopedContext(t)
	r := &resetCounter{}
	c := MustClaimant(ctx, r.reset, NoBoundary)

	if err := c.Sync(false); err != nil || s.Len() != 0 {
		t.Fatalf("Sync(false) from idle: err = %v, len = %d", err, s.Len())
	}

	if err := c.Sync(true); err != nil {
		t.Fatalf("Sync(true): %v", err)
	}
	first := c.ID()
	if first == "" || !c.Claiming() {
		t.Fatal("expected an id after claiming")
	}
	if got, _ := s.Active(); got != first {
		t.Errorf("active = %q, want %q", got, first)
	}

	c.Sync(true)
	if c.ID() != first {
		t.Error("repeated Sync(true) should not re-claim")
	}

	c.Sync(false)
	if c.ID() != "" || c.Claiming() || s.Len() != 0 {
		t.Errorf("after Sync(false): id = %q, claiming = %v, len = %d", c.ID(), c.Claiming(), s.Len())
	}
	if r.calls != 0 {
		t.Errorf("release path reset %d times", r.calls)
	}

	c.Sync(true)
	if c.ID() == first || c.ID() == "" {
		t.Errorf("re-claim id = %q, want fresh id distinct from %q", c.ID(), first)
	}
}

func TestClaimant_ClaimEvictsOthers(t *testing.T) {
	ctx, s := scopedContext(t)

	var aOpen, bOpen bool
	a := MustClaimant(ctx, func() { aOpen = false }, NoBoundary)
	b := MustClaimant(ctx, func() { bOpen = false }, NoBoundary)

	aOpen = true
	a.Sync(aOpen)
	bOpen = true
	b.Sync(bOpen)

	if aOpen {
		t.Error("A should have been reset when B claimed")
	}
	if !bOpen {
		t.Error("B should still be open")
	}

	// A observes its reset and syncs the new condition; the stale id release
	// must not disturb B.
	a.Sync(aOpen)
	if got, _ := s.Active(); got != b.ID() {
		t.Errorf("active = %q, want B's %q", got, b.ID())
	}
}

func TestClaimant_StaleIDNeverReleasesNewClaim(t *testing.T) {
	ctx, s := scopedContext(t)
	a := MustClaimant(ctx, func() {}, NoBoundary)
	b := MustClaimant(ctx, func() {}, NoBoundary)

	a.Sync(true)
	staleA := a.ID()
	b.Sync(true)

	// A never noticed the eviction and reclaims after toggling.
	a.Sync(false)
	a.Sync(true)
	if a.ID() == staleA {
		t.Fatal("re-claim reused the stale id")
	}
	b.Sync(false)

	if got, _ := s.Active(); got != a.ID() {
		t.Errorf("active = %q, want A's fresh %q", got, a.ID())
	}
}

func TestClaimant_Close(t *testing.T) {
	ctx, s := scopedContext(t)
	r := &resetCounter{}
	c := MustClaimant(ctx, r.reset, NoBoundary)

	c.Sync(true)
	c.Close()
	c.Close()

	if s.Len() != 0 {
		t.Errorf("len = %d after Close, want 0", s.Len())
	}
	if r.calls != 0 {
		t.Errorf("Close reset %d times", r.calls)
	}
	if err := c.Sync(true); err != nil || s.Len() != 0 {
		t.Errorf("Sync after Close: err = %v, len = %d", err, s.Len())
	}
}

func TestClaimant_SyncAfterScopeClosed(t *testing.T) {
	s := NewScope()
	ctx := WithScope(context.Background(), s)
	c := MustClaimant(ctx, func() {}, NoBoundary)

	s.Close()

	if err := c.Sync(true); !errors.Is(err, errors.ErrScopeClosed) {
		t.Errorf("Sync(true) after scope close = %v, want ErrScopeClosed", err)
	}
	if c.Claiming() {
		t.Error("claimant should not be claiming after a failed Sync")
	}
}

func TestFromContext(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("background context should carry no scope")
	}
	if _, ok := FromContext(WithScope(context.Background(), nil)); ok {
		t.Error("nil scope should not be found")
	}

	s := NewScope()
	got, ok := FromContext(WithScope(context.Background(), s))
	if !ok || got != s {
		t.Errorf("FromContext = %p, %v, want %p, true", got, ok, s)
	}
}
