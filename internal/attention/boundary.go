package attention

// Point is a terminal cell coordinate, zero-based from the top-left corner.
type Point struct {
	X, Y int
}

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. Edges are half-open:
// a Rect at X=0 with Width=10 covers columns 0 through 9.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Boundary resolves a claimant's on-screen region at click time.
// ok is false when the region is not currently rendered.
type Boundary interface {
	Region() (r Rect, ok bool)
}

// BoundaryFunc adapts a function to the Boundary interface.
type BoundaryFunc func() (Rect, bool)

// Region calls f.
func (f BoundaryFunc) Region() (Rect, bool) { return f() }

type noBoundary struct{}

func (noBoundary) Region() (Rect, bool) { return Rect{}, false }

// NoBoundary opts a claim out of outside-click eviction. The claimant
// promises to handle its own dismissal. It is distinct from a nil Boundary,
// which NewClaimant rejects.
var NoBoundary Boundary = noBoundary{}

// Static returns a Boundary that always resolves to r.
func Static(r Rect) Boundary {
	return BoundaryFunc(func() (Rect, bool) { return r, !r.Empty() })
}

// Ref is a widget-owned boundary handle. The widget calls Set each time it
// lays out its active region and Clear when the region is hidden. The
// detector only reads it.
type Ref struct {
	rect Rect
	set  bool
}

// NewRef returns an unset Ref. Until Set is called it resolves to nothing,
// so a claim made before the first layout is not evicted by clicks.
func NewRef() *Ref {
	return &Ref{}
}

// Set records the region most recently rendered.
func (r *Ref) Set(rect Rect) {
	r.rect = rect
	r.set = true
}

// Clear marks the region as no longer rendered.
func (r *Ref) Clear() {
	r.rect = Rect{}
	r.set = false
}

// Region implements Boundary.
func (r *Ref) Region() (Rect, bool) {
	if r == nil || !r.set || r.rect.Empty() {
		return Rect{}, false
	}
	return r.rect, true
}
