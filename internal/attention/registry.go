package attention

import (
	"github.com/Iron-Ham/spotlight/internal/event"
	"github.com/google/uuid"
)

// ID identifies one claim. It is opaque and never reused.
type ID string

// entry is a resident claim. Entries are only created by registry.claim.
type entry struct {
	id       ID
	reset    func()
	boundary Boundary
}

// observer receives registry activity. Any field may be nil.
type observer struct {
	claimed  func(id ID, evicted int)
	evicted  func(id ID, reason event.EvictReason)
	released func(id ID, present bool)
}

// registry holds the active claims of one scope. It is driven from the
// Bubble Tea event loop and is not safe for concurrent use.
type registry struct {
	entries map[ID]*entry
	obs     observer
	newID   func() ID
}

func newRegistry(obs observer) *registry {
	return &registry{
		entries: make(map[ID]*entry),
		obs:     obs,
		newID:   func() ID { return ID(uuid.NewString()) },
	}
}

// claim evicts every resident entry, then stores a new one and returns its id.
// A reset callback that claims again is evicted in turn, so exactly one entry
// is resident when claim returns.
func (r *registry) claim(reset func(), boundary Boundary) ID {
	evicted := 0
	for len(r.entries) > 0 {
		evicted += r.evictAll(event.ReasonDisplaced)
	}

	id := r.newID()
	r.entries[id] = &entry{id: id, reset: reset, boundary: boundary}

	if r.obs.claimed != nil {
		r.obs.claimed(id, evicted)
	}
	return id
}

// release drops id without calling its reset. Unknown ids are ignored.
func (r *registry) release(id ID) bool {
	_, present := r.entries[id]
	delete(r.entries, id)
	if r.obs.released != nil {
		r.obs.released(id, present)
	}
	return present
}

// evictOutside resets every entry whose resolved region does not contain p.
// Entries that opted out, or whose region is not rendered, are left alone.
func (r *registry) evictOutside(p Point) int {
	var stale []*entry
	for _, e := range r.entries {
		if e.boundary == nil || e.boundary == NoBoundary {
			continue
		}
		region, ok := e.boundary.Region()
		if !ok || region.Contains(p) {
			continue
		}
		stale = append(stale, e)
	}
	return r.evict(stale, event.ReasonOutsideClick)
}

func (r *registry) evictAll(reason event.EvictReason) int {
	all := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	return r.evict(all, reason)
}

// evict removes each entry before calling its reset, so a reset that
// releases its own id is a no-op and no reset ever runs twice.
func (r *registry) evict(entries []*entry, reason event.EvictReason) int {
	n := 0
	for _, e := range entries {
		if cur, ok := r.entries[e.id]; !ok || cur != e {
			continue
		}
		delete(r.entries, e.id)
		n++
		e.reset()
		if r.obs.evicted != nil {
			r.obs.evicted(e.id, reason)
		}
	}
	return n
}

// discard drops every entry without resetting.
func (r *registry) discard() {
	clear(r.entries)
}

func (r *registry) len() int {
	return len(r.entries)
}

func (r *registry) active() (ID, bool) {
	for id := range r.entries {
		return id, true
	}
	return "", false
}
