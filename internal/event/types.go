package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "claim.registered").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Event type identifiers.
const (
	TypeClaimRegistered = "claim.registered"
	TypeClaimEvicted    = "claim.evicted"
	TypeClaimReleased   = "claim.released"
	TypeScopeOpened     = "scope.opened"
	TypeScopeClosed     = "scope.closed"
)

// EvictReason says why a claim was forcibly reset.
type EvictReason string

const (
	// ReasonDisplaced means a newer claim took attention.
	ReasonDisplaced EvictReason = "displaced"
	// ReasonOutsideClick means the user pressed outside the claim's region.
	ReasonOutsideClick EvictReason = "outside_click"
)

// -----------------------------------------------------------------------------
// Claim Events
// -----------------------------------------------------------------------------

// ClaimRegisteredEvent is emitted after a claim becomes the active one.
type ClaimRegisteredEvent struct {
	baseEvent
	ScopeID string
	ClaimID string
	Evicted int // Number of claims reset to make room
}

// NewClaimRegisteredEvent creates a ClaimRegisteredEvent.
func NewClaimRegisteredEvent(scopeID, claimID string, evicted int) ClaimRegisteredEvent {
	return ClaimRegisteredEvent{
		baseEvent: newBaseEvent(TypeClaimRegistered),
		ScopeID:   scopeID,
		ClaimID:   claimID,
		Evicted:   evicted,
	}
}

// ClaimEvictedEvent is emitted after a claim's reset callback has run.
type ClaimEvictedEvent struct {
	baseEvent
	ScopeID string
	ClaimID string
	Reason  EvictReason
}

// NewClaimEvictedEvent creates a ClaimEvictedEvent.
func NewClaimEvictedEvent(scopeID, claimID string, reason EvictReason) ClaimEvictedEvent {
	return ClaimEvictedEvent{
		baseEvent: newBaseEvent(TypeClaimEvicted),
		ScopeID:   scopeID,
		ClaimID:   claimID,
		Reason:    reason,
	}
}

// ClaimReleasedEvent is emitted when a claimant gives up attention itself.
// Present is false when the claim had already been evicted.
type ClaimReleasedEvent struct {
	baseEvent
	ScopeID string
	ClaimID string
	Present bool
}

// NewClaimReleasedEvent creates a ClaimReleasedEvent.
func NewClaimReleasedEvent(scopeID, claimID string, present bool) ClaimReleasedEvent {
	return ClaimReleasedEvent{
		baseEvent: newBaseEvent(TypeClaimReleased),
		ScopeID:   scopeID,
		ClaimID:   claimID,
		Present:   present,
	}
}

// -----------------------------------------------------------------------------
// Scope Events
// -----------------------------------------------------------------------------

// ScopeEvent is emitted when an attention scope opens or closes.
type ScopeEvent struct {
	baseEvent
	ScopeID string
}

// NewScopeOpenedEvent creates a ScopeEvent of type scope.opened.
func NewScopeOpenedEvent(scopeID string) ScopeEvent {
	return ScopeEvent{baseEvent: newBaseEvent(TypeScopeOpened), ScopeID: scopeID}
}

// NewScopeClosedEvent creates a ScopeEvent of type scope.closed.
func NewScopeClosedEvent(scopeID string) ScopeEvent {
	return ScopeEvent{baseEvent: newBaseEvent(TypeScopeClosed), ScopeID: scopeID}
}
