// Package event provides a synchronous pub-sub bus that lets observers follow
// attention-claim activity without touching the registry.
//
// The attention core publishes to an optional [Bus]; the demo TUI subscribes
// to drive its status line. Observers only watch. Nothing published here can
// change which claim is active.
//
// # Event Types
//
//   - claim.registered: [ClaimRegisteredEvent]
//   - claim.evicted: [ClaimEvictedEvent], with a [EvictReason] of displaced or outside_click
//   - claim.released: [ClaimReleasedEvent]
//   - scope.opened, scope.closed: [ScopeEvent]
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//	bus.Subscribe(event.TypeClaimEvicted, func(e event.Event) {
//	    ev := e.(event.ClaimEvictedEvent)
//	    log.Printf("claim %s reset (%s)", ev.ClaimID, ev.Reason)
//	})
//
// Handlers run synchronously on the publisher's goroutine. A panicking handler
// is recovered and logged, and the remaining handlers still run.
package event
