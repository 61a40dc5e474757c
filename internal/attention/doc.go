// Package attention enforces "at most one active widget" in a Bubble Tea
// program.
//
// A widget that shows a transient active state (a confirmation popover, a
// dropdown, an inline editor) claims attention when it becomes active. Claiming
// resets every other claimant through its reset callback. A left click outside
// the active claimant's on-screen region resets it as well.
//
// # Pieces
//
//   - [Scope] owns the claim registry and the single outside-click detector.
//     [Scope.Wrap] installs it in front of a root model as a [Provider].
//   - [WithScope] and [FromContext] carry the scope down a tree of widget
//     constructors.
//   - [Claimant] is what widgets use: [Claimant.Sync] on every change of the
//     claiming condition, [Claimant.Close] on teardown.
//   - [Boundary] resolves a claim's region at click time. [Ref] is the usual
//     widget-owned handle; [NoBoundary] opts out of outside-click dismissal.
//
// # Usage
//
//	scope := attention.NewScope(attention.WithLogger(logger))
//	defer scope.Close()
//
//	ctx := attention.WithScope(context.Background(), scope)
//	root, err := scope.Wrap(newModel(ctx))
//	...
//	_, err = tea.NewProgram(root, tea.WithMouseCellMotion()).Run()
//
// Inside a widget:
//
//	p.ref = attention.NewRef()
//	p.claim = attention.MustClaimant(ctx, p.hide, p.ref)
//	...
//	p.open = true
//	p.claim.Sync(p.open)
//
// # Threading
//
// Everything runs on the Bubble Tea event goroutine. Scope, Claimant and Ref
// are not safe for concurrent use.
package attention
