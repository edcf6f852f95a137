// Package lifecycle orchestrates snippet expansion end to end: context
// evaluation, the pre-expand hook, launch, the post-expand hook, and later
// post-jump hooks, against a last-in-first-out stack of active (possibly
// nested) snippet instances.
//
// Each active instance moves through Launched → (Jumping ⇄ Jumped) →
// Finalized. The earlier Unmatched → ContextEvaluated transition happens
// before any instance exists: it is the outcome of Definition.Matches, and a
// falsy context predicate aborts the expansion there.
//
// Everything runs synchronously on the editor's event thread. Re-entrancy
// (a hook triggering a nested launch) is handled by the stack discipline,
// not by locking.
package lifecycle
