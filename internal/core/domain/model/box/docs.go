// Package box contains the Box aggregate root and its lifecycle Status state
// machine. The aggregate guards the two central invariants of the warehouse:
// the forward-only status walk Created -> Sealed -> Shipped, and the rule that
// product membership only changes while a box is still in Created status.
package box
