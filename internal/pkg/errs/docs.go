// Package errs defines the closed error taxonomy of the warehouse application.
//
// Every failure the engine can detect maps to exactly one of four kinds:
//   - ObjectNotFoundError: a referenced box or product does not exist
//   - BusinessRuleViolationError: an invariant breach outside the state machine
//   - InvalidStatusTransitionError: an unreachable box status change
//   - StoreFailureError: an opaque transactional store error
//
// Two additional validation errors (ValueIsRequiredError, ValueIsInvalidError)
// cover constructor-level input checks before any business rule is evaluated.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrBusinessRuleViolation)
//   - a struct carrying structured detail (offending id, status, allowed targets)
//   - an Error() method producing a single-line message
//   - an Unwrap() method returning the sentinel, so the boundary layer can
//     match the whole taxonomy exhaustively with errors.Is
package errs
