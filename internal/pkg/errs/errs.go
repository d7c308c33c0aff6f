package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the closed error taxonomy. Every structured error in
// this package unwraps to exactly one of these, so callers classify errors
// with errors.Is and never by string matching.
var (
	ErrObjectNotFound          = errors.New("object not found")
	ErrBusinessRuleViolation   = errors.New("business rule violation")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrStoreFailure            = errors.New("store failure")
	ErrValueIsRequired         = errors.New("value is required")
	ErrValueIsInvalid          = errors.New("value is invalid")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced box or product does not exist.
// Surfaced to the boundary layer as a 404-equivalent.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// BusinessRuleViolationError indicates an invariant breach that is not tied to
// the status state machine: duplicate label or barcode, product already owned
// or not owned by the expected box, mutating or deleting a box that has left
// the CREATED status. Surfaced as a 409-equivalent.
type BusinessRuleViolationError struct {
	Message string
	Cause   error
}

func NewBusinessRuleViolationError(message string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Message: message}
}

func NewBusinessRuleViolationErrorWithCause(message string, cause error) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Message: message, Cause: cause}
}

func (e *BusinessRuleViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrBusinessRuleViolation, e.Message, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrBusinessRuleViolation, e.Message))
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}

// InvalidStatusTransitionError indicates a requested box status change that is
// not reachable from the current status. It carries the allowed targets so the
// boundary layer can render a stable message without re-deriving the state
// machine. Surfaced as a 422-equivalent.
type InvalidStatusTransitionError struct {
	From    string
	To      string
	Allowed []string
}

func NewInvalidStatusTransitionError(from, to string, allowed []string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to, Allowed: allowed}
}

func (e *InvalidStatusTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot transition from %s to %s, allowed transitions: [%s]",
		ErrInvalidStatusTransition, e.From, e.To, strings.Join(e.Allowed, ", ")))
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// StoreFailureError wraps an underlying transactional store error (connectivity,
// timeout, unexpected constraint). The engine does not interpret it further.
type StoreFailureError struct {
	Operation string
	Cause     error
}

func NewStoreFailureError(operation string, cause error) *StoreFailureError {
	return &StoreFailureError{Operation: operation, Cause: cause}
}

func (e *StoreFailureError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStoreFailure, e.Operation, e.Cause))
}

func (e *StoreFailureError) Unwrap() error {
	return ErrStoreFailure
}

// ValueIsRequiredError indicates a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value that fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
