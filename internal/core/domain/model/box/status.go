package box

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a box.
// It implements a forward-only state machine:
//
//	Created ──> Sealed ──> Shipped
//
// Shipped is terminal. Requesting the current status again is a no-op;
// every other transition is rejected with an InvalidStatusTransitionError
// that enumerates the reachable targets.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status. A box in this status is still being
	// assembled: membership may change and the box may be deleted.
	Created

	// Sealed indicates the box has been closed for shipping.
	// Contents are frozen from this point on.
	Sealed

	// Shipped indicates the box has left the warehouse.
	// This is a final state with no further transitions.
	Shipped
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Created: "CREATED",
		Sealed:  "SEALED",
		Shipped: "SHIPPED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created: "CREATED",
		Sealed:  "SEALED",
		Shipped: "SHIPPED",
	}
}

// getAllowedTransitions returns the reachable targets per status.
// Shipped maps to an empty set, making it terminal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created: {Sealed},
		Sealed:  {Shipped},
		Shipped: {},
	}
}

// StatusFromString parses the persisted or user-supplied form of a status.
// Returns an error for anything outside CREATED, SEALED, SHIPPED.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of Created, Sealed, Shipped.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted form of the status ("CREATED", "SEALED",
// "SHIPPED") or "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateTransition checks whether the requested status is reachable from the
// current one. Requesting the current status is a no-op and always allowed.
// Any other pair outside the allowed walk fails with an
// InvalidStatusTransitionError carrying the reachable targets.
func (s Status) ValidateTransition(requested Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	if requested == s {
		return nil
	}

	allowed := getAllowedTransitions()[s]
	for _, target := range allowed {
		if target == requested {
			return nil
		}
	}

	allowedStrings := make([]string, 0, len(allowed))
	for _, target := range allowed {
		allowedStrings = append(allowedStrings, target.String())
	}

	return errs.NewInvalidStatusTransitionError(s.String(), requested.String(), allowedStrings)
}
