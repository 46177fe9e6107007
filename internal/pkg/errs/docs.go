// Package errs provides the standardized error types used across the
// application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsInvalid) for errors.Is checks
//   - a struct carrying the error details
//   - constructors with and without an underlying cause
//   - an Error() method producing a single-line message
//   - an Unwrap() method returning the sentinel
//
// The types map onto the error taxonomy of the service:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError —
//     validation failures, rejected before any side effect
//   - ObjectNotFoundError — lookups of missing aggregates
//   - InvalidTransitionError — order lifecycle violations; the order state
//     machine only ever moves forward and rejects everything else
package errs
