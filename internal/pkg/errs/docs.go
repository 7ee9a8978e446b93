// Package errs provides the standardized error taxonomy for the ordering and
// dispatch application.
//
// The taxonomy mirrors how callers are expected to react:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed cart, tip, time or
//     address input; the user corrects the input and retries.
//   - InvalidTransitionError: an order state-machine guard was violated; the
//     caller is working from a stale view and should refresh order state.
//   - DriverUnavailableError: dispatch exclusivity conflict; the caller should
//     refresh the roster and retry with another driver.
//   - InvalidTimeFormatError: free-text delivery time could not be parsed;
//     completion is rejected outright, never defaulted.
//   - UpstreamUnavailableError: an external collaborator is unreachable; read
//     paths may degrade to cached data, write paths fail.
//   - ObjectNotFoundError: a lookup by identifier found nothing.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrDriverUnavailable) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for classification
//
// No error in this package is ever swallowed silently; all of them carry a
// human-readable message that is surfaced to the initiating user.
package errs
