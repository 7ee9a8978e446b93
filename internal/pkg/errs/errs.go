package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is. Each concrete error
// type below unwraps to exactly one of these.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrObjectNotFound      = errors.New("object not found")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrDriverUnavailable   = errors.New("driver unavailable")
	ErrInvalidTimeFormat   = errors.New("invalid time format")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required input value is missing.
// This is a recoverable validation error: the user corrects the input and retries.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
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

// ValueIsInvalidError indicates an input value is present but malformed.
// This is a recoverable validation error: the user corrects the input and retries.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
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

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates an order state-machine guard was violated.
// It usually means the caller acted on a stale view of the order and should
// refresh its state before retrying.
type InvalidTransitionError struct {
	From      string
	Operation string
	Cause     error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current state and attempted operation.
func NewInvalidTransitionError(from, operation string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Operation: operation}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, operation string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Operation: operation, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s order in status %s (cause: %s)",
			ErrInvalidTransition, e.Operation, e.From, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s order in status %s", ErrInvalidTransition, e.Operation, e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DriverUnavailableError indicates a dispatch exclusivity conflict: the
// requested driver is already bound to another non-terminal order. The caller
// should refresh the roster and pick a different driver.
type DriverUnavailableError struct {
	DriverID string
	OrderNo  string
	inactive bool
}

// NewDriverUnavailableError creates a DriverUnavailableError naming the driver
// and the order currently holding it.
func NewDriverUnavailableError(driverID, orderNo string) *DriverUnavailableError {
	return &DriverUnavailableError{DriverID: driverID, OrderNo: orderNo}
}

// NewDriverInactiveError creates a DriverUnavailableError for a driver who is
// off the roster rather than tied up on another order.
func NewDriverInactiveError(driverID string) *DriverUnavailableError {
	return &DriverUnavailableError{DriverID: driverID, inactive: true}
}

func (e *DriverUnavailableError) Error() string {
	if e.inactive {
		return sanitize(fmt.Sprintf("%s: driver %s is not active", ErrDriverUnavailable, e.DriverID))
	}
	return sanitize(fmt.Sprintf("%s: driver %s is already assigned to order %s",
		ErrDriverUnavailable, e.DriverID, e.OrderNo))
}

func (e *DriverUnavailableError) Unwrap() error {
	return ErrDriverUnavailable
}

// InvalidTimeFormatError indicates a free-text delivery time could not be
// parsed. Completion must be rejected outright; the time is never silently
// defaulted.
type InvalidTimeFormatError struct {
	Input string
	Cause error
}

// NewInvalidTimeFormatError creates an InvalidTimeFormatError for the given raw input.
func NewInvalidTimeFormatError(input string) *InvalidTimeFormatError {
	return &InvalidTimeFormatError{Input: input}
}

// NewInvalidTimeFormatErrorWithCause creates an InvalidTimeFormatError wrapping an underlying cause.
func NewInvalidTimeFormatErrorWithCause(input string, cause error) *InvalidTimeFormatError {
	return &InvalidTimeFormatError{Input: input, Cause: cause}
}

func (e *InvalidTimeFormatError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %q (cause: %s)", ErrInvalidTimeFormat, e.Input, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %q", ErrInvalidTimeFormat, e.Input))
}

func (e *InvalidTimeFormatError) Unwrap() error {
	return ErrInvalidTimeFormat
}

// UpstreamUnavailableError indicates an external collaborator (catalog,
// persistence) was unreachable. Read paths may degrade to cached data; write
// paths must fail the operation.
type UpstreamUnavailableError struct {
	Upstream string
	Cause    error
}

// NewUpstreamUnavailableError creates an UpstreamUnavailableError for the named collaborator.
func NewUpstreamUnavailableError(upstream string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Upstream: upstream, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrUpstreamUnavailable, e.Upstream, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrUpstreamUnavailable, e.Upstream))
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return ErrUpstreamUnavailable
}
