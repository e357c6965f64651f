// Package errs provides standardized error types for the fastroute application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - RateLimitExceededError: For when an operation is throttled
//   - IllegalTransitionError: For when an operation conflicts with current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets the transport adapter classify any error
// produced by the core with errors.Is against the sentinels, which is how
// domain failures become HTTP status codes without the core knowing about HTTP.
package errs
