// Package errs provides the standardized error types shared by every layer
// of the application.
//
// Each error scenario follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() for classification
//
// The transport layer maps these sentinels to HTTP status codes, so domain
// and application code never deal in status codes directly.
package errs
