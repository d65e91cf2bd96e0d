// Package errs provides the typed errors shared by the sales order service.
//
// The package includes:
//   - ObjectNotFoundError: an order, invoice or status label could not be found
//   - ValueIsInvalidError: a value or a requested transition is not allowed
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsOutOfRangeError: a quantity or amount exceeds what the order allows
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is can classify it
//
// Adapters (HTTP, jobs) classify failures with errors.Is against the sentinels
// instead of inspecting messages.
package errs
