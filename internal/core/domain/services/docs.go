// Package services provides domain services of the sales order model: logic
// that reads an aggregate but is kept outside of it.
//
// The package includes:
//   - StateClassifier: decides whether an order advances automatically to
//     processing, complete or closed before it is saved
//
// Services are pure: they perform no I/O and return values instead of
// mutating the aggregates they inspect.
package services
