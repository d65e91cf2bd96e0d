// Package kernel provides the shared domain primitives of the sales order model.
//
// The package includes:
//   - UUID: a validated identifier value object used for orders, items and invoices
//
// Values are immutable and safe for concurrent use.
package kernel
