// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that do not
// naturally belong to a single aggregate root.
//
// The package includes:
//   - Dispatcher: selects and assigns a carrier to a pending order
package services
