// Package order provides the Order aggregate of the food-delivery service.
//
// The package includes:
//   - Order: the aggregate root holding customer, delivery target, restaurant,
//     total, lifecycle status, rider acceptance and the line items
//   - Item: one immutable line of the order
//   - Customer, Restaurant, Rider: references to the parties of an order
//   - Status: the closed set of lifecycle states
//
// Lifecycle:
//
//	pending ──(rider accepts)──> pending, accepted
//	   │
//	   ├──(complete)──> completed
//	   └──(status update)──> any recognized status
//
// Acceptance is independent of status: an accepted order stays pending until its
// status is advanced. Status changes and rider assignment are applied by the store
// as single statements, so this package only enforces the invariants that hold at
// construction: at least one item, a rider only together with acceptance, and
// recognized status values.
package order
