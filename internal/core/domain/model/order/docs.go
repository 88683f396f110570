// Package order contains the order aggregate and its lifecycle state machine.
//
// An order moves forward one step at a time along
//
//	pending -> accepted -> preparing -> picked_up -> delivering -> delivered
//
// and can move sideways into cancelled from any non-terminal state.
// Assignment (pending -> accepted) binds exactly one driver to the order;
// delivered and cancelled are terminal.
//
// The aggregate freezes its item snapshot, total amount, and customer
// address at creation time. Pricing and earnings rules live in this package
// so every transition's side effects are computed from the order's own
// state, never from live catalog data.
package order
