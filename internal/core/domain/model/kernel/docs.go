// Package kernel provides the core domain primitives shared by the
// delivery domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for geographic coordinates (latitude/longitude)
//
// These primitives enforce domain invariants at construction time and are
// immutable, making them safe for concurrent use. Entities and aggregates
// build on them rather than on raw strings and floats.
package kernel
