// Package domain defines the core business entities for Galleria.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Artwork: A single catalogue record
//   - Page: One fetched chunk of the remote collection
//   - PaginationMeta: Collection-wide pagination state
//   - SelectionSet: The cross-page set of selected artwork IDs
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
