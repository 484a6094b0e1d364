// Package domain defines the core entities for wxnews.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PlaceQuery: The user-editable place name typed on the screen
//   - Weather: A current-weather snapshot for one place
//   - Article: A single top headline
//   - FetchError: A collapsed provider failure carrying its source
//   - AppSettings: Provider endpoints and credentials
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
