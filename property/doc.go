// Package property describes struct types at runtime and assigns values to
// their properties by name.
//
// A property is an exported field declared directly on the struct (promoted
// fields of embedded structs are not properties of the outer type).
// Fields tagged `setbuilder:"readonly"` and exported niladic methods without
// a same-named field are readable but not writable. Fields tagged
// `setbuilder:"-"` are hidden.
//
// Key capabilities:
//   - Descriptor: cached, immutable per-type metadata with O(1) name lookup
//   - Assign: ordered validation (nil inputs, type match, existence,
//     writability, value compatibility) followed by a single field write
//   - Error: typed failures that unwrap to the package sentinels
package property
