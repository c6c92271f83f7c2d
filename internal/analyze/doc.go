// Package analyze provides package loading and struct extraction for the
// selector generator.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build an in-memory model of the exported structs of each package.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: an exported named struct and its fields
//   - FieldInfo: field name, type expression, tags and embedding
//   - PackageInfo: structs, referenced imports and package-scope names
package analyze
