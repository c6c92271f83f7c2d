// Package accessor resolves typed field selectors to property names.
//
// A selector is a function of shape func(*T) *F that returns the address of
// one field of its argument:
//
//	func(p *people.Person) *string { return &p.Name }
//
// The compiler checks the field and its type; Resolve recovers the name by
// running the selector once against a zero-valued probe and matching the
// returned address to a field offset. Selectors emitted by `setbuilder gen`
// are ordinary named functions of the same shape.
package accessor
