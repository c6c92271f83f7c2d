// Package gen provides deterministic Go code generation for field selectors.
//
// For every exported struct of a loaded package it emits one named function
// per settable field:
//
//	func PersonName(x *Person) *string { return &x.Name }
//
// Generation approach uses text/template + go/format for readable Go code.
// Selector names that collide with existing package-scope declarations get
// a numeric suffix.
package gen
