package analyze

import (
	"reflect"
	"sort"

	"set-builder/property"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "set-builder/examples/people"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// StructInfo describes a named struct type declared in a loaded package.
type StructInfo struct {
	ID      TypeID
	Generic bool        // declared with type parameters
	Fields  []FieldInfo // in declaration order
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Embedded bool              // Whether the field is embedded (anonymous)
	Tag      reflect.StructTag // Raw struct tag
	Index    int               // Field index in the struct
	TypeExpr string            // Field type as spelled inside the declaring package
	Imports  []string          // Import paths referenced by TypeExpr
}

// Directive returns the setbuilder tag directive of the field.
func (f *FieldInfo) Directive() string {
	return property.Directive(f.Tag)
}

// Hidden reports whether the field is excluded from the property set.
func (f *FieldInfo) Hidden() bool {
	return f.Directive() == property.TagHidden
}

// ReadOnly reports whether the field is a property without a setter.
func (f *FieldInfo) ReadOnly() bool {
	return f.Directive() == property.TagReadonly
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string       // Import path
	Name    string       // Package name
	Dir     string       // Directory of the package sources
	Structs []StructInfo // Exported named structs, sorted by name
	// Imports maps every import path referenced by a field type to the name
	// it is known by in generated code. Names are unique within the package.
	Imports map[string]string
	// Decls maps package-scope identifiers to the base name of the file
	// declaring them.
	Decls map[string]string
}

// Struct returns the struct with the given name, or nil.
func (p *PackageInfo) Struct(name string) *StructInfo {
	for i := range p.Structs {
		if p.Structs[i].ID.Name == name {
			return &p.Structs[i]
		}
	}

	return nil
}

// ImportPaths returns the keys of Imports sorted.
func (p *PackageInfo) ImportPaths() []string {
	paths := make([]string, 0, len(p.Imports))
	for path := range p.Imports {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}
