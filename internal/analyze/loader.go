package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"

	"set-builder/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts their exported structs.
type Analyzer struct {
	// Dir is the directory patterns are resolved from. Empty means the
	// current working directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./examples/people", "set-builder/examples/...").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	out := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		info, err := a.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		out = append(out, info)
	}

	return out, nil
}

// processPackage extracts structs and package-scope names from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) (*PackageInfo, error) {
	if pkg.Types == nil {
		return nil, errors.New("no type information")
	}

	info := &PackageInfo{
		Path:    pkg.PkgPath,
		Name:    pkg.Name,
		Dir:     packageDir(pkg),
		Imports: make(map[string]string),
		Decls:   make(map[string]string),
	}

	q := newQualifier(pkg.Types, info.Imports)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		if pos := pkg.Fset.Position(obj.Pos()); pos.Filename != "" {
			info.Decls[name] = filepath.Base(pos.Filename)
		}

		// Only process exported type names
		typeName, ok := obj.(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		info.Structs = append(info.Structs, StructInfo{
			ID:      TypeID{PkgPath: pkg.PkgPath, Name: name},
			Generic: named.TypeParams().Len() > 0,
			Fields:  analyzeStructFields(st, q),
		})
	}

	return info, nil
}

// analyzeStructFields extracts fields from a struct type.
func analyzeStructFields(st *types.Struct, q *qualifier) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		q.used = nil
		expr := types.TypeString(field.Type(), q.qualify)

		fields = append(fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Embedded: field.Embedded(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Index:    i,
			TypeExpr: expr,
			Imports:  q.used,
		})
	}

	return fields
}

// qualifier spells package-qualified type names and assigns every imported
// package a name unique within the importing package.
type qualifier struct {
	self    *types.Package
	imports map[string]string
	taken   map[string]struct{}
	used    []string
}

func newQualifier(self *types.Package, imports map[string]string) *qualifier {
	taken := make(map[string]struct{})
	for _, name := range self.Scope().Names() {
		taken[name] = struct{}{}
	}

	return &qualifier{self: self, imports: imports, taken: taken}
}

func (q *qualifier) qualify(p *types.Package) string {
	if p == q.self {
		return ""
	}

	name, ok := q.imports[p.Path()]
	if !ok {
		name = common.NewStem(p.Name(), q.taken).Next()
		q.imports[p.Path()] = name
	}

	q.used = appendUnique(q.used, p.Path())

	return name
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}

	return append(list, s)
}

func packageDir(pkg *packages.Package) string {
	files := pkg.GoFiles
	if len(files) == 0 {
		files = pkg.CompiledGoFiles
	}

	if len(files) == 0 {
		return ""
	}

	return filepath.Dir(files[0])
}
