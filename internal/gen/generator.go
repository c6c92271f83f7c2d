package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"slices"
	"strings"

	"set-builder/internal/analyze"
	"set-builder/internal/common"
	"set-builder/internal/diagnostic"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name of the file written into each package directory.
	Filename string
	// Prefix is prepended to every selector name.
	Prefix string
	// Types restricts generation to the named structs. Empty means all.
	Types []string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename: "selectors_gen.go",
	}
}

// Validate checks the configuration.
func (c GeneratorConfig) Validate() error {
	if c.Filename == "" || filepath.Base(c.Filename) != c.Filename {
		return fmt.Errorf("filename %q must be a bare file name", c.Filename)
	}

	if !strings.HasSuffix(c.Filename, ".go") || strings.HasSuffix(c.Filename, "_test.go") {
		return fmt.Errorf("filename %q must end in .go and not be a test file", c.Filename)
	}

	if c.Prefix != "" && !common.IsIdent(c.Prefix) {
		return fmt.Errorf("prefix %q is not a valid Go identifier", c.Prefix)
	}

	return nil
}

// Generator generates selector files from analyzed packages.
type Generator struct {
	config GeneratorConfig
	diags  diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Diagnostics returns what was skipped, renamed or missing during the last
// Generate call.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diags
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "selectors_gen.go").
	Filename string
	// Package is the import path of the package.
	Package string
	// Selectors is the number of selector functions in the file.
	Selectors int
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates one file per package that has at least one selector.
// On a formatting failure the unformatted file is returned with the error.
func (g *Generator) Generate(pkgs []*analyze.PackageInfo) ([]GeneratedFile, error) {
	g.diags = diagnostic.Diagnostics{}

	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	g.checkRequestedTypes(pkgs)
	if err := g.diags.Error(); err != nil {
		return nil, err
	}

	var files []GeneratedFile

	for _, pkg := range pkgs {
		file, err := g.generatePackage(pkg)
		if err != nil {
			if file != nil {
				files = append(files, *file)
			}

			return files, fmt.Errorf("generating %s: %w", pkg.Path, err)
		}

		if file != nil {
			files = append(files, *file)
		}
	}

	return files, nil
}

// checkRequestedTypes reports requested struct names that no package declares.
func (g *Generator) checkRequestedTypes(pkgs []*analyze.PackageInfo) {
	for _, name := range g.config.Types {
		found := false
		for _, pkg := range pkgs {
			if pkg.Struct(name) != nil {
				found = true
				break
			}
		}

		if !found {
			g.diags.AddError(diagnostic.CodeTypeNotFound,
				"no exported struct with this name in the loaded packages", name, "")
		}
	}
}

func (g *Generator) wanted(s *analyze.StructInfo) bool {
	return len(g.config.Types) == 0 || slices.Contains(g.config.Types, s.ID.Name)
}

// generatePackage renders the selector file of one package.
// It returns a nil file when the package has nothing to select.
func (g *Generator) generatePackage(pkg *analyze.PackageInfo) (*GeneratedFile, error) {
	taken := g.namespace(pkg)
	used := make(map[string]struct{})

	data := &templateData{
		PackageName: pkg.Name,
		Generator:   generatorName,
	}

	for i := range pkg.Structs {
		s := &pkg.Structs[i]
		if !g.wanted(s) {
			continue
		}

		typeName := pkg.Name + "." + s.ID.Name

		if s.Generic {
			g.diags.AddWarning(diagnostic.CodeGenericStruct,
				"generic structs have no selectors", typeName, "")
			continue
		}

		for j := range s.Fields {
			f := &s.Fields[j]
			if !g.selectable(typeName, f) {
				continue
			}

			candidate := g.config.Prefix + s.ID.Name + f.Name
			name := common.NewStem(candidate, taken).Next()

			if name != candidate {
				g.diags.AddWarning(diagnostic.CodeRenamed,
					fmt.Sprintf("%s is already declared, selector renamed to %s", candidate, name),
					typeName, f.Name)
			}

			for _, p := range f.Imports {
				used[p] = struct{}{}
			}

			data.Selectors = append(data.Selectors, selectorData{
				Name:      name,
				Type:      s.ID.Name,
				Field:     f.Name,
				FieldType: f.TypeExpr,
			})
		}
	}

	if len(data.Selectors) == 0 {
		g.diags.AddInfo(diagnostic.CodeNoSelectors, "nothing to generate", pkg.Path, "")
		return nil, nil
	}

	data.StdImports, data.Imports = splitImports(pkg, used)

	g.diags.AddInfo(diagnostic.CodeSelectorsCount,
		fmt.Sprintf("%d selectors", len(data.Selectors)), pkg.Path, "")

	var buf bytes.Buffer
	if err := selectorsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		Dir:       pkg.Dir,
		Filename:  g.config.Filename,
		Package:   pkg.Path,
		Selectors: len(data.Selectors),
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		g.diags.AddError(diagnostic.CodeUnformatted, err.Error(), pkg.Path, "")

		// Return unformatted code for debugging
		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

// selectable reports whether f gets a selector, recording why it does not.
func (g *Generator) selectable(typeName string, f *analyze.FieldInfo) bool {
	switch {
	case !f.Exported:
		g.diags.AddInfo(diagnostic.CodeUnexported, "unexported fields are not properties", typeName, f.Name)
	case f.Embedded:
		g.diags.AddWarning(diagnostic.CodeEmbedded, "embedded fields are not properties", typeName, f.Name)
	case f.Hidden():
		g.diags.AddInfo(diagnostic.CodeHidden, "field is tagged setbuilder:\"-\"", typeName, f.Name)
	case f.ReadOnly():
		g.diags.AddInfo(diagnostic.CodeReadOnly, "field is tagged setbuilder:\"readonly\"", typeName, f.Name)
	default:
		return true
	}

	return false
}

// namespace returns the package-scope names a selector must not reuse.
// Declarations of the file being regenerated are free again.
func (g *Generator) namespace(pkg *analyze.PackageInfo) map[string]struct{} {
	taken := make(map[string]struct{}, len(pkg.Decls)+len(pkg.Imports))

	for name, file := range pkg.Decls {
		if file != g.config.Filename {
			taken[name] = struct{}{}
		}
	}

	for _, name := range pkg.Imports {
		taken[name] = struct{}{}
	}

	return taken
}

// splitImports returns the imports used by the selectors, standard library
// first, each group sorted by path.
func splitImports(pkg *analyze.PackageInfo, used map[string]struct{}) (std, other []importSpec) {
	for _, p := range pkg.ImportPaths() {
		if _, ok := used[p]; !ok {
			continue
		}

		spec := importSpec{Path: p}
		if name := pkg.Imports[p]; name != common.PkgAlias(p) {
			spec.Alias = name
		}

		if isStdLib(p) {
			std = append(std, spec)
		} else {
			other = append(other, spec)
		}
	}

	return std, other
}

func isStdLib(p string) bool {
	first, _, _ := strings.Cut(p, "/")
	return !strings.Contains(first, ".")
}
