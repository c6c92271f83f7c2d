package gen

import "text/template"

const generatorName = "setbuilder gen"

// templateData holds all data needed for the selectors template.
type templateData struct {
	PackageName string
	Generator   string
	StdImports  []importSpec
	Imports     []importSpec
	Selectors   []selectorData
}

// importSpec is one import line.
type importSpec struct {
	Alias string
	Path  string
}

// selectorData is one generated selector function.
type selectorData struct {
	Name      string
	Type      string
	Field     string
	FieldType string
}

var selectorsTemplate = template.Must(template.New("selectors").Parse(`// Code generated by {{.Generator}}; DO NOT EDIT.

package {{.PackageName}}
{{if or .StdImports .Imports}}
import (
{{- range .StdImports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
{{- if and .StdImports .Imports}}
{{end}}
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
{{- range .Selectors}}
// {{.Name}} selects {{.Type}}.{{.Field}}.
func {{.Name}}(x *{{.Type}}) *{{.FieldType}} { return &x.{{.Field}} }
{{end}}`))
