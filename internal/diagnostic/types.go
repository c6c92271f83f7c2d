package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeGenericStruct  = "generic-struct"
	CodeUnexported     = "unexported-field"
	CodeEmbedded       = "embedded-field"
	CodeHidden         = "hidden-field"
	CodeReadOnly       = "readonly-field"
	CodeRenamed        = "renamed-selector"
	CodeNoSelectors    = "no-selectors"
	CodeTypeNotFound   = "type-not-found"
	CodeUnformatted    = "unformatted-output"
	CodeSelectorsCount = "selectors"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type identifies the struct this relates to (if any).
	Type string
	// Field identifies the field this relates to (if any).
	Field string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (d *Diagnostics) add(sev Severity, code, message, typ, field string) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Type:     typ,
		Field:    field,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typ, field string) {
	d.add(SeverityError, code, message, typ, field)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typ, field string) {
	d.add(SeverityWarning, code, message, typ, field)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typ, field string) {
	d.add(SeverityInfo, code, message, typ, field)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Subject returns "Type.Field", "Type" or "".
func (d Diagnostic) Subject() string {
	if d.Type != "" && d.Field != "" {
		return d.Type + "." + d.Field
	}

	return d.Type
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if subject := d.Subject(); subject != "" {
		return subject + ": " + msg
	}

	return msg
}
