package property

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNullInput           = errors.New("nil input")
	ErrInvalidExpression   = errors.New("invalid selector")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrPropertyNotWritable = errors.New("property not writable")
	ErrInvalidValue        = errors.New("invalid value")
)

// Error describes a failed property resolution or assignment.
// It unwraps to the sentinel matching its Kind.
type Error struct {
	Kind Kind
	// Type is the name of the target type, if known.
	Type string
	// Property is the property name, if known.
	Property string
	// Value is the offending value (KindInvalidValue only).
	Value any
	// ValueType is the dynamic type of Value, or "nil".
	ValueType string
	// Declared is the declared type of the property (KindInvalidValue only).
	Declared string
	// Reason is a human-readable detail.
	Reason string
}

// NewError creates an Error of the given kind.
func NewError(kind Kind, typeName, name, reason string) *Error {
	return &Error{
		Kind:     kind,
		Type:     typeName,
		Property: name,
		Reason:   reason,
	}
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString("property: ")

	if sentinel := e.Kind.Sentinel(); sentinel != nil {
		sb.WriteString(sentinel.Error())
	} else {
		sb.WriteString(e.Kind.String())
	}

	if subject := e.subject(); subject != "" {
		sb.WriteString(" ")
		sb.WriteString(subject)
	}

	if e.Kind == KindInvalidValue {
		fmt.Fprintf(&sb, ": got %s, declared %s", e.describeValue(), e.Declared)
	}

	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}

	return sb.String()
}

// Unwrap returns the sentinel for the error kind.
func (e *Error) Unwrap() error {
	return e.Kind.Sentinel()
}

func (e *Error) subject() string {
	switch {
	case e.Type != "" && e.Property != "":
		return e.Type + "." + e.Property
	case e.Property != "":
		return e.Property
	default:
		return e.Type
	}
}

func (e *Error) describeValue() string {
	if e.Value == nil {
		return "nil"
	}

	return fmt.Sprintf("%v (%s)", e.Value, e.ValueType)
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}

	return 0
}
