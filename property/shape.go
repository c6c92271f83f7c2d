package property

import "reflect"

// Shape is the value shape of a property as seen by the builder.
type Shape int

const (
	ShapeScalar           Shape = iota // any non-collection value
	ShapeCollection                    // []E or [N]E
	ShapeNestedCollection              // collection of collections, e.g. [][]E

	// ShapeTotal is the number of shapes defined.
	ShapeTotal = int(iota)
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeCollection:
		return "collection"
	case ShapeNestedCollection:
		return "nested collection"
	default:
		return "unknown"
	}
}

// ShapeOf classifies t. A nil type is a scalar.
func ShapeOf(t reflect.Type) Shape {
	if !isCollection(t) {
		return ShapeScalar
	}

	if isCollection(t.Elem()) {
		return ShapeNestedCollection
	}

	return ShapeCollection
}

// IsNullable reports whether t admits nil.
func IsNullable(t reflect.Type) bool {
	if t == nil {
		return false
	}

	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func isCollection(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// typeName renders t for diagnostics, tolerating nil.
func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}
