package property

import "reflect"

// Compatibility is the level of compatibility between a value type and a
// declared property type.
type Compatibility int

const (
	// Incompatible means the value cannot be stored in the property.
	Incompatible Compatibility = iota
	// Convertible means an explicit Go conversion exists, which Assign does not perform.
	Convertible
	// Assignable means the value can be stored directly.
	Assignable
	// Identical means the types are exactly the same.
	Identical
)

// Verdict strings rendered by Compatibility.String.
const (
	VerdictIdentical    = "identical"
	VerdictAssignable   = "assignable"
	VerdictConvertible  = "convertible"
	VerdictIncompatible = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c Compatibility) String() string {
	switch c {
	case Identical:
		return VerdictIdentical
	case Assignable:
		return VerdictAssignable
	case Convertible:
		return VerdictConvertible
	case Incompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// Accepts reports whether Assign stores a value at this level.
func (c Compatibility) Accepts() bool {
	return c >= Assignable
}

// CompatibilityResult contains detailed information about compatibility.
type CompatibilityResult struct {
	Compatibility Compatibility
	Reason        string // Human-readable explanation
	ValueType     string
	DeclaredType  string
}

// CheckCompatibility determines whether a value of type value can be stored
// in a property declared as declared. A nil value type stands for the
// untyped nil and is only assignable to nullable types.
func CheckCompatibility(value, declared reflect.Type) CompatibilityResult {
	res := CompatibilityResult{
		ValueType:    typeName(value),
		DeclaredType: typeName(declared),
	}

	switch {
	case declared == nil:
		res.Compatibility = Incompatible
		res.Reason = "declared type is unknown"

	case value == nil:
		if IsNullable(declared) {
			res.Compatibility = Assignable
			res.Reason = "nil is assignable to a nullable type"
		} else {
			res.Compatibility = Incompatible
			res.Reason = "nil is not allowed for a non-nullable type"
		}

	case value == declared:
		res.Compatibility = Identical
		res.Reason = "types are identical"

	case value.AssignableTo(declared):
		res.Compatibility = Assignable
		res.Reason = "value is assignable to declared type"

	case value.ConvertibleTo(declared):
		res.Compatibility = Convertible
		res.Reason = "value requires an explicit conversion"

	default:
		res.Compatibility = Incompatible
		res.Reason = "types are not compatible"
	}

	return res
}
