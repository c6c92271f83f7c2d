package property

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a property resolution or assignment failure.
type Kind int

const (
	_ Kind = iota // zero value is not a valid failure kind

	KindNullInput
	KindInvalidExpression
	KindTypeMismatch
	KindPropertyNotFound
	KindPropertyNotWritable
	KindInvalidValue

	// KindTotal is the number of kinds defined, including the zero value.
	KindTotal = int(iota)
)

// Sentinel returns the package-level error matched by errors.Is for k.
func (k Kind) Sentinel() error {
	switch k {
	case KindNullInput:
		return ErrNullInput
	case KindInvalidExpression:
		return ErrInvalidExpression
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindPropertyNotFound:
		return ErrPropertyNotFound
	case KindPropertyNotWritable:
		return ErrPropertyNotWritable
	case KindInvalidValue:
		return ErrInvalidValue
	default:
		return nil
	}
}
