package accessor

import (
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"set-builder/property"
)

// Resolve returns the name of the direct field of T that sel selects.
//
// It fails with property.ErrNullInput when sel is nil and with
// property.ErrInvalidExpression when sel does not return the address of
// exactly one direct field of its argument with declared type F
// (nested paths, promoted fields, fresh allocations and panics included).
// Zero-size fields of the same type that share an offset are ambiguous and
// rejected, as are all fields of a zero-size struct.
func Resolve[T, F any](sel func(*T) *F) (string, error) {
	t := reflect.TypeFor[T]()

	if sel == nil {
		return "", property.NewError(property.KindNullInput, t.String(), "", "selector is nil")
	}

	if t.Kind() != reflect.Struct {
		return "", invalid(t, sel, fmt.Sprintf("%s is not a struct", t.Kind()))
	}

	// every zero-size allocation may share one address
	if t.Size() == 0 {
		return "", invalid(t, sel, "fields of a zero-size struct cannot be told apart by address")
	}

	base, addr, err := probe(sel)
	if err != nil {
		return "", invalid(t, sel, err.Error())
	}

	if addr < base || addr-base >= t.Size() {
		return "", invalid(t, sel, "returned address is outside the instance")
	}

	offset := addr - base
	want := reflect.TypeFor[F]()

	var matches []string

	for i := range t.NumField() {
		f := t.Field(i)
		if f.Offset == offset && f.Type == want {
			matches = append(matches, f.Name)
		}
	}

	switch len(matches) {
	case 0:
		return "", invalid(t, sel, fmt.Sprintf("no direct field of type %s at offset %d", want, offset))
	case 1:
		return matches[0], nil
	default:
		// only zero-size fields of the same type can share an offset
		return "", invalid(t, sel, fmt.Sprintf("fields %s share type %s and offset %d",
			strings.Join(matches, ", "), want, offset))
	}
}

// MustResolve is like Resolve but panics on failure.
func MustResolve[T, F any](sel func(*T) *F) string {
	name, err := Resolve(sel)
	if err != nil {
		panic(err)
	}

	return name
}

// probe runs sel against a fresh zero value and reports the instance and
// result addresses.
func probe[T, F any](sel func(*T) *F) (base, addr uintptr, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("selector panicked: %v", r)
		}
	}()

	inst := new(T)

	p := sel(inst)
	if p == nil {
		return 0, 0, fmt.Errorf("selector returned nil")
	}

	return reflect.ValueOf(inst).Pointer(), reflect.ValueOf(p).Pointer(), nil
}

func invalid(t reflect.Type, sel any, reason string) error {
	return property.NewError(property.KindInvalidExpression, t.String(), "",
		fmt.Sprintf("selector %s: %s", FuncName(sel), reason))
}

// FuncName returns the short "pkg.Func" name of fn, or "<nil>".
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<unknown>"
	}

	// "set-builder/examples/people.PersonName" -> "people.PersonName"
	_, name := path.Split(f.Name())

	return name
}
