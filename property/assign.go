package property

import "reflect"

// Assign validates and writes value into the property name of target,
// which must be a pointer to the type described by d.
//
// Checks run in order and the first failure is returned:
//  1. d is nil (KindNullInput)
//  2. target is nil or a nil pointer (KindNullInput)
//  3. target is not exactly *d.Type() (KindTypeMismatch)
//  4. no property called name (KindPropertyNotFound)
//  5. the property has no setter (KindPropertyNotWritable)
//  6. value is nil for a non-nullable property, or its type is not
//     assignable to the declared type (KindInvalidValue)
//
// Nothing is written unless every check passes.
func Assign(d *Descriptor, name string, value, target any) error {
	if d == nil {
		return NewError(KindNullInput, "", name, "type descriptor is nil")
	}

	rv, err := d.checkTarget(target)
	if err != nil {
		return err
	}

	p, ok := d.byName[name]
	if !ok {
		return NewError(KindPropertyNotFound, d.Name(), name, "no exported property with this name")
	}

	if !p.Writable {
		reason := "field is tagged " + TagKey + `:"` + TagReadonly + `"`
		if p.Computed {
			reason = "computed property has no setter"
		}

		return NewError(KindPropertyNotWritable, d.Name(), name, reason)
	}

	var vt reflect.Type
	if value != nil {
		vt = reflect.TypeOf(value)
	}

	res := CheckCompatibility(vt, p.Type)
	if !res.Compatibility.Accepts() {
		return &Error{
			Kind:      KindInvalidValue,
			Type:      d.Name(),
			Property:  name,
			Value:     value,
			ValueType: res.ValueType,
			Declared:  res.DeclaredType,
			Reason:    res.Reason,
		}
	}

	field := rv.Elem().Field(p.index)
	if value == nil {
		field.SetZero()
	} else {
		field.Set(reflect.ValueOf(value))
	}

	return nil
}
