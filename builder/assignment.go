package builder

import (
	"reflect"

	"set-builder/accessor"
	"set-builder/property"
)

// Assignment sets one property of a T. Assignments are created with Value,
// Deferred, Collection, CollectionOf, Nested and NestedOf and applied by
// Builder.With or Builder.Set.
type Assignment[T any] func(d *property.Descriptor, target *T) error

// Value assigns v to the field chosen by sel.
func Value[T, F any](sel func(*T) *F, v F) Assignment[T] {
	return assign(sel, func(string) (F, error) {
		return v, nil
	})
}

// Deferred assigns the result of fn, called once with the zero value of F.
func Deferred[T, F any](sel func(*T) *F, fn func(F) F) Assignment[T] {
	return assign(sel, func(name string) (F, error) {
		var zero F
		if fn == nil {
			return zero, nullInput[T](name, "producer is nil")
		}

		return fn(zero), nil
	})
}

// Collection assigns v as is. The slice is not copied.
func Collection[T, E any](sel func(*T) *[]E, v []E) Assignment[T] {
	return Value(sel, v)
}

// CollectionOf calls fill once to register element producers, calls every
// producer once in registration order and assigns the resulting slice.
// The slice is empty, not nil, when nothing was registered.
func CollectionOf[T, E any](sel func(*T) *[]E, fill func(*Producers[E])) Assignment[T] {
	return assign(sel, func(name string) ([]E, error) {
		if fill == nil {
			return nil, nullInput[T](name, "collection callback is nil")
		}

		var p Producers[E]
		fill(&p)

		values, err := p.values()
		if err != nil {
			return nil, nullInput[T](name, err.Error())
		}

		return values, nil
	})
}

// Nested assigns v as is. Neither level is copied.
func Nested[T, E any](sel func(*T) *[][]E, v [][]E) Assignment[T] {
	return Value(sel, v)
}

// NestedOf calls fill once to register groups, builds each group as
// CollectionOf does, in registration order, and assigns the slice of groups.
func NestedOf[T, E any](sel func(*T) *[][]E, fill func(*Groups[E])) Assignment[T] {
	return assign(sel, func(name string) ([][]E, error) {
		if fill == nil {
			return nil, nullInput[T](name, "nested collection callback is nil")
		}

		var g Groups[E]
		fill(&g)

		values, err := g.values()
		if err != nil {
			return nil, nullInput[T](name, err.Error())
		}

		return values, nil
	})
}

// assign resolves sel, computes the value and delegates to property.Assign.
// The value is only computed once the property name is known.
func assign[T, F any](sel func(*T) *F, value func(name string) (F, error)) Assignment[T] {
	return func(d *property.Descriptor, target *T) error {
		name, err := accessor.Resolve(sel)
		if err != nil {
			return err
		}

		v, err := value(name)
		if err != nil {
			return err
		}

		return property.Assign(d, name, v, target)
	}
}

func nullInput[T any](name, reason string) error {
	return property.NewError(property.KindNullInput, reflect.TypeFor[T]().String(), name, reason)
}
