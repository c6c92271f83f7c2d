package builder

import (
	"errors"
	"fmt"
	"reflect"

	"set-builder/property"
)

// Builder populates one instance of T.
type Builder[T any] struct {
	desc   *property.Descriptor
	target *T
	errs   []error
}

// New creates a builder around a new zero value of T. If T is not a struct
// the failure is recorded and surfaces from Err and Build.
func New[T any]() *Builder[T] {
	b := &Builder[T]{target: new(T)}

	// DescriptorOf dereferences pointer types; the builder needs T itself.
	if t := reflect.TypeFor[T](); t.Kind() != reflect.Struct {
		b.errs = append(b.errs, property.NewError(property.KindTypeMismatch, t.String(), "",
			fmt.Sprintf("%s is not a struct", t.Kind())))

		return b
	}

	desc, err := property.DescriptorOf[T]()
	if err != nil {
		b.errs = append(b.errs, err)
	}

	b.desc = desc

	return b
}

// Set applies a single assignment and returns its error unchanged.
// Failures returned by Set are not recorded by the builder.
func (b *Builder[T]) Set(a Assignment[T]) error {
	if a == nil {
		return property.NewError(property.KindNullInput, b.typeName(), "", "assignment is nil")
	}

	return a(b.desc, b.target)
}

// With applies assignments in order, recording failures and carrying on.
func (b *Builder[T]) With(assignments ...Assignment[T]) *Builder[T] {
	for _, a := range assignments {
		if err := b.Set(a); err != nil {
			b.errs = append(b.errs, err)
		}
	}

	return b
}

// Err returns the failures recorded so far joined together, or nil.
func (b *Builder[T]) Err() error {
	return errors.Join(b.errs...)
}

// Build returns the instance and the recorded failures.
// Repeated calls return the same pointer.
func (b *Builder[T]) Build() (*T, error) {
	return b.target, b.Err()
}

// MustBuild is like Build but panics if any assignment failed.
func (b *Builder[T]) MustBuild() *T {
	t, err := b.Build()
	if err != nil {
		panic(fmt.Errorf("builder: %w", err))
	}

	return t
}

func (b *Builder[T]) typeName() string {
	if b.desc != nil {
		return b.desc.Name()
	}

	return reflect.TypeFor[T]().String()
}
