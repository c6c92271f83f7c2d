package property

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TagKey is the struct tag key controlling property visibility.
const TagKey = "setbuilder"

// Values of the setbuilder tag.
const (
	TagHidden   = "-"
	TagReadonly = "readonly"
)

// Property describes one named property of a struct type.
type Property struct {
	Name     string
	Type     reflect.Type // declared type
	Shape    Shape
	Nullable bool
	Readable bool
	Writable bool
	// Computed is set for properties backed by a niladic method rather than a field.
	Computed bool

	index int // field index, -1 when computed
}

// Descriptor is the immutable property table of a struct type.
// Descriptors are safe for concurrent use.
type Descriptor struct {
	typ     reflect.Type
	byName  map[string]*Property
	ordered []*Property
}

var descriptorCache sync.Map // map[reflect.Type]*Descriptor

// Describe returns the descriptor for the struct type t, building and
// caching it on first use. A pointer-to-struct type is dereferenced.
func Describe(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, NewError(KindNullInput, "", "", "type is nil")
	}

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, NewError(KindTypeMismatch, t.String(), "", fmt.Sprintf("%s is not a struct", t.Kind()))
	}

	if d, ok := descriptorCache.Load(t); ok {
		return d.(*Descriptor), nil
	}

	d, _ := descriptorCache.LoadOrStore(t, buildDescriptor(t))

	return d.(*Descriptor), nil
}

// DescriptorOf returns the descriptor for T.
func DescriptorOf[T any]() (*Descriptor, error) {
	return Describe(reflect.TypeFor[T]())
}

func buildDescriptor(t reflect.Type) *Descriptor {
	d := &Descriptor{
		typ:    t,
		byName: make(map[string]*Property, t.NumField()),
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := Directive(f.Tag)
		if tag == TagHidden {
			continue
		}

		d.add(&Property{
			Name:     f.Name,
			Type:     f.Type,
			Shape:    ShapeOf(f.Type),
			Nullable: IsNullable(f.Type),
			Readable: true,
			Writable: tag != TagReadonly,
			index:    i,
		})
	}

	// method set of *T includes the methods of T
	pt := reflect.PointerTo(t)
	for i := range pt.NumMethod() {
		m := pt.Method(i)

		// m.Type includes the receiver
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}

		if _, exists := d.byName[m.Name]; exists {
			continue
		}

		out := m.Type.Out(0)
		d.add(&Property{
			Name:     m.Name,
			Type:     out,
			Shape:    ShapeOf(out),
			Nullable: IsNullable(out),
			Readable: true,
			Computed: true,
			index:    -1,
		})
	}

	return d
}

func (d *Descriptor) add(p *Property) {
	d.byName[p.Name] = p
	d.ordered = append(d.ordered, p)
}

// Directive returns the first option of the setbuilder tag, or "".
func Directive(tag reflect.StructTag) string {
	v := tag.Get(TagKey)
	if idx := strings.IndexByte(v, ','); idx >= 0 {
		v = v[:idx]
	}

	return strings.TrimSpace(v)
}

// Type returns the described struct type.
func (d *Descriptor) Type() reflect.Type {
	return d.typ
}

// Name returns the described type name, e.g. "people.Person".
func (d *Descriptor) Name() string {
	return d.typ.String()
}

// Property looks up a property by name.
func (d *Descriptor) Property(name string) (*Property, bool) {
	p, ok := d.byName[name]
	return p, ok
}

// Properties returns fields in declaration order followed by computed
// properties in name order.
func (d *Descriptor) Properties() []*Property {
	out := make([]*Property, len(d.ordered))
	copy(out, d.ordered)

	return out
}

// New returns a pointer to a new zero value of the described type.
func (d *Descriptor) New() any {
	return reflect.New(d.typ).Interface()
}

// Set assigns value to the named property of target. See Assign.
func (d *Descriptor) Set(target any, name string, value any) error {
	return Assign(d, name, value, target)
}

// Get reads the named property of target. Computed properties invoke their method.
func (d *Descriptor) Get(target any, name string) (any, error) {
	rv, err := d.checkTarget(target)
	if err != nil {
		return nil, err
	}

	p, ok := d.byName[name]
	if !ok {
		return nil, NewError(KindPropertyNotFound, d.Name(), name, "no exported property with this name")
	}

	if p.Computed {
		return rv.MethodByName(name).Call(nil)[0].Interface(), nil
	}

	return rv.Elem().Field(p.index).Interface(), nil
}

// checkTarget verifies that target is a non-nil pointer to exactly the described type.
func (d *Descriptor) checkTarget(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, NewError(KindNullInput, d.Name(), "", "target is nil")
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return reflect.Value{}, NewError(KindNullInput, d.Name(), "", "target is a nil pointer")
	}

	if want := reflect.PointerTo(d.typ); rv.Type() != want {
		return reflect.Value{}, NewError(KindTypeMismatch, d.Name(), "",
			fmt.Sprintf("target is %s, want %s", rv.Type(), want))
	}

	return rv, nil
}
