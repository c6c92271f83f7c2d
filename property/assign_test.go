package property_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"set-builder/examples/people"
	"set-builder/property"
)

func mustDescribe[T any](t *testing.T) *property.Descriptor {
	t.Helper()

	d, err := property.DescriptorOf[T]()
	require.NoError(t, err)

	return d
}

func TestAssign_SetsProperty(t *testing.T) {
	d := mustDescribe[people.Person](t)
	person := &people.Person{}

	err := property.Assign(d, "Name", "Eduardo", person)
	require.NoError(t, err)
	assert.Equal(t, "Eduardo", person.Name)
}

func TestAssign_ProductValue(t *testing.T) {
	d := mustDescribe[people.Product](t)
	product := &people.Product{}

	require.NoError(t, d.Set(product, "Value", float64(120)))
	assert.Equal(t, float64(120), product.Value)
}

func TestAssign_Collections(t *testing.T) {
	d := mustDescribe[people.Producer](t)
	producer := &people.Producer{}

	groups := [][]*people.Person{{{Name: "a"}}, {{Name: "b"}, {Name: "c"}}}
	require.NoError(t, property.Assign(d, "EmployeesBySector", groups, producer))
	assert.Equal(t, groups, producer.EmployeesBySector)

	products := []people.Product{{Value: 1}}
	require.NoError(t, property.Assign(d, "Products", products, producer))
	assert.Equal(t, products, producer.Products)
}

func TestAssign_NilToNullable(t *testing.T) {
	d := mustDescribe[people.Person](t)
	person := &people.Person{Partner: &people.Person{Name: "Livia"}}

	require.NoError(t, property.Assign(d, "Partner", nil, person))
	assert.Nil(t, person.Partner)
}

func TestAssign_Failures(t *testing.T) {
	personDesc := mustDescribe[people.Person](t)
	productDesc := mustDescribe[people.Product](t)
	producerDesc := mustDescribe[people.Producer](t)

	var nilPerson *people.Person

	tests := []struct {
		name   string
		desc   *property.Descriptor
		prop   string
		value  any
		target any
		kind   property.Kind
		want   error
	}{
		{"nil descriptor", nil, "Name", "x", &people.Person{}, property.KindNullInput, property.ErrNullInput},
		{"nil target", personDesc, "Name", "x", nil, property.KindNullInput, property.ErrNullInput},
		{"nil pointer target", personDesc, "Age", byte(19), nilPerson, property.KindNullInput, property.ErrNullInput},
		{"other type", productDesc, "Age", byte(19), &people.Person{}, property.KindTypeMismatch, property.ErrTypeMismatch},
		{"property of other type", productDesc, "Code", "x", &people.Person{}, property.KindTypeMismatch, property.ErrTypeMismatch},
		{"non pointer target", personDesc, "Name", "x", people.Person{}, property.KindTypeMismatch, property.ErrTypeMismatch},
		{"unknown name", personDesc, "InvalidPropertyName", "Livia", &people.Person{}, property.KindPropertyNotFound, property.ErrPropertyNotFound},
		{"unexported field", personDesc, "secret", "x", &people.Person{}, property.KindPropertyNotFound, property.ErrPropertyNotFound},
		{"hidden field", producerDesc, "Audit", "x", &people.Producer{}, property.KindPropertyNotFound, property.ErrPropertyNotFound},
		{"readonly field", personDesc, "Nickname", "Afraid of dark", &people.Person{}, property.KindPropertyNotWritable, property.ErrPropertyNotWritable},
		{"computed property", personDesc, "Age", 19, &people.Person{}, property.KindPropertyNotWritable, property.ErrPropertyNotWritable},
		{"rune for string", personDesc, "Name", 'F', &people.Person{}, property.KindInvalidValue, property.ErrInvalidValue},
		{"nil for string", personDesc, "Name", nil, &people.Person{}, property.KindInvalidValue, property.ErrInvalidValue},
		{"int for float64", productDesc, "Value", 120, &people.Product{}, property.KindInvalidValue, property.ErrInvalidValue},
		{"value for pointer", personDesc, "Partner", people.Person{}, &people.Person{}, property.KindInvalidValue, property.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := property.Assign(tt.desc, tt.prop, tt.value, tt.target)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, property.KindOf(err))
		})
	}
}

func TestAssign_FailureLeavesInstanceUntouched(t *testing.T) {
	d := mustDescribe[people.Person](t)
	person := &people.Person{Name: "Edu", Married: true}

	err := property.Assign(d, "Name", 'F', person)
	require.Error(t, err)
	assert.Equal(t, &people.Person{Name: "Edu", Married: true}, person)

	err = property.Assign(d, "Married", "yes", person)
	require.Error(t, err)
	assert.True(t, person.Married)
}

func TestAssign_Deterministic(t *testing.T) {
	d := mustDescribe[people.Person](t)

	for range 3 {
		err := property.Assign(d, "Nickname", "x", &people.Person{})
		assert.Equal(t, property.KindPropertyNotWritable, property.KindOf(err))
	}
}

func TestAssign_InvalidValueError(t *testing.T) {
	d := mustDescribe[people.Person](t)

	err := property.Assign(d, "Name", 'F', &people.Person{})

	var perr *property.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "people.Person", perr.Type)
	assert.Equal(t, "Name", perr.Property)
	assert.Equal(t, 'F', perr.Value)
	assert.Equal(t, "int32", perr.ValueType)
	assert.Equal(t, "string", perr.Declared)
	assert.Equal(t,
		"property: invalid value people.Person.Name: got 70 (int32), declared string: value requires an explicit conversion",
		err.Error())
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  *property.Error
		want string
	}{
		{
			property.NewError(property.KindPropertyNotFound, "people.Person", "Foo", "no exported property with this name"),
			"property: property not found people.Person.Foo: no exported property with this name",
		},
		{
			property.NewError(property.KindNullInput, "", "", ""),
			"property: nil input",
		},
		{
			property.NewError(property.KindTypeMismatch, "people.Product", "", "target is *people.Person, want *people.Product"),
			"property: type mismatch people.Product: target is *people.Person, want *people.Product",
		},
		{
			&property.Error{Kind: property.KindInvalidValue, Property: "Name", Declared: "string", Reason: "nil is not allowed for a non-nullable type"},
			"property: invalid value Name: got nil, declared string: nil is not allowed for a non-nullable type",
		},
		{
			property.NewError(property.Kind(42), "T", "", ""),
			"property: Kind(42) T",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestKind_Sentinel(t *testing.T) {
	for k := property.Kind(1); int(k) < property.KindTotal; k++ {
		err := property.NewError(k, "T", "P", "")
		assert.ErrorIs(t, err, k.Sentinel(), k.String())
	}

	assert.NoError(t, property.Kind(0).Sentinel())
	assert.Equal(t, property.Kind(0), property.KindOf(errors.New("plain")))
}
