package property_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"set-builder/examples/people"
	"set-builder/property"
)

type embedded struct {
	Inner string
}

type Outer struct {
	embedded
	Base
	Title string
	Tags  map[string]string
	Grid  [2][3]int
	Any   any
	Skip  string `setbuilder:"-"`
	RO    string `setbuilder:"readonly,extra"`
}

type Base struct {
	ID int
}

func (Outer) Summary() string { return "summary" }

func (*Outer) Describe(string) string { return "" }

func TestDescribe_Errors(t *testing.T) {
	_, err := property.Describe(nil)
	assert.ErrorIs(t, err, property.ErrNullInput)

	_, err = property.Describe(reflect.TypeFor[int]())
	assert.ErrorIs(t, err, property.ErrTypeMismatch)

	_, err = property.DescriptorOf[[]people.Person]()
	assert.ErrorIs(t, err, property.ErrTypeMismatch)
}

func TestDescribe_PointerAndCache(t *testing.T) {
	byValue, err := property.DescriptorOf[people.Person]()
	require.NoError(t, err)

	byPointer, err := property.Describe(reflect.TypeFor[*people.Person]())
	require.NoError(t, err)

	assert.Same(t, byValue, byPointer)
	assert.Equal(t, reflect.TypeFor[people.Person](), byValue.Type())
	assert.Equal(t, "people.Person", byValue.Name())
}

func TestDescriptor_Properties(t *testing.T) {
	d, err := property.DescriptorOf[Outer]()
	require.NoError(t, err)

	var names []string
	for _, p := range d.Properties() {
		names = append(names, p.Name)
	}

	// unexported embedded struct and hidden field are skipped, promoted
	// fields are not properties, Describe takes an argument
	assert.Equal(t, []string{"Base", "Title", "Tags", "Grid", "Any", "RO", "Summary"}, names)

	_, ok := d.Property("Inner")
	assert.False(t, ok)
	_, ok = d.Property("ID")
	assert.False(t, ok)

	ro, ok := d.Property("RO")
	require.True(t, ok)
	assert.True(t, ro.Readable)
	assert.False(t, ro.Writable)
	assert.False(t, ro.Computed)

	summary, ok := d.Property("Summary")
	require.True(t, ok)
	assert.True(t, summary.Computed)
	assert.False(t, summary.Writable)
	assert.Equal(t, reflect.TypeFor[string](), summary.Type)
}

func TestDescriptor_ShapesAndNullability(t *testing.T) {
	person, err := property.DescriptorOf[people.Person]()
	require.NoError(t, err)

	outer, err := property.DescriptorOf[Outer]()
	require.NoError(t, err)

	tests := []struct {
		desc     *property.Descriptor
		name     string
		shape    property.Shape
		nullable bool
	}{
		{person, "Name", property.ShapeScalar, false},
		{person, "Partner", property.ShapeScalar, true},
		{person, "Friends", property.ShapeCollection, true},
		{person, "FriendsOfFriends", property.ShapeNestedCollection, true},
		{person, "BirthDate", property.ShapeScalar, false},
		{outer, "Tags", property.ShapeScalar, true},
		{outer, "Grid", property.ShapeNestedCollection, false},
		{outer, "Any", property.ShapeScalar, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.desc.Property(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.shape, p.Shape)
			assert.Equal(t, tt.nullable, p.Nullable)
		})
	}
}

func TestDescriptor_PropertiesIsACopy(t *testing.T) {
	d, err := property.DescriptorOf[people.Product]()
	require.NoError(t, err)

	props := d.Properties()
	props[0] = nil

	assert.NotNil(t, d.Properties()[0])
}

func TestDescriptor_NewAndGet(t *testing.T) {
	d, err := property.DescriptorOf[people.Person]()
	require.NoError(t, err)

	inst := d.New()
	person, ok := inst.(*people.Person)
	require.True(t, ok)

	person.BirthDate = time.Date(time.Now().Year()-30, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, d.Set(person, "Name", "Edu"))

	name, err := d.Get(person, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Edu", name)

	age, err := d.Get(person, "Age")
	require.NoError(t, err)
	assert.Equal(t, 30, age)

	_, err = d.Get(person, "Missing")
	assert.ErrorIs(t, err, property.ErrPropertyNotFound)

	_, err = d.Get(&people.Product{}, "Name")
	assert.ErrorIs(t, err, property.ErrTypeMismatch)
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "scalar", property.ShapeScalar.String())
	assert.Equal(t, "collection", property.ShapeCollection.String())
	assert.Equal(t, "nested collection", property.ShapeNestedCollection.String())
	assert.Equal(t, "unknown", property.Shape(property.ShapeTotal).String())
}
