// Package builder provides a generic fluent builder that populates a struct
// through typed field selectors.
//
//	person, err := builder.New[people.Person]().
//		With(
//			builder.Value(people.PersonName, "Edu"),
//			builder.Deferred(people.PersonMarried, func(bool) bool { return true }),
//			builder.CollectionOf(people.PersonFriends, func(fs *builder.Producers[*people.Person]) {
//				fs.Add(func(*people.Person) *people.Person { return guilherme })
//				fs.Add(func(*people.Person) *people.Person { return alan })
//			}),
//		).
//		Build()
//
// Every assignment resolves its selector (package accessor), computes the
// value and hands it to property.Assign. A failed assignment leaves the
// instance untouched for that property and does not prevent later ones.
// Deferred producers always receive the zero value of their type.
//
// Build returns the instance owned by the builder without copying it, so
// assignments made after Build are visible through earlier results.
//
// A Builder is not safe for concurrent use; independent builders are.
package builder
