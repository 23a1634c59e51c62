// Package schema attaches validator rules to the fields of a Go type and
// replays them against instances of that type.
//
// A Schema[T] is the registration for T: an ordered, append-only list of
// bindings, each pairing a field name, an accessor that reads the field from
// an instance, and a validator.Rule. Schemas are ordinary values declared next
// to the type they describe:
//
//	type User struct {
//	    Name string
//	    Age  int
//	}
//
//	var userSchema = schema.New[*User]()
//
//	func init() {
//	    schema.Annotate(userSchema, "name", schema.Get(func(u *User) string { return u.Name }),
//	        schema.IsNotEmpty(),
//	        schema.IsString(),
//	    )
//	    schema.Annotate(userSchema, "age", schema.Get(func(u *User) int { return u.Age }),
//	        schema.Min(18),
//	    )
//	}
//
//	err := userSchema.Validate(u) // first failure only, e.g. "age: value must be greater than 18"
//
// # Annotation order
//
// Annotate takes annotations in the order they would be stacked above a field
// declaration, outermost first. The annotation nearest the field is applied
// first, so bindings are registered, and later run, from the last listed
// annotation to the first. In the example above IsString runs before
// IsNotEmpty.
//
// # Validation
//
// Validate walks the bindings in registration order, reads each field through
// its accessor at that moment and stops at the first failing rule, returning
// its *validator.ValidationError untouched. An empty schema always passes.
// Instances are never modified.
//
// # Registry
//
// A Registry maps exact type identity to registered schemas for callers that
// only hold an `any`. Lookup does not follow embedded structs: a type that
// embeds a registered type has no bindings of its own unless it is registered
// itself. A non-nil pointer resolves to the registration of its element type,
// and a nil pointer passes without running any schema.
//
// # Concurrency
//
// Registration is synchronized. Validation reads a snapshot of the bindings
// and is safe to call from many goroutines.
package schema
