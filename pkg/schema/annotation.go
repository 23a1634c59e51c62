package schema

import (
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Annotation is a named rule waiting to be attached to a field.
type Annotation struct {
	Name string
	Rule validator.Rule
}

// Use is the binder for a fixed rule.
func Use(name string, rule validator.Rule) Annotation {
	if rule == nil {
		panic("schema: Use with nil rule " + name)
	}
	return Annotation{Name: name, Rule: rule}
}

// Build is the binder for parameterized rules: factory runs once, here, and
// the rule it returns is bound like any fixed rule.
func Build(name string, factory func() validator.Rule) Annotation {
	if factory == nil {
		panic("schema: Build with nil factory " + name)
	}
	return Use(name, factory())
}

// Annotate attaches annotations to field. They are given in stacking order,
// outermost first, and registered nearest first: the last annotation is
// registered, and therefore runs, before the ones listed above it.
func Annotate[T any](s *Schema[T], field string, get func(T) any, annotations ...Annotation) {
	for i := len(annotations) - 1; i >= 0; i-- {
		a := annotations[i]
		s.register(field, a.Name, get, a.Rule)
	}
}

func IsString() Annotation      { return Use("string", validator.String) }
func IsNumber() Annotation      { return Use("number", validator.Number) }
func IsInt() Annotation         { return Use("int", validator.Int) }
func IsPositive() Annotation    { return Use("positive", validator.Positive) }
func IsNegative() Annotation    { return Use("negative", validator.Negative) }
func IsBoolean() Annotation     { return Use("boolean", validator.Boolean) }
func IsArray() Annotation       { return Use("array", validator.Array) }
func IsObject() Annotation      { return Use("object", validator.Object) }
func IsNotNull() Annotation     { return Use("notNull", validator.NotNull) }
func IsNotEmpty() Annotation    { return Use("notEmpty", validator.NotEmpty) }
func IsEmail() Annotation       { return Use("email", validator.Email) }
func IsURL() Annotation         { return Use("url", validator.URL) }
func IsUUID() Annotation        { return Use("uuid", validator.UUID) }
func IsPhoneNumber() Annotation { return Use("phoneNumber", validator.PhoneNumber) }
func IsDate() Annotation        { return Use("date", validator.Date) }
func IsUpperCase() Annotation   { return Use("upperCase", validator.UpperCase) }
func IsLowerCase() Annotation   { return Use("lowerCase", validator.LowerCase) }

func Length(min, max int) Annotation {
	return Build("length", func() validator.Rule { return validator.Length(min, max) })
}

func Min[N validator.Numeric](min N) Annotation {
	return Build("min", func() validator.Rule { return validator.Min(min) })
}

func Max[N validator.Numeric](max N) Annotation {
	return Build("max", func() validator.Rule { return validator.Max(max) })
}

func MinItems(min int) Annotation {
	return Build("minItems", func() validator.Rule { return validator.MinItems(min) })
}

func MaxItems(max int) Annotation {
	return Build("maxItems", func() validator.Rule { return validator.MaxItems(max) })
}

func IsIn[V any](values ...V) Annotation {
	return Build("in", func() validator.Rule { return validator.In(values...) })
}

func IsEnum[V any](enum map[string]V) Annotation {
	return Build("enum", func() validator.Rule { return validator.Enum(enum) })
}

// Matches panics if pattern does not compile.
func Matches(pattern, message string) Annotation {
	return Build("matches", func() validator.Rule { return validator.Matches(pattern, message) })
}

func ValidateIf(condition func(value any) bool) Annotation {
	return Build("validateIf", func() validator.Rule { return validator.ValidateIf(condition) })
}
