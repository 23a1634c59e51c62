package ruleset

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldrules/pkg/schema"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

var errNoParams = errors.New("parameters required")

var plainRules = map[string]func() schema.Annotation{
	"string":      schema.IsString,
	"number":      schema.IsNumber,
	"int":         schema.IsInt,
	"positive":    schema.IsPositive,
	"negative":    schema.IsNegative,
	"boolean":     schema.IsBoolean,
	"array":       schema.IsArray,
	"object":      schema.IsObject,
	"notNull":     schema.IsNotNull,
	"notEmpty":    schema.IsNotEmpty,
	"email":       schema.IsEmail,
	"url":         schema.IsURL,
	"uuid":        schema.IsUUID,
	"phoneNumber": schema.IsPhoneNumber,
	"upperCase":   schema.IsUpperCase,
	"lowerCase":   schema.IsLowerCase,
	"date":        isDate,
}

var paramRules = map[string]func(*yaml.Node) (schema.Annotation, error){
	"length":     lengthRule,
	"min":        minRule,
	"max":        maxRule,
	"minItems":   minItemsRule,
	"maxItems":   maxItemsRule,
	"in":         inRule,
	"enum":       enumRule,
	"matches":    matchesRule,
	"validateIf": validateIfRule,
}

// RuleNames lists every rule name a ruleset file may use.
func RuleNames() []string {
	names := slices.Collect(maps.Keys(plainRules))
	names = slices.AppendSeq(names, maps.Keys(paramRules))
	slices.Sort(names)
	return names
}

// buildRule turns one entry of a field's rules list into an annotation. An
// entry is either a bare name or a single-key mapping of name to parameters.
func buildRule(node *yaml.Node) (schema.Annotation, error) {
	var (
		name   string
		params *yaml.Node
	)
	switch {
	case node.Kind == yaml.ScalarNode:
		name = node.Value
	case node.Kind == yaml.MappingNode && len(node.Content) == 2:
		name, params = node.Content[0].Value, node.Content[1]
		if params.Tag == "!!null" {
			params = nil
		}
	default:
		return schema.Annotation{}, fmt.Errorf("line %d: expected a rule name or a single-key mapping", node.Line)
	}

	if build, ok := plainRules[name]; ok {
		if params != nil {
			return schema.Annotation{}, fmt.Errorf("rule %q takes no parameters", name)
		}
		return build(), nil
	}
	if build, ok := paramRules[name]; ok {
		if params == nil {
			return schema.Annotation{}, fmt.Errorf("rule %q: %w", name, errNoParams)
		}
		a, err := build(params)
		if err != nil {
			return schema.Annotation{}, fmt.Errorf("rule %q: %w", name, err)
		}
		return a, nil
	}
	return schema.Annotation{}, fmt.Errorf("unknown rule %q", name)
}

// isDate also accepts RFC 3339 strings, the only form a date takes in JSON.
func isDate() schema.Annotation {
	return schema.Use("date", validator.Chain(parseTimestamp, validator.Date))
}

func parseTimestamp(value any, _ string) (any, error) {
	if s, ok := value.(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
	}
	return value, nil
}

func lengthRule(node *yaml.Node) (schema.Annotation, error) {
	var bounds struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	}
	if node.Kind == yaml.SequenceNode {
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return schema.Annotation{}, err
		}
		if len(pair) != 2 {
			return schema.Annotation{}, errors.New("expected [min, max]")
		}
		bounds.Min, bounds.Max = pair[0], pair[1]
	} else if err := node.Decode(&bounds); err != nil {
		return schema.Annotation{}, err
	}
	if bounds.Min < 0 || bounds.Max < bounds.Min {
		return schema.Annotation{}, fmt.Errorf("invalid bounds [%d, %d]", bounds.Min, bounds.Max)
	}
	return schema.Length(bounds.Min, bounds.Max), nil
}

func minRule(node *yaml.Node) (schema.Annotation, error) {
	var n float64
	if err := node.Decode(&n); err != nil {
		return schema.Annotation{}, err
	}
	return schema.Min(n), nil
}

func maxRule(node *yaml.Node) (schema.Annotation, error) {
	var n float64
	if err := node.Decode(&n); err != nil {
		return schema.Annotation{}, err
	}
	return schema.Max(n), nil
}

func minItemsRule(node *yaml.Node) (schema.Annotation, error) {
	n, err := decodeCount(node)
	if err != nil {
		return schema.Annotation{}, err
	}
	return schema.MinItems(n), nil
}

func maxItemsRule(node *yaml.Node) (schema.Annotation, error) {
	n, err := decodeCount(node)
	if err != nil {
		return schema.Annotation{}, err
	}
	return schema.MaxItems(n), nil
}

func decodeCount(node *yaml.Node) (int, error) {
	var n int
	if err := node.Decode(&n); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("count %d is negative", n)
	}
	return n, nil
}

func inRule(node *yaml.Node) (schema.Annotation, error) {
	var values []any
	if err := node.Decode(&values); err != nil {
		return schema.Annotation{}, err
	}
	if len(values) == 0 {
		return schema.Annotation{}, errors.New("expected at least one value")
	}
	return schema.IsIn(values...), nil
}

// enumRule keeps members in the order the file declares them.
func enumRule(node *yaml.Node) (schema.Annotation, error) {
	if node.Kind != yaml.MappingNode {
		return schema.Annotation{}, errors.New("expected a mapping of members")
	}
	if len(node.Content) == 0 {
		return schema.Annotation{}, errors.New("expected at least one member")
	}

	seen := make(map[string]bool, len(node.Content)/2)
	values := make([]any, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if seen[key] {
			return schema.Annotation{}, fmt.Errorf("duplicate member %q", key)
		}
		seen[key] = true

		var v any
		if err := node.Content[i+1].Decode(&v); err != nil {
			return schema.Annotation{}, fmt.Errorf("member %q: %w", key, err)
		}
		values = append(values, v)
	}
	return schema.Use("enum", validator.In(values...)), nil
}

func matchesRule(node *yaml.Node) (schema.Annotation, error) {
	opts := struct {
		Pattern string `yaml:"pattern"`
		Message string `yaml:"message"`
	}{Message: "invalid format"}
	if node.Kind == yaml.ScalarNode {
		opts.Pattern = node.Value
	} else if err := node.Decode(&opts); err != nil {
		return schema.Annotation{}, err
	}

	re, err := compilePattern(opts.Pattern)
	if err != nil {
		return schema.Annotation{}, err
	}
	return schema.Use("matches", validator.MatchesRegexp(re, opts.Message)), nil
}

func validateIfRule(node *yaml.Node) (schema.Annotation, error) {
	var opts struct {
		Pattern string `yaml:"pattern"`
		NotNull bool   `yaml:"notNull"`
	}
	if err := node.Decode(&opts); err != nil {
		return schema.Annotation{}, err
	}

	switch {
	case opts.Pattern != "" && opts.NotNull:
		return schema.Annotation{}, errors.New("pattern and notNull are exclusive")
	case opts.Pattern != "":
		re, err := compilePattern(opts.Pattern)
		if err != nil {
			return schema.Annotation{}, err
		}
		return schema.ValidateIf(func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		}), nil
	case opts.NotNull:
		return schema.ValidateIf(func(v any) bool {
			_, err := validator.NotNull(v, "")
			return err == nil
		}), nil
	default:
		return schema.Annotation{}, errors.New("expected pattern or notNull")
	}
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, errors.New("empty pattern")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern: %w", err)
	}
	return re, nil
}
