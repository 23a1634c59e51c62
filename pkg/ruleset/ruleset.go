package ruleset

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldrules/pkg/schema"
)

type fileDef struct {
	Rulesets map[string]rulesetDef `yaml:"rulesets"`
}

type rulesetDef struct {
	Fields []fieldDef `yaml:"fields"`
}

type fieldDef struct {
	Name  string      `yaml:"name"`
	Rules []yaml.Node `yaml:"rules"`
}

// Ruleset is a named schema over documents.
type Ruleset struct {
	name   string
	schema *schema.Schema[Document]
}

func (r *Ruleset) Name() string { return r.name }

// Bindings lists the field and rule names in the order they run.
func (r *Ruleset) Bindings() []schema.BindingInfo {
	bindings := r.schema.Bindings()
	out := make([]schema.BindingInfo, len(bindings))
	for i, b := range bindings {
		out[i] = schema.BindingInfo{Field: b.Field, Name: b.Name}
	}
	return out
}

// Validate returns the first rule failure for doc as a
// *validator.ValidationError, or nil.
func (r *Ruleset) Validate(doc Document) error {
	return r.schema.Validate(doc)
}

// Set holds the rulesets of one file. It is read-only once loaded.
type Set struct {
	rulesets map[string]*Ruleset
}

// LoadFile reads and compiles the ruleset file at path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Load reads and compiles a ruleset file. JSON input is accepted as YAML.
func Load(r io.Reader) (*Set, error) {
	var def fileDef
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	if len(def.Rulesets) == 0 {
		return nil, fmt.Errorf("%w: no rulesets defined", ErrInvalidFile)
	}

	set := &Set{rulesets: make(map[string]*Ruleset, len(def.Rulesets))}
	for name, rs := range def.Rulesets {
		compiled, err := compile(name, rs)
		if err != nil {
			return nil, err
		}
		set.rulesets[name] = compiled
	}
	return set, nil
}

// compile binds every field's rules. A file lists rules in run order while
// Annotate takes them outermost first, so each list is reversed.
func compile(name string, def rulesetDef) (*Ruleset, error) {
	s := schema.New[Document]()
	for _, f := range def.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: ruleset %q: field without name", ErrInvalidRule, name)
		}

		annotations := make([]schema.Annotation, 0, len(f.Rules))
		for i := range f.Rules {
			a, err := buildRule(&f.Rules[i])
			if err != nil {
				return nil, fmt.Errorf("%w: ruleset %q field %q: %w", ErrInvalidRule, name, f.Name, err)
			}
			annotations = append(annotations, a)
		}
		slices.Reverse(annotations)

		field := f.Name
		schema.Annotate(s, field, func(d Document) any { return d.Get(field) }, annotations...)
	}
	return &Ruleset{name: name, schema: s}, nil
}

// Get returns the named ruleset or ErrUnknownRuleset.
func (s *Set) Get(name string) (*Ruleset, error) {
	if rs, ok := s.rulesets[name]; ok {
		return rs, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRuleset, name)
}

// Names returns the ruleset names in sorted order.
func (s *Set) Names() []string {
	return slices.Sorted(maps.Keys(s.rulesets))
}

// Validate validates doc against the named ruleset.
func (s *Set) Validate(name string, doc Document) error {
	rs, err := s.Get(name)
	if err != nil {
		return err
	}
	return rs.Validate(doc)
}
