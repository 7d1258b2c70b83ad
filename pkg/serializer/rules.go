package serializer

import (
	"github.com/openzoo/zoo-registry/pkg/entity"
)

// Rule declares which scalar fields of an entity type to emit (with
// their expected kinds) and which relationships to traverse. Every
// traversed relationship carries an override rule for the far side,
// either inline or as a deferred reference resolved from a Registry at
// first use. Rules are immutable value objects; narrowing operations
// return copies.
type Rule struct {
	fields map[string]entity.Kind
	rels   map[string]relRule
}

type relRule struct {
	inline  *Rule
	ref     string
	without []string
}

type RuleDecoratorFunc func(r *Rule)

// NewRule creates a rule from the given decorators.
func NewRule(decorators ...RuleDecoratorFunc) Rule {
	r := Rule{
		fields: map[string]entity.Kind{},
		rels:   map[string]relRule{},
	}

	for _, decorator := range decorators {
		decorator(&r)
	}

	return r
}

func Field(name string, kind entity.Kind) RuleDecoratorFunc {
	return func(r *Rule) { r.fields[name] = kind }
}

func Text(name string) RuleDecoratorFunc {
	return Field(name, entity.KindText)
}

func Int(name string) RuleDecoratorFunc {
	return Field(name, entity.KindInt)
}

func Bool(name string) RuleDecoratorFunc {
	return Field(name, entity.KindBool)
}

func Date(name string) RuleDecoratorFunc {
	return Field(name, entity.KindDate)
}

// Nested includes a relationship with an inline override rule for the
// related entity type.
func Nested(name string, rule Rule) RuleDecoratorFunc {
	return func(r *Rule) { r.rels[name] = relRule{inline: &rule} }
}

// Ref includes a relationship whose override rule is the registered
// default rule for entityType, narrowed by removing the named
// relationships. The reference is resolved at first use, which lets
// mutually related types reference each other's rules regardless of
// definition order.
func Ref(name string, entityType string, without ...string) RuleDecoratorFunc {
	return func(r *Rule) { r.rels[name] = relRule{ref: entityType, without: without} }
}

// Without returns a copy of the rule with the named relationships
// removed. Names that are not included to begin with are ignored,
// since the result is the same narrowing.
func (r Rule) Without(relNames ...string) Rule {
	narrowed := Rule{
		fields: r.fields,
		rels:   make(map[string]relRule, len(r.rels)),
	}

	for name, rel := range r.rels {
		narrowed.rels[name] = rel
	}

	for _, name := range relNames {
		delete(narrowed.rels, name)
	}

	return narrowed
}

// Includes reports whether the rule includes the named field or
// relationship at its top level.
func (r Rule) Includes(name string) bool {
	if _, ok := r.fields[name]; ok {
		return true
	}

	_, ok := r.rels[name]
	return ok
}

func (rr relRule) resolve(registry *Registry) (Rule, error) {
	if rr.inline != nil {
		return rr.inline.Without(rr.without...), nil
	}

	resolved, err := registry.Default(rr.ref)
	if err != nil {
		return Rule{}, err
	}

	return resolved.Without(rr.without...), nil
}
