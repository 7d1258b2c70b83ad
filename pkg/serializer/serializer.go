// Package serializer converts entity graphs into plain nested
// structures under caller declared rules. Nesting depth is a static
// property of the rule set: every relationship traversal carries a
// pre-pruned override rule for the far side, so cyclic graphs
// serialize without any runtime cycle detection.
package serializer

import (
	"github.com/openzoo/zoo-registry/pkg/entity"
)

// Object is a structured value composed only of maps with string keys,
// ordered sequences, strings, numbers, booleans and nil.
type Object map[string]any

// DefaultMaxDepth bounds rule graph traversal as defense in depth
// against a rule set that never reaches a fixed point. Correctly
// constructed rule sets stay far below it.
const DefaultMaxDepth int = 32

type Serializer struct {
	registry *Registry
	maxDepth int
}

type OptionFunc func(s *Serializer)

// WithMaxDepth bounds how many nesting levels below the root entity
// are admitted before serialization fails.
func WithMaxDepth(depth int) OptionFunc {
	return func(s *Serializer) { s.maxDepth = depth }
}

// New creates a serializer that resolves deferred rule references from
// the given registry.
func New(registry *Registry, options ...OptionFunc) *Serializer {
	s := &Serializer{
		registry: registry,
		maxDepth: DefaultMaxDepth,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Serialize produces a map holding the rule's scalar fields after kind
// conversion and, for each included relationship, either a nested map
// (to-one, nil when no related entity) or an ordered sequence of
// nested maps (to-many). Configuration and conversion errors abort the
// whole operation; no partially built map is ever returned.
func (s *Serializer) Serialize(e entity.Entity, rule Rule) (Object, error) {
	return s.serialize(e, rule, 0)
}

// SerializeMany applies Serialize element-wise, preserving input order.
func (s *Serializer) SerializeMany(entities []entity.Entity, rule Rule) ([]Object, error) {
	result := make([]Object, 0, len(entities))

	for _, e := range entities {
		obj, err := s.serialize(e, rule, 0)
		if err != nil {
			return nil, err
		}
		result = append(result, obj)
	}

	return result, nil
}

// Partial restricts output to exactly the named top level fields of
// the rule (sparse fieldsets). Naming a field the rule does not
// include is a configuration error.
func (s *Serializer) Partial(e entity.Entity, rule Rule, only ...string) (Object, error) {
	narrowed := Rule{
		fields: map[string]entity.Kind{},
		rels:   map[string]relRule{},
	}

	for _, name := range only {
		if kind, ok := rule.fields[name]; ok {
			narrowed.fields[name] = kind
			continue
		}

		if rel, ok := rule.rels[name]; ok {
			narrowed.rels[name] = rel
			continue
		}

		return nil, NewUnknownFieldError(e.Type(), name)
	}

	return s.serialize(e, narrowed, 0)
}

func (s *Serializer) serialize(e entity.Entity, rule Rule, depth int) (Object, error) {
	if depth >= s.maxDepth {
		return nil, NewNotTerminatingError(e.Type(), s.maxDepth)
	}

	result := Object{}

	for name, kind := range rule.fields {
		value, ok := e.Scalar(name)
		if !ok {
			return nil, NewUnknownFieldError(e.Type(), name)
		}

		if value.Kind() != kind {
			return nil, NewKindMismatchError(e.Type(), name, kind, value.Kind())
		}

		encoded, err := value.Encode()
		if err != nil {
			return nil, NewConversionError(e.Type(), e.ID(), name, err)
		}

		result[name] = encoded
	}

	for name, rel := range rule.rels {
		relationship, ok := e.Relationship(name)
		if !ok {
			return nil, NewUnknownFieldError(e.Type(), name)
		}

		override, err := rel.resolve(s.registry)
		if err != nil {
			return nil, err
		}

		related := relationship.Related()

		if relationship.ToMany() {
			nested := make([]Object, 0, len(related))

			for _, r := range related {
				obj, err := s.serialize(r, override, depth+1)
				if err != nil {
					return nil, err
				}
				nested = append(nested, obj)
			}

			result[name] = nested
			continue
		}

		if len(related) == 0 {
			result[name] = nil
			continue
		}

		nested, err := s.serialize(related[0], override, depth+1)
		if err != nil {
			return nil, err
		}

		result[name] = nested
	}

	return result, nil
}
