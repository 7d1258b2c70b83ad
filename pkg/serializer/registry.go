package serializer

// Registry maps entity type names to their default serialization
// rules. It is populated at startup and treated as immutable after
// that; call sites narrow the registered defaults via Rule.Without or
// Partial without ever mutating them.
type Registry struct {
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{
		rules: map[string]Rule{},
	}
}

func (registry *Registry) Register(entityType string, rule Rule) {
	registry.rules[entityType] = rule
}

// Default returns the registered default rule for the given entity
// type, or an unresolved rule error if none has been registered.
func (registry *Registry) Default(entityType string) (Rule, error) {
	rule, ok := registry.rules[entityType]
	if !ok {
		return Rule{}, NewUnresolvedRuleError(entityType)
	}

	return rule, nil
}
