package entity

import "time"

// Entity is a typed, fully loaded record with scalar fields and named
// relationships to other entities. Entities are read-only inputs to
// serialization; the graph they form may contain cycles.
type Entity interface {
	ID() int64
	Type() string

	Scalar(name string) (Value, bool)
	Relationship(name string) (Relationship, bool)
}

// Relationship is a named directed reference to one or more related
// entities. A to-one relationship with no related entity and a to-many
// relationship with no members are both valid (null and empty list).
type Relationship interface {
	ToMany() bool
	Related() []Entity
}

type toOneRelationship struct {
	related Entity
}

func (r toOneRelationship) ToMany() bool { return false }

func (r toOneRelationship) Related() []Entity {
	if r.related == nil {
		return nil
	}
	return []Entity{r.related}
}

type toManyRelationship struct {
	related []Entity
}

func (r toManyRelationship) ToMany() bool      { return true }
func (r toManyRelationship) Related() []Entity { return r.related }

type DecoratorFunc func(e *Impl)

// New creates an entity of the given type. The id is always available
// as a read-only scalar named "id". Relationships that form cycles are
// attached after construction via With.
func New(entityType string, id int64, decorators ...DecoratorFunc) *Impl {
	e := &Impl{
		entityID:      id,
		entityType:    entityType,
		scalars:       map[string]Value{"id": NewIntValue(id)},
		relationships: map[string]Relationship{},
	}

	for _, decorator := range decorators {
		decorator(e)
	}

	return e
}

type Impl struct {
	entityID   int64
	entityType string

	scalars       map[string]Value
	relationships map[string]Relationship
}

func (e *Impl) ID() int64 {
	return e.entityID
}

func (e *Impl) Type() string {
	return e.entityType
}

func (e *Impl) Scalar(name string) (Value, bool) {
	v, ok := e.scalars[name]
	return v, ok
}

func (e *Impl) Relationship(name string) (Relationship, bool) {
	r, ok := e.relationships[name]
	return r, ok
}

// With applies additional decorators to an already created entity.
// Mutual relationships need this two-phase assembly, since neither
// side of a cycle can be fully decorated before the other exists.
func (e *Impl) With(decorators ...DecoratorFunc) *Impl {
	for _, decorator := range decorators {
		decorator(e)
	}

	return e
}

func S(name string, value Value) DecoratorFunc {
	return func(e *Impl) { e.scalars[name] = value }
}

// R attaches a to-one relationship. A nil related entity is allowed
// and serializes to null.
func R(name string, related Entity) DecoratorFunc {
	return func(e *Impl) { e.relationships[name] = toOneRelationship{related: related} }
}

// RList attaches a to-many relationship, preserving the given order.
func RList(name string, related ...Entity) DecoratorFunc {
	return func(e *Impl) { e.relationships[name] = toManyRelationship{related: related} }
}

func Text(name string, value string) DecoratorFunc {
	return S(name, NewTextValue(value))
}

func Int(name string, value int64) DecoratorFunc {
	return S(name, NewIntValue(value))
}

func Bool(name string, value bool) DecoratorFunc {
	return S(name, NewBoolValue(value))
}

func Date(name string, value time.Time) DecoratorFunc {
	return S(name, NewDateValue(value))
}

func DateString(name string, value string) DecoratorFunc {
	return S(name, NewDateValueFromString(value))
}
