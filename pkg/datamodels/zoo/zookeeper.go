package zoo

import (
	"time"

	"github.com/openzoo/zoo-registry/pkg/entity"
)

// NewZookeeper creates a new Zookeeper entity with an empty animals
// relationship. Set the birthday with Birthday or BirthdayString and
// attach animals with With(Animals(...)).
func NewZookeeper(id int64, name string, decorators ...entity.DecoratorFunc) *entity.Impl {
	decorators = append(decorators,
		entity.Text("name", name),
	)

	e := entity.New(ZookeeperTypeName, id, decorators...)

	if _, ok := e.Relationship("animals"); !ok {
		e.With(entity.RList("animals"))
	}

	return e
}

// Birthday sets the zookeeper's birthday from a timestamp
func Birthday(value time.Time) entity.DecoratorFunc {
	return entity.Date("birthday", value)
}

// BirthdayString sets the zookeeper's birthday from an ISO-8601 date
// string, validated when the entity is serialized
func BirthdayString(value string) entity.DecoratorFunc {
	return entity.DateString("birthday", value)
}

// Animals assigns the entity's animals relationship, preserving order
func Animals(animals ...entity.Entity) entity.DecoratorFunc {
	return entity.RList("animals", animals...)
}
