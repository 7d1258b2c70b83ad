package zoo

import (
	"github.com/openzoo/zoo-registry/pkg/entity"
)

// NewAnimal creates a new Animal entity. The zookeeper and enclosure
// relationships are always present; attach the related entities with
// With(Keeper(...)) and With(Home(...)) once they exist, or leave them
// unassigned to serialize as null.
func NewAnimal(id int64, name, species string, decorators ...entity.DecoratorFunc) *entity.Impl {
	decorators = append(decorators,
		entity.Text("name", name),
		entity.Text("species", species),
	)

	e := entity.New(AnimalTypeName, id, decorators...)

	if _, ok := e.Relationship("zookeeper"); !ok {
		e.With(entity.R("zookeeper", nil))
	}

	if _, ok := e.Relationship("enclosure"); !ok {
		e.With(entity.R("enclosure", nil))
	}

	return e
}

// Keeper assigns the animal's zookeeper
func Keeper(zookeeper entity.Entity) entity.DecoratorFunc {
	return entity.R("zookeeper", zookeeper)
}

// Home assigns the animal's enclosure
func Home(enclosure entity.Entity) entity.DecoratorFunc {
	return entity.R("enclosure", enclosure)
}
