package zoo

import (
	"github.com/openzoo/zoo-registry/pkg/entity"
)

// NewEnclosure creates a new Enclosure entity with an empty animals
// relationship. Attach animals with With(Animals(...)).
func NewEnclosure(id int64, environment string, openToVisitors bool, decorators ...entity.DecoratorFunc) *entity.Impl {
	decorators = append(decorators,
		entity.Text("environment", environment),
		entity.Bool("open_to_visitors", openToVisitors),
	)

	e := entity.New(EnclosureTypeName, id, decorators...)

	if _, ok := e.Relationship("animals"); !ok {
		e.With(entity.RList("animals"))
	}

	return e
}
