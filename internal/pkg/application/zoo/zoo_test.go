package zoo

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/openzoo/zoo-registry/internal/pkg/infrastructure/storage"
	models "github.com/openzoo/zoo-registry/pkg/datamodels/zoo"
	"github.com/openzoo/zoo-registry/pkg/serializer"
)

func TestRetrieveZookeeperAssemblesACyclicGraph(t *testing.T) {
	is, app := setupRegistryTest(t)

	keeper, err := app.RetrieveZookeeper(context.Background(), 1)
	is.NoErr(err)
	is.Equal(keeper.Type(), models.ZookeeperTypeName)

	animals, ok := keeper.Relationship("animals")
	is.True(ok)
	is.Equal(len(animals.Related()), 1)

	crystal := animals.Related()[0]
	is.Equal(crystal.ID(), int64(3))

	back, ok := crystal.Relationship("zookeeper")
	is.True(ok)
	is.Equal(back.Related()[0], keeper) // back reference must close the cycle on the same instance
}

func TestRetrievedZookeeperSerializesToTheExpectedShape(t *testing.T) {
	is, app := setupRegistryTest(t)

	keeper, err := app.RetrieveZookeeper(context.Background(), 1)
	is.NoErr(err)

	registry := models.NewRegistry()
	s := serializer.New(registry)

	rule, err := registry.Default(models.ZookeeperTypeName)
	is.NoErr(err)

	result, err := s.Serialize(keeper, rule)
	is.NoErr(err)

	is.Equal(result, serializer.Object{
		"id":       int64(1),
		"name":     "Christine Johnson",
		"birthday": "2000-12-30",
		"animals": []serializer.Object{
			{
				"id":      int64(3),
				"name":    "Crystal",
				"species": "Ostrich",
				"enclosure": serializer.Object{
					"id":               int64(1),
					"environment":      "Cage",
					"open_to_visitors": false,
				},
			},
		},
	})
}

func TestRetrieveAnimalWithoutEnclosure(t *testing.T) {
	is, app := setupRegistryTest(t)

	bruno, err := app.RetrieveAnimal(context.Background(), 2)
	is.NoErr(err)

	enclosure, ok := bruno.Relationship("enclosure")
	is.True(ok)
	is.Equal(len(enclosure.Related()), 0)
}

func TestRetrieveMissingAnimalReturnsNotFound(t *testing.T) {
	is, app := setupRegistryTest(t)

	_, err := app.RetrieveAnimal(context.Background(), 42)

	var notFound NotFoundError
	is.True(errors.As(err, &notFound))
}

func TestListAnimalsSharesRelatedInstances(t *testing.T) {
	is, app := setupRegistryTest(t)

	animals, err := app.ListAnimals(context.Background())
	is.NoErr(err)
	is.Equal(len(animals), 3)

	nalaKeeper, _ := animals[0].Relationship("zookeeper")
	brunoKeeper, _ := animals[1].Relationship("zookeeper")

	// Nala and Bruno share zookeeper 2; the assembler must hand back
	// one instance, not one copy per animal
	is.Equal(nalaKeeper.Related()[0], brunoKeeper.Related()[0])
}

func TestListZookeepersAttachesAnimalLists(t *testing.T) {
	is, app := setupRegistryTest(t)

	keepers, err := app.ListZookeepers(context.Background())
	is.NoErr(err)
	is.Equal(len(keepers), 2)

	samuelsAnimals, _ := keepers[1].Relationship("animals")
	is.Equal(len(samuelsAnimals.Related()), 2)
}

func TestRetrieveEnclosureAttachesItsAnimals(t *testing.T) {
	is, app := setupRegistryTest(t)

	enclosure, err := app.RetrieveEnclosure(context.Background(), 2)
	is.NoErr(err)

	animals, _ := enclosure.Relationship("animals")
	is.Equal(len(animals.Related()), 1)
	is.Equal(animals.Related()[0].ID(), int64(1))
}

func setupRegistryTest(t *testing.T) (*is.I, Registry) {
	is := is.New(t)

	store, err := storage.NewMemoryStore(bytes.NewBufferString(seedYAML))
	is.NoErr(err)

	return is, New(store)
}

var seedYAML string = `
zookeepers:
  - id: 1
    name: Christine Johnson
    birthday: "2000-12-30"
  - id: 2
    name: Samuel Osei
    birthday: "1987-04-12"
enclosures:
  - id: 1
    environment: Cage
    openToVisitors: false
  - id: 2
    environment: Savannah
    openToVisitors: true
animals:
  - id: 1
    name: Nala
    species: Lion
    zookeeperId: 2
    enclosureId: 2
  - id: 2
    name: Bruno
    species: Bear
    zookeeperId: 2
  - id: 3
    name: Crystal
    species: Ostrich
    zookeeperId: 1
    enclosureId: 1
`
