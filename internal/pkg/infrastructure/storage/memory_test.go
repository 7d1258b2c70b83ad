package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLoadSeed(t *testing.T) {
	is, store := setupStoreTest(t)

	animals, err := store.Animals(context.Background())
	is.NoErr(err)
	is.Equal(len(animals), 3)
}

func TestAnimalsAreOrderedByID(t *testing.T) {
	is, store := setupStoreTest(t)

	animals, err := store.Animals(context.Background())
	is.NoErr(err)
	is.Equal(animals[0].ID, int64(1))
	is.Equal(animals[1].ID, int64(2))
	is.Equal(animals[2].ID, int64(3))
}

func TestAnimalsByZookeeper(t *testing.T) {
	is, store := setupStoreTest(t)

	animals, err := store.AnimalsByZookeeper(context.Background(), 2)
	is.NoErr(err)
	is.Equal(len(animals), 2)
	is.Equal(animals[0].Name, "Nala")
	is.Equal(animals[1].Name, "Bruno")
}

func TestAnimalsByEnclosure(t *testing.T) {
	is, store := setupStoreTest(t)

	animals, err := store.AnimalsByEnclosure(context.Background(), 1)
	is.NoErr(err)
	is.Equal(len(animals), 1)
	is.Equal(animals[0].Name, "Crystal")
}

func TestAnimalWithoutEnclosure(t *testing.T) {
	is, store := setupStoreTest(t)

	bruno, err := store.Animal(context.Background(), 2)
	is.NoErr(err)
	is.True(bruno.EnclosureID == nil)
	is.True(bruno.ZookeeperID != nil)
}

func TestMissingRecordsReturnErrNotExist(t *testing.T) {
	is, store := setupStoreTest(t)

	_, err := store.Animal(context.Background(), 42)
	is.True(errors.Is(err, ErrNotExist))

	_, err = store.Zookeeper(context.Background(), 42)
	is.True(errors.Is(err, ErrNotExist))

	_, err = store.Enclosure(context.Background(), 42)
	is.True(errors.Is(err, ErrNotExist))
}

func TestZookeepersAndEnclosures(t *testing.T) {
	is, store := setupStoreTest(t)

	zookeepers, err := store.Zookeepers(context.Background())
	is.NoErr(err)
	is.Equal(len(zookeepers), 2)
	is.Equal(zookeepers[0].Birthday, "2000-12-30")

	enclosures, err := store.Enclosures(context.Background())
	is.NoErr(err)
	is.Equal(len(enclosures), 2)
	is.Equal(enclosures[1].Environment, "Savannah")
	is.True(enclosures[1].OpenToVisitors)
}

func setupStoreTest(t *testing.T) (*is.I, Store) {
	is := is.New(t)

	store, err := NewMemoryStore(bytes.NewBufferString(seedYAML))
	is.NoErr(err)

	return is, store
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
