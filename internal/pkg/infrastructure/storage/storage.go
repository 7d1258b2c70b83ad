package storage

import (
	"context"
	"fmt"
)

var ErrNotExist = fmt.Errorf("does not exist")

type AnimalRecord struct {
	ID      int64
	Name    string
	Species string

	ZookeeperID *int64
	EnclosureID *int64
}

type ZookeeperRecord struct {
	ID       int64
	Name     string
	Birthday string
}

type EnclosureRecord struct {
	ID             int64
	Environment    string
	OpenToVisitors bool
}

// Store provides read access to the zoo records. Implementations
// return results ordered by ascending id.
type Store interface {
	Animal(ctx context.Context, id int64) (AnimalRecord, error)
	Animals(ctx context.Context) ([]AnimalRecord, error)
	AnimalsByZookeeper(ctx context.Context, zookeeperID int64) ([]AnimalRecord, error)
	AnimalsByEnclosure(ctx context.Context, enclosureID int64) ([]AnimalRecord, error)

	Zookeeper(ctx context.Context, id int64) (ZookeeperRecord, error)
	Zookeepers(ctx context.Context) ([]ZookeeperRecord, error)

	Enclosure(ctx context.Context, id int64) (EnclosureRecord, error)
	Enclosures(ctx context.Context) ([]EnclosureRecord, error)
}
