package storage

import (
	"context"
	"fmt"
	"io"
	"sort"

	yaml "gopkg.in/yaml.v2"
)

type animalSeed struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Species     string `yaml:"species"`
	ZookeeperID *int64 `yaml:"zookeeperId"`
	EnclosureID *int64 `yaml:"enclosureId"`
}

type zookeeperSeed struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Birthday string `yaml:"birthday"`
}

type enclosureSeed struct {
	ID             int64  `yaml:"id"`
	Environment    string `yaml:"environment"`
	OpenToVisitors bool   `yaml:"openToVisitors"`
}

type seedFile struct {
	Animals    []animalSeed    `yaml:"animals"`
	Zookeepers []zookeeperSeed `yaml:"zookeepers"`
	Enclosures []enclosureSeed `yaml:"enclosures"`
}

type memoryStore struct {
	animals    map[int64]AnimalRecord
	zookeepers map[int64]ZookeeperRecord
	enclosures map[int64]EnclosureRecord
}

// NewMemoryStore creates a read-only in-memory store from a YAML seed
// document.
func NewMemoryStore(seed io.Reader) (Store, error) {
	buf, err := io.ReadAll(seed)
	if err != nil {
		return nil, err
	}

	var contents seedFile
	err = yaml.Unmarshal(buf, &contents)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}

	store := &memoryStore{
		animals:    map[int64]AnimalRecord{},
		zookeepers: map[int64]ZookeeperRecord{},
		enclosures: map[int64]EnclosureRecord{},
	}

	for _, a := range contents.Animals {
		store.animals[a.ID] = AnimalRecord{
			ID:          a.ID,
			Name:        a.Name,
			Species:     a.Species,
			ZookeeperID: a.ZookeeperID,
			EnclosureID: a.EnclosureID,
		}
	}

	for _, z := range contents.Zookeepers {
		store.zookeepers[z.ID] = ZookeeperRecord{ID: z.ID, Name: z.Name, Birthday: z.Birthday}
	}

	for _, e := range contents.Enclosures {
		store.enclosures[e.ID] = EnclosureRecord{ID: e.ID, Environment: e.Environment, OpenToVisitors: e.OpenToVisitors}
	}

	return store, nil
}

func (s *memoryStore) Animal(ctx context.Context, id int64) (AnimalRecord, error) {
	a, ok := s.animals[id]
	if !ok {
		return AnimalRecord{}, ErrNotExist
	}
	return a, nil
}

func (s *memoryStore) Animals(ctx context.Context) ([]AnimalRecord, error) {
	return s.animalsMatching(func(AnimalRecord) bool { return true }), nil
}

func (s *memoryStore) AnimalsByZookeeper(ctx context.Context, zookeeperID int64) ([]AnimalRecord, error) {
	return s.animalsMatching(func(a AnimalRecord) bool {
		return a.ZookeeperID != nil && *a.ZookeeperID == zookeeperID
	}), nil
}

func (s *memoryStore) AnimalsByEnclosure(ctx context.Context, enclosureID int64) ([]AnimalRecord, error) {
	return s.animalsMatching(func(a AnimalRecord) bool {
		return a.EnclosureID != nil && *a.EnclosureID == enclosureID
	}), nil
}

func (s *memoryStore) animalsMatching(match func(AnimalRecord) bool) []AnimalRecord {
	result := make([]AnimalRecord, 0, len(s.animals))

	for _, a := range s.animals {
		if match(a) {
			result = append(result, a)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result
}

func (s *memoryStore) Zookeeper(ctx context.Context, id int64) (ZookeeperRecord, error) {
	z, ok := s.zookeepers[id]
	if !ok {
		return ZookeeperRecord{}, ErrNotExist
	}
	return z, nil
}

func (s *memoryStore) Zookeepers(ctx context.Context) ([]ZookeeperRecord, error) {
	result := make([]ZookeeperRecord, 0, len(s.zookeepers))
	for _, z := range s.zookeepers {
		result = append(result, z)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (s *memoryStore) Enclosure(ctx context.Context, id int64) (EnclosureRecord, error) {
	e, ok := s.enclosures[id]
	if !ok {
		return EnclosureRecord{}, ErrNotExist
	}
	return e, nil
}

func (s *memoryStore) Enclosures(ctx context.Context) ([]EnclosureRecord, error) {
	result := make([]EnclosureRecord, 0, len(s.enclosures))
	for _, e := range s.enclosures {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}
