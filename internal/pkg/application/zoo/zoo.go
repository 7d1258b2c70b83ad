// Package zoo is the data access collaborator for the registry API.
// It loads records from storage and assembles fully loaded entity
// graphs, back references included, before serialization ever sees
// them. The graphs it hands out are genuinely cyclic; keeping the
// serialization of them bounded is the rule set's job.
package zoo

import (
	"context"
	"errors"
	"fmt"

	"github.com/openzoo/zoo-registry/internal/pkg/infrastructure/storage"
	models "github.com/openzoo/zoo-registry/pkg/datamodels/zoo"
	"github.com/openzoo/zoo-registry/pkg/entity"
)

type Registry interface {
	RetrieveAnimal(ctx context.Context, id int64) (entity.Entity, error)
	RetrieveZookeeper(ctx context.Context, id int64) (entity.Entity, error)
	RetrieveEnclosure(ctx context.Context, id int64) (entity.Entity, error)

	ListAnimals(ctx context.Context) ([]entity.Entity, error)
	ListZookeepers(ctx context.Context) ([]entity.Entity, error)
	ListEnclosures(ctx context.Context) ([]entity.Entity, error)
}

func New(store storage.Store) Registry {
	return &registryApp{store: store}
}

type registryApp struct {
	store storage.Store
}

func (app *registryApp) RetrieveAnimal(ctx context.Context, id int64) (entity.Entity, error) {
	rec, err := app.store.Animal(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, models.AnimalTypeName, id)
	}

	asm := newAssembler(app.store)

	animal, err := asm.animal(ctx, rec)
	if err != nil {
		return nil, err
	}

	asm.attachBackReferences()

	return animal, nil
}

func (app *registryApp) RetrieveZookeeper(ctx context.Context, id int64) (entity.Entity, error) {
	asm := newAssembler(app.store)

	keeper, err := asm.zookeeper(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, models.ZookeeperTypeName, id)
	}

	recs, err := app.store.AnimalsByZookeeper(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		_, err := asm.animal(ctx, rec)
		if err != nil {
			return nil, err
		}
	}

	asm.attachBackReferences()

	return keeper, nil
}

func (app *registryApp) RetrieveEnclosure(ctx context.Context, id int64) (entity.Entity, error) {
	asm := newAssembler(app.store)

	enclosure, err := asm.enclosure(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, models.EnclosureTypeName, id)
	}

	recs, err := app.store.AnimalsByEnclosure(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, rec := range recs {
		_, err := asm.animal(ctx, rec)
		if err != nil {
			return nil, err
		}
	}

	asm.attachBackReferences()

	return enclosure, nil
}

func (app *registryApp) ListAnimals(ctx context.Context) ([]entity.Entity, error) {
	recs, err := app.store.Animals(ctx)
	if err != nil {
		return nil, err
	}

	asm := newAssembler(app.store)
	animals := make([]entity.Entity, 0, len(recs))

	for _, rec := range recs {
		animal, err := asm.animal(ctx, rec)
		if err != nil {
			return nil, err
		}
		animals = append(animals, animal)
	}

	asm.attachBackReferences()

	return animals, nil
}

func (app *registryApp) ListZookeepers(ctx context.Context) ([]entity.Entity, error) {
	recs, err := app.store.Zookeepers(ctx)
	if err != nil {
		return nil, err
	}

	asm := newAssembler(app.store)
	keepers := make([]entity.Entity, 0, len(recs))

	for _, rec := range recs {
		keeper := asm.zookeeperFromRecord(rec)

		animalRecs, err := app.store.AnimalsByZookeeper(ctx, rec.ID)
		if err != nil {
			return nil, err
		}

		for _, animalRec := range animalRecs {
			_, err := asm.animal(ctx, animalRec)
			if err != nil {
				return nil, err
			}
		}

		keepers = append(keepers, keeper)
	}

	asm.attachBackReferences()

	return keepers, nil
}

func (app *registryApp) ListEnclosures(ctx context.Context) ([]entity.Entity, error) {
	recs, err := app.store.Enclosures(ctx)
	if err != nil {
		return nil, err
	}

	asm := newAssembler(app.store)
	enclosures := make([]entity.Entity, 0, len(recs))

	for _, rec := range recs {
		enclosure := asm.enclosureFromRecord(rec)

		animalRecs, err := app.store.AnimalsByEnclosure(ctx, rec.ID)
		if err != nil {
			return nil, err
		}

		for _, animalRec := range animalRecs {
			_, err := asm.animal(ctx, animalRec)
			if err != nil {
				return nil, err
			}
		}

		enclosures = append(enclosures, enclosure)
	}

	asm.attachBackReferences()

	return enclosures, nil
}

func notFoundOrInternal(err error, entityType string, id int64) error {
	if errors.Is(err, storage.ErrNotExist) {
		return NewNotFoundError(fmt.Sprintf("no %s with id %d", entityType, id))
	}

	return err
}

// assembler builds the entity graph for a single request. Each entity
// is created at most once, so mutual relationships end up pointing at
// the same instances and the assembled graph contains real cycles.
type assembler struct {
	store storage.Store

	zookeepers map[int64]*entity.Impl
	enclosures map[int64]*entity.Impl

	animalsByZookeeper map[int64][]entity.Entity
	animalsByEnclosure map[int64][]entity.Entity
}

func newAssembler(store storage.Store) *assembler {
	return &assembler{
		store:              store,
		zookeepers:         map[int64]*entity.Impl{},
		enclosures:         map[int64]*entity.Impl{},
		animalsByZookeeper: map[int64][]entity.Entity{},
		animalsByEnclosure: map[int64][]entity.Entity{},
	}
}

func (asm *assembler) animal(ctx context.Context, rec storage.AnimalRecord) (*entity.Impl, error) {
	animal := models.NewAnimal(rec.ID, rec.Name, rec.Species)

	if rec.ZookeeperID != nil {
		keeper, err := asm.zookeeper(ctx, *rec.ZookeeperID)
		if err != nil {
			return nil, fmt.Errorf("animal %d references zookeeper %d: %w", rec.ID, *rec.ZookeeperID, err)
		}

		animal.With(models.Keeper(keeper))
		asm.animalsByZookeeper[*rec.ZookeeperID] = append(asm.animalsByZookeeper[*rec.ZookeeperID], animal)
	}

	if rec.EnclosureID != nil {
		enclosure, err := asm.enclosure(ctx, *rec.EnclosureID)
		if err != nil {
			return nil, fmt.Errorf("animal %d references enclosure %d: %w", rec.ID, *rec.EnclosureID, err)
		}

		animal.With(models.Home(enclosure))
		asm.animalsByEnclosure[*rec.EnclosureID] = append(asm.animalsByEnclosure[*rec.EnclosureID], animal)
	}

	return animal, nil
}

func (asm *assembler) zookeeper(ctx context.Context, id int64) (*entity.Impl, error) {
	if keeper, ok := asm.zookeepers[id]; ok {
		return keeper, nil
	}

	rec, err := asm.store.Zookeeper(ctx, id)
	if err != nil {
		return nil, err
	}

	return asm.zookeeperFromRecord(rec), nil
}

func (asm *assembler) zookeeperFromRecord(rec storage.ZookeeperRecord) *entity.Impl {
	if keeper, ok := asm.zookeepers[rec.ID]; ok {
		return keeper
	}

	keeper := models.NewZookeeper(rec.ID, rec.Name, models.BirthdayString(rec.Birthday))
	asm.zookeepers[rec.ID] = keeper

	return keeper
}

func (asm *assembler) enclosure(ctx context.Context, id int64) (*entity.Impl, error) {
	if enclosure, ok := asm.enclosures[id]; ok {
		return enclosure, nil
	}

	rec, err := asm.store.Enclosure(ctx, id)
	if err != nil {
		return nil, err
	}

	return asm.enclosureFromRecord(rec), nil
}

func (asm *assembler) enclosureFromRecord(rec storage.EnclosureRecord) *entity.Impl {
	if enclosure, ok := asm.enclosures[rec.ID]; ok {
		return enclosure
	}

	enclosure := models.NewEnclosure(rec.ID, rec.Environment, rec.OpenToVisitors)
	asm.enclosures[rec.ID] = enclosure

	return enclosure
}

// attachBackReferences closes the cycles: every zookeeper and
// enclosure assembled during this request gets its animals list set to
// the animals that reference it.
func (asm *assembler) attachBackReferences() {
	for id, animals := range asm.animalsByZookeeper {
		asm.zookeepers[id].With(models.Animals(animals...))
	}

	for id, animals := range asm.animalsByEnclosure {
		asm.enclosures[id].With(models.Animals(animals...))
	}
}
