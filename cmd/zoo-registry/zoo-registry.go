package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/openzoo/zoo-registry/internal/pkg/application/zoo"
	"github.com/openzoo/zoo-registry/internal/pkg/infrastructure/router"
	"github.com/openzoo/zoo-registry/internal/pkg/infrastructure/storage"
	"github.com/openzoo/zoo-registry/internal/pkg/presentation/api"
	models "github.com/openzoo/zoo-registry/pkg/datamodels/zoo"
)

const appName string = "zoo-registry"

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	store, err := newStore(ctx)
	if err != nil {
		log.Error("failed to create store", "err", err.Error())
		os.Exit(1)
	}

	app := zoo.New(store)
	rules := models.NewRegistry()

	r := router.New(appName)

	err = api.RegisterHandlers(ctx, r, app, rules)
	if err != nil {
		log.Error("failed to register handlers", "err", err.Error())
		os.Exit(1)
	}

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	log.Info("starting to listen for connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func newStore(ctx context.Context) (storage.Store, error) {
	storageType := env.GetVariableOrDefault(ctx, "STORAGE_TYPE", "memory")

	switch storageType {
	case "postgres":
		return storage.NewPostgresStore(ctx, storage.LoadConfiguration(ctx))
	case "memory":
		seedPath := env.GetVariableOrDefault(ctx, "ZOO_SEED_FILE", "")
		if seedPath == "" {
			return storage.NewMemoryStore(strings.NewReader(defaultSeed))
		}

		seedFile, err := os.Open(seedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open seed file: %w", err)
		}
		defer seedFile.Close()

		return storage.NewMemoryStore(seedFile)
	default:
		return nil, fmt.Errorf("unknown storage type %s", storageType)
	}
}

var defaultSeed string = `
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
