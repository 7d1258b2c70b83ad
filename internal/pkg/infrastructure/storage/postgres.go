package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "zoo"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database described by cfg and
// returns a store reading from the animals, zookeepers and enclosures
// tables.
func NewPostgresStore(ctx context.Context, cfg Config) (Store, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) Animal(ctx context.Context, id int64) (AnimalRecord, error) {
	sql := `SELECT id, name, species, zookeeper_id, enclosure_id FROM animals WHERE id=$1;`

	var a AnimalRecord
	err := s.pool.QueryRow(ctx, sql, id).Scan(&a.ID, &a.Name, &a.Species, &a.ZookeeperID, &a.EnclosureID)
	if errors.Is(err, pgx.ErrNoRows) {
		return AnimalRecord{}, ErrNotExist
	}
	if err != nil {
		return AnimalRecord{}, err
	}

	return a, nil
}

func (s *postgresStore) Animals(ctx context.Context) ([]AnimalRecord, error) {
	sql := `SELECT id, name, species, zookeeper_id, enclosure_id FROM animals ORDER BY id;`
	return s.queryAnimals(ctx, sql)
}

func (s *postgresStore) AnimalsByZookeeper(ctx context.Context, zookeeperID int64) ([]AnimalRecord, error) {
	sql := `SELECT id, name, species, zookeeper_id, enclosure_id FROM animals WHERE zookeeper_id=$1 ORDER BY id;`
	return s.queryAnimals(ctx, sql, zookeeperID)
}

func (s *postgresStore) AnimalsByEnclosure(ctx context.Context, enclosureID int64) ([]AnimalRecord, error) {
	sql := `SELECT id, name, species, zookeeper_id, enclosure_id FROM animals WHERE enclosure_id=$1 ORDER BY id;`
	return s.queryAnimals(ctx, sql, enclosureID)
}

func (s *postgresStore) queryAnimals(ctx context.Context, sql string, args ...any) ([]AnimalRecord, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	animals := make([]AnimalRecord, 0)

	for rows.Next() {
		var a AnimalRecord
		err := rows.Scan(&a.ID, &a.Name, &a.Species, &a.ZookeeperID, &a.EnclosureID)
		if err != nil {
			return nil, err
		}
		animals = append(animals, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return animals, nil
}

func (s *postgresStore) Zookeeper(ctx context.Context, id int64) (ZookeeperRecord, error) {
	sql := `SELECT id, name, to_char(birthday, 'YYYY-MM-DD') FROM zookeepers WHERE id=$1;`

	var z ZookeeperRecord
	err := s.pool.QueryRow(ctx, sql, id).Scan(&z.ID, &z.Name, &z.Birthday)
	if errors.Is(err, pgx.ErrNoRows) {
		return ZookeeperRecord{}, ErrNotExist
	}
	if err != nil {
		return ZookeeperRecord{}, err
	}

	return z, nil
}

func (s *postgresStore) Zookeepers(ctx context.Context) ([]ZookeeperRecord, error) {
	sql := `SELECT id, name, to_char(birthday, 'YYYY-MM-DD') FROM zookeepers ORDER BY id;`

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zookeepers := make([]ZookeeperRecord, 0)

	for rows.Next() {
		var z ZookeeperRecord
		err := rows.Scan(&z.ID, &z.Name, &z.Birthday)
		if err != nil {
			return nil, err
		}
		zookeepers = append(zookeepers, z)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return zookeepers, nil
}

func (s *postgresStore) Enclosure(ctx context.Context, id int64) (EnclosureRecord, error) {
	sql := `SELECT id, environment, open_to_visitors FROM enclosures WHERE id=$1;`

	var e EnclosureRecord
	err := s.pool.QueryRow(ctx, sql, id).Scan(&e.ID, &e.Environment, &e.OpenToVisitors)
	if errors.Is(err, pgx.ErrNoRows) {
		return EnclosureRecord{}, ErrNotExist
	}
	if err != nil {
		return EnclosureRecord{}, err
	}

	return e, nil
}

func (s *postgresStore) Enclosures(ctx context.Context) ([]EnclosureRecord, error) {
	sql := `SELECT id, environment, open_to_visitors FROM enclosures ORDER BY id;`

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enclosures := make([]EnclosureRecord, 0)

	for rows.Next() {
		var e EnclosureRecord
		err := rows.Scan(&e.ID, &e.Environment, &e.OpenToVisitors)
		if err != nil {
			return nil, err
		}
		enclosures = append(enclosures, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enclosures, nil
}
