// Package pokedb reads PokeAPI data from a local copy of its sqlite database.
package pokedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/notjagan/moveset/pkg/model"
)

const superEffectiveFactor = 200

type DB struct {
	db *sqlx.DB
}

var _ model.Source = (*DB)(nil)

func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}

	return New(db), nil
}

func New(db *sqlx.DB) *DB {
	return &DB{db: db}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}

	return err
}

func (d *DB) VersionGroupNames(ctx context.Context) ([]string, error) {
	var names []string
	err := d.db.SelectContext(ctx, &names,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_versiongroup
		ORDER BY "order", id
	`)
	if err != nil {
		return nil, fmt.Errorf("error while listing version groups: %w", err)
	}

	return names, nil
}

func (d *DB) VersionGroup(ctx context.Context, name string) (*model.VersionGroup, error) {
	var vg model.VersionGroup
	err := d.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT vg.id, vg.name, g.name AS generation_name
		FROM pokemon_v2_versiongroup vg
		JOIN pokemon_v2_generation g
			ON vg.generation_id = g.id
		WHERE vg.name = ?
	`, name).StructScan(&vg)
	if err != nil {
		return nil, fmt.Errorf("version group %q: %w", name, notFound(err))
	}

	return &vg, nil
}

func (d *DB) Generation(ctx context.Context, id int) (*model.Generation, error) {
	gen := model.Generation{ID: id}
	err := d.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_generation
		WHERE id = ?
	`, id).Scan(&gen.Name)
	if err != nil {
		return nil, fmt.Errorf("generation %d: %w", id, notFound(err))
	}

	err = d.db.SelectContext(ctx, &gen.Types,
		/* sql */ `
		SELECT id, name
		FROM pokemon_v2_type
		WHERE generation_id = ?
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for generation %d: %w", id, err)
	}

	return &gen, nil
}
