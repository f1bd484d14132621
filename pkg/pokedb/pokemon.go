package pokedb

import (
	"context"
	"fmt"

	"github.com/notjagan/moveset/pkg/model"
)

type learnRow struct {
	Move         string `db:"move_name"`
	VersionGroup string `db:"version_group"`
	Method       string `db:"method"`
	Level        int    `db:"level"`
}

func (d *DB) Pokemon(ctx context.Context, name string) (*model.Pokemon, error) {
	var pokemon model.Pokemon
	err := d.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name
		FROM pokemon_v2_pokemon
		WHERE name = ?
	`, name).Scan(&pokemon.ID, &pokemon.Name)
	if err != nil {
		return nil, fmt.Errorf("pokemon %q: %w", name, notFound(err))
	}

	var rows []learnRow
	err = d.db.SelectContext(ctx, &rows,
		/* sql */ `
		SELECT m.name AS move_name, vg.name AS version_group, lm.name AS method, pm.level
		FROM pokemon_v2_pokemonmove pm
		JOIN pokemon_v2_move m
			ON pm.move_id = m.id
		JOIN pokemon_v2_versiongroup vg
			ON pm.version_group_id = vg.id
		JOIN pokemon_v2_movelearnmethod lm
			ON pm.move_learn_method_id = lm.id
		WHERE pm.pokemon_id = ?
		ORDER BY pm.id
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting moves for pokemon %q: %w", name, err)
	}

	index := make(map[string]int)
	for _, row := range rows {
		method, err := model.LearnMethodNameString(row.Method)
		if err != nil {
			return nil, fmt.Errorf("move %q for pokemon %q: %w", row.Move, name, err)
		}

		i, ok := index[row.Move]
		if !ok {
			i = len(pokemon.Moves)
			index[row.Move] = i
			pokemon.Moves = append(pokemon.Moves, model.PokemonMove{Name: row.Move})
		}
		pokemon.Moves[i].Details = append(pokemon.Moves[i].Details, model.LearnDetail{
			VersionGroup: row.VersionGroup,
			Method:       method,
			Level:        row.Level,
		})
	}

	return &pokemon, nil
}

func (d *DB) Move(ctx context.Context, name string) (*model.Move, error) {
	var move model.Move
	err := d.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT m.id, m.name, m.power, t.name AS type_name
		FROM pokemon_v2_move m
		JOIN pokemon_v2_type t
			ON m.type_id = t.id
		WHERE m.name = ?
	`, name).StructScan(&move)
	if err != nil {
		return nil, fmt.Errorf("move %q: %w", name, notFound(err))
	}

	return &move, nil
}
