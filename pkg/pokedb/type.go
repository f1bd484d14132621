package pokedb

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/notjagan/moveset/pkg/model"
)

type efficacyRow struct {
	Generation int    `db:"generation_id"`
	Target     string `db:"target"`
	TargetID   int    `db:"target_id"`
	Factor     int    `db:"damage_factor"`
}

func (d *DB) Type(ctx context.Context, name string) (*model.Type, error) {
	typ := model.Type{Name: name}
	err := d.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id
		FROM pokemon_v2_type
		WHERE name = ?
	`, name).Scan(&typ.ID)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", name, notFound(err))
	}

	var current []efficacyRow
	err = d.db.SelectContext(ctx, &current,
		/* sql */ `
		SELECT 0 AS generation_id, t.name AS target, t.id AS target_id, e.damage_factor
		FROM pokemon_v2_typeefficacy e
		JOIN pokemon_v2_type t
			ON e.target_type_id = t.id
		WHERE e.damage_type_id = ?
		ORDER BY t.id
	`, typ.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting efficacy for type %q: %w", name, err)
	}

	var past []efficacyRow
	err = d.db.SelectContext(ctx, &past,
		/* sql */ `
		SELECT p.generation_id, t.name AS target, t.id AS target_id, p.damage_factor
		FROM pokemon_v2_typeefficacypast p
		JOIN pokemon_v2_type t
			ON p.target_type_id = t.id
		WHERE p.damage_type_id = ?
		ORDER BY p.generation_id, t.id
	`, typ.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting past efficacy for type %q: %w", name, err)
	}

	typ.DoubleDamageTo = doubleDamageTo(current)
	typ.Past = pastRelations(current, past)

	return &typ, nil
}

func doubleDamageTo(rows []efficacyRow) []string {
	slices.SortFunc(rows, func(a, b efficacyRow) int {
		return a.TargetID - b.TargetID
	})

	var names []string
	for _, row := range rows {
		if row.Factor == superEffectiveFactor {
			names = append(names, row.Target)
		}
	}

	return names
}

// pastRelations builds each historical table from the current one. A past row holds for
// its generation and every earlier one, so the table at gen is the current table
// overlaid with every row at or after gen, the closest generation last.
func pastRelations(current, past []efficacyRow) []model.PastRelations {
	byGen := make(map[int][]efficacyRow)
	for _, row := range past {
		byGen[row.Generation] = append(byGen[row.Generation], row)
	}
	gens := slices.Sorted(maps.Keys(byGen))

	relations := make([]model.PastRelations, 0, len(gens))
	for i, gen := range gens {
		table := make(map[string]efficacyRow, len(current))
		for _, row := range current {
			table[row.Target] = row
		}
		for j := len(gens) - 1; j >= i; j-- {
			for _, row := range byGen[gens[j]] {
				table[row.Target] = row
			}
		}

		relations = append(relations, model.PastRelations{
			Generation:     gen,
			DoubleDamageTo: doubleDamageTo(slices.Collect(maps.Values(table))),
		})
	}

	return relations
}
