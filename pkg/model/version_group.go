package model

import (
	"context"
	"fmt"
)

type VersionGroup struct {
	model *Model

	ID             int    `db:"id"`
	Name           string `db:"name"`
	GenerationName string `db:"generation_name"`

	gen int
}

func (vg *VersionGroup) Generation(ctx context.Context) (int, error) {
	if vg.gen == 0 {
		gen, err := ParseGenerationName(vg.GenerationName)
		if err != nil {
			return 0, fmt.Errorf("error while getting generation for version group %q: %w", vg.Name, err)
		}
		vg.gen = gen
	}

	return vg.gen, nil
}

// AvailableTypes lists the standard types that exist in the version group's generation.
func (vg *VersionGroup) AvailableTypes(ctx context.Context) ([]string, error) {
	gen, err := vg.Generation(ctx)
	if err != nil {
		return nil, err
	}

	types, err := vg.model.AvailableTypes(ctx, gen)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for version group %q: %w", vg.Name, err)
	}

	return types, nil
}
