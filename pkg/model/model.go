package model

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// SpecialTypeIDCutoff is the first service id used for non-standard types such as
// "unknown" (10001) and "shadow" (10002). Types at or above it never take part in
// coverage calculations.
const SpecialTypeIDCutoff = 20

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidVersion = errors.New("invalid version")
	ErrUnsetVersion   = errors.New("model version is nil")
)

type Model struct {
	src Source

	Version *VersionGroup
}

func New(src Source) *Model {
	return &Model{src: src}
}

func (m *Model) Close() error {
	return m.src.Close()
}

func (m *Model) VersionGroupNames(ctx context.Context) ([]string, error) {
	names, err := m.src.VersionGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while getting all version groups: %w", err)
	}

	return names, nil
}

func (m *Model) versionGroupByName(ctx context.Context, name string) (*VersionGroup, error) {
	vg, err := m.src.VersionGroup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("version group %q not found: %w", name, err)
	}
	vg.model = m

	return vg, nil
}

func (m *Model) SetVersionByName(ctx context.Context, name string) error {
	names, err := m.VersionGroupNames(ctx)
	if err != nil {
		return fmt.Errorf("could not validate version %q: %w", name, err)
	}
	if !slices.Contains(names, name) {
		return fmt.Errorf("version %q: %w", name, ErrInvalidVersion)
	}

	vg, err := m.versionGroupByName(ctx, name)
	if err != nil {
		return fmt.Errorf("error while setting version: %w", err)
	}
	m.Version = vg

	return nil
}

func (m *Model) Generation(ctx context.Context) (int, error) {
	if m.Version == nil {
		return 0, ErrUnsetVersion
	}

	return m.Version.Generation(ctx)
}

// AvailableTypes returns the names of every standard type introduced in generations
// 1 through gen.
func (m *Model) AvailableTypes(ctx context.Context, gen int) ([]string, error) {
	var types []string
	for id := 1; id <= gen; id++ {
		g, err := m.src.Generation(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("could not get types for generation %d: %w", id, err)
		}

		for _, ref := range g.Types {
			if ref.IsSpecial() {
				continue
			}
			types = append(types, ref.Name)
		}
	}

	types = lo.Uniq(types)
	slices.Sort(types)

	return types, nil
}

// PokemonByName looks a pokemon up regardless of the current version. A pokemon with
// nothing to learn in the version has an empty learnset there, which is not an error.
func (m *Model) PokemonByName(ctx context.Context, name string) (*Pokemon, error) {
	pokemon, err := m.src.Pokemon(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("no matching pokemon found: %w", err)
	}

	return pokemon, nil
}

func (m *Model) MoveByName(ctx context.Context, name string) (*Move, error) {
	move, err := m.src.Move(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("no matching move found: %w", err)
	}

	return move, nil
}

func (m *Model) TypeByName(ctx context.Context, name string) (*Type, error) {
	typ, err := m.src.Type(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("no matching type found: %w", err)
	}

	return typ, nil
}

func (m *Model) TypesByName(ctx context.Context, names []string) ([]*Type, error) {
	types := make([]*Type, len(names))
	for i, name := range names {
		typ, err := m.TypeByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get type for name %q: %w", name, err)
		}
		types[i] = typ
	}

	return types, nil
}
