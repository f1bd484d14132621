// Package modeltest provides an in-memory model.Source backed by a small, hand-picked
// slice of PokeAPI data.
package modeltest

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/notjagan/moveset/pkg/model"
	"github.com/samber/lo"
)

type Source struct {
	VersionGroups map[string]model.VersionGroup
	Generations   map[int]model.Generation
	Pokedex       map[string]model.Pokemon
	Moves         map[string]model.Move
	Types         map[string]model.Type

	// Calls counts lookups per method name.
	Calls  map[string]int
	Closed bool
}

func (s *Source) called(method string) {
	if s.Calls == nil {
		s.Calls = make(map[string]int)
	}
	s.Calls[method]++
}

func (s *Source) VersionGroupNames(ctx context.Context) ([]string, error) {
	s.called("VersionGroupNames")

	vgs := lo.Values(s.VersionGroups)
	slices.SortFunc(vgs, func(a, b model.VersionGroup) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return lo.Map(vgs, func(vg model.VersionGroup, _ int) string {
		return vg.Name
	}), nil
}

func (s *Source) VersionGroup(ctx context.Context, name string) (*model.VersionGroup, error) {
	s.called("VersionGroup")
	vg, ok := s.VersionGroups[name]
	if !ok {
		return nil, fmt.Errorf("version group %q: %w", name, model.ErrNotFound)
	}

	return &vg, nil
}

func (s *Source) Generation(ctx context.Context, id int) (*model.Generation, error) {
	s.called("Generation")
	gen, ok := s.Generations[id]
	if !ok {
		return nil, fmt.Errorf("generation %d: %w", id, model.ErrNotFound)
	}

	return &gen, nil
}

func (s *Source) Pokemon(ctx context.Context, name string) (*model.Pokemon, error) {
	s.called("Pokemon")
	pokemon, ok := s.Pokedex[name]
	if !ok {
		return nil, fmt.Errorf("pokemon %q: %w", name, model.ErrNotFound)
	}

	return &pokemon, nil
}

func (s *Source) Move(ctx context.Context, name string) (*model.Move, error) {
	s.called("Move")
	move, ok := s.Moves[name]
	if !ok {
		return nil, fmt.Errorf("move %q: %w", name, model.ErrNotFound)
	}

	return &move, nil
}

func (s *Source) Type(ctx context.Context, name string) (*model.Type, error) {
	s.called("Type")
	typ, ok := s.Types[name]
	if !ok {
		return nil, fmt.Errorf("type %q: %w", name, model.ErrNotFound)
	}

	return &typ, nil
}

func (s *Source) Close() error {
	s.Closed = true
	return nil
}
