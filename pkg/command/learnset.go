package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/notjagan/moveset/pkg/learnset"
	"github.com/notjagan/moveset/pkg/model"
)

func lookupPokemon(ctx context.Context, mdl *model.Model, name string) (*model.Pokemon, error) {
	pokemon, err := mdl.PokemonByName(ctx, name)
	if errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownPokemon, name, err)
	} else if err != nil {
		return nil, fmt.Errorf("could not get pokemon %q: %w", name, err)
	}

	return pokemon, nil
}

// moveTypes is every type pokemon can attack with. A Sketch user can reach every available
// type, so it has no learnset.
func moveTypes(ctx context.Context, mdl *model.Model, pokemon *model.Pokemon, available []string) ([]string, learnset.Learnset, error) {
	if pokemon.SketchesEverything() {
		return available, nil, nil
	}

	ls, err := learnset.Classify(ctx, mdl, pokemon)
	if err != nil {
		return nil, nil, fmt.Errorf("could not classify moves for %q: %w", pokemon.Name, err)
	}

	return ls.Types(), ls, nil
}
