package model_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/notjagan/moveset/pkg/model"
	"github.com/notjagan/moveset/pkg/model/modeltest"
)

func TestParseGenerationName(t *testing.T) {
	cases := map[string]int{
		"generation-i":    1,
		"generation-iii":  3,
		"generation-v":    5,
		"generation-viii": 8,
		"generation-ix":   9,
		"generation-x":    10,
	}
	for name, want := range cases {
		got, err := model.ParseGenerationName(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if got != want {
			t.Errorf("%q: expected %d, got %d", name, want, got)
		}
	}

	for _, name := range []string{"gen-i", "generation-", "generation-iiii", "generation-q", "generation-vx"} {
		_, err := model.ParseGenerationName(name)
		if !errors.Is(err, model.ErrGenerationName) {
			t.Errorf("%q: expected ErrGenerationName, got %v", name, err)
		}
	}
}

func TestSetVersionByName(t *testing.T) {
	ctx := context.Background()
	mdl := model.New(modeltest.New())

	for name, want := range map[string]int{"red-blue": 1, "gold-silver": 2, "ruby-sapphire": 3, "x-y": 6} {
		if err := mdl.SetVersionByName(ctx, name); err != nil {
			t.Fatalf("could not set version %q: %v", name, err)
		}

		gen, err := mdl.Generation(ctx)
		if err != nil {
			t.Fatalf("could not resolve generation for %q: %v", name, err)
		}
		if gen != want {
			t.Errorf("%q: expected generation %d, got %d", name, want, gen)
		}
	}
}

func TestSetVersionByNameInvalid(t *testing.T) {
	mdl := model.New(modeltest.New())

	err := mdl.SetVersionByName(context.Background(), "purple")
	if !errors.Is(err, model.ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}
	if mdl.Version != nil {
		t.Fatalf("version should stay unset after a failed lookup, got %q", mdl.Version.Name)
	}
}

func TestGenerationUnsetVersion(t *testing.T) {
	mdl := model.New(modeltest.New())

	if _, err := mdl.Generation(context.Background()); !errors.Is(err, model.ErrUnsetVersion) {
		t.Fatalf("expected ErrUnsetVersion, got %v", err)
	}
}

var gen1Types = []string{
	"bug", "dragon", "electric", "fighting", "fire", "flying", "ghost", "grass",
	"ground", "ice", "normal", "poison", "psychic", "rock", "water",
}

func TestAvailableTypes(t *testing.T) {
	ctx := context.Background()
	mdl := model.New(modeltest.New())

	gen1, err := mdl.AvailableTypes(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(gen1, gen1Types) {
		t.Fatalf("generation 1: expected %v, got %v", gen1Types, gen1)
	}

	gen2Types := append(slices.Clone(gen1Types), "dark", "steel")
	slices.Sort(gen2Types)
	for _, gen := range []int{2, 3} {
		got, err := mdl.AvailableTypes(ctx, gen)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// unknown and shadow are both special and must be left out
		if !slices.Equal(got, gen2Types) {
			t.Errorf("generation %d: expected %v, got %v", gen, gen2Types, got)
		}
	}

	gen6, err := mdl.AvailableTypes(ctx, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gen6) != 18 || !slices.Contains(gen6, "fairy") {
		t.Fatalf("generation 6: expected the 18 standard types, got %v", gen6)
	}
}

func TestAvailableTypesMonotonic(t *testing.T) {
	ctx := context.Background()
	mdl := model.New(modeltest.New())

	prev, err := mdl.AvailableTypes(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for gen := 2; gen <= 6; gen++ {
		next, err := mdl.AvailableTypes(ctx, gen)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, typ := range prev {
			if !slices.Contains(next, typ) {
				t.Fatalf("type %q available in generation %d but not %d", typ, gen-1, gen)
			}
		}
		prev = next
	}
}

func TestPokemonByName(t *testing.T) {
	ctx := context.Background()
	mdl := model.New(modeltest.New())

	pikachu, err := mdl.PokemonByName(ctx, "pikachu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pikachu.SketchesEverything() {
		t.Errorf("pikachu should not sketch everything")
	}

	if _, err := mdl.PokemonByName(ctx, "missingno"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPokemonByNameOutsideVersion(t *testing.T) {
	ctx := context.Background()
	mdl := model.New(modeltest.New())
	if err := mdl.SetVersionByName(ctx, "red-blue"); err != nil {
		t.Fatalf("could not set version: %v", err)
	}

	// smeargle has nothing to learn in red-blue, which is not a lookup failure
	smeargle, err := mdl.PokemonByName(ctx, "smeargle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !smeargle.SketchesEverything() {
		t.Errorf("smeargle should sketch everything")
	}
	if moves := smeargle.MovesIn("red-blue"); len(moves) != 0 {
		t.Errorf("expected no red-blue moves, got %v", moves)
	}
}

func TestLearnableIn(t *testing.T) {
	pikachu := modeltest.New().Pokedex["pikachu"]

	surf := pikachu.Moves[slices.IndexFunc(pikachu.Moves, func(pm model.PokemonMove) bool {
		return pm.Name == "surf"
	})]
	if surf.LearnableIn("red-blue") {
		t.Errorf("pikachu cannot learn surf in red-blue")
	}
	if !surf.LearnableIn("yellow") {
		t.Errorf("pikachu can learn surf in yellow")
	}

	xy := pikachu.MovesIn("x-y")
	if len(xy) != 2 || xy[0].Name != "surf" || xy[1].Name != "thunderbolt" {
		t.Errorf("expected surf and thunderbolt in x-y, got %v", xy)
	}
	if moves := pikachu.MovesIn("gold-silver"); len(moves) != 0 {
		t.Errorf("fixture pikachu has no gold-silver moves, got %v", moves)
	}
}

func TestVersionGroupAvailableTypes(t *testing.T) {
	ctx := context.Background()
	mdl := model.New(modeltest.New())

	if err := mdl.SetVersionByName(ctx, "yellow"); err != nil {
		t.Fatalf("could not set version: %v", err)
	}

	types, err := mdl.Version.AvailableTypes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(types, gen1Types) {
		t.Fatalf("expected %v, got %v", gen1Types, types)
	}
}

func TestLevelLearned(t *testing.T) {
	lvl := model.LearnDetail{Method: model.LevelUp, Level: 16}.LevelLearned()
	if lvl == nil || *lvl != 16 {
		t.Fatalf("expected level 16, got %v", lvl)
	}

	if lvl := (model.LearnDetail{Method: model.Machine}).LevelLearned(); lvl != nil {
		t.Fatalf("expected no level for machine moves, got %d", *lvl)
	}
}

func TestLearnMethodName(t *testing.T) {
	method, err := model.LearnMethodNameString("stadium-surfing-pikachu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != model.StadiumSurfingPikachu {
		t.Fatalf("expected StadiumSurfingPikachu, got %v", method)
	}
	if model.LevelUp.String() != "level-up" {
		t.Fatalf("expected level-up, got %q", model.LevelUp.String())
	}
	if _, err := model.LearnMethodNameString("osmosis"); err == nil {
		t.Fatalf("expected error for unknown learn method")
	}
}
