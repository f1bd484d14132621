package learnset_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/notjagan/moveset/pkg/learnset"
	"github.com/notjagan/moveset/pkg/model"
	"github.com/notjagan/moveset/pkg/model/modeltest"
)

func classify(t *testing.T, src *modeltest.Source, version string, name string) learnset.Learnset {
	t.Helper()
	ctx := context.Background()

	mdl := model.New(src)
	if err := mdl.SetVersionByName(ctx, version); err != nil {
		t.Fatalf("could not set version %q: %v", version, err)
	}
	pokemon, err := mdl.PokemonByName(ctx, name)
	if err != nil {
		t.Fatalf("could not get pokemon %q: %v", name, err)
	}

	ls, err := learnset.Classify(ctx, mdl, pokemon)
	if err != nil {
		t.Fatalf("could not classify moves for %q: %v", name, err)
	}

	return ls
}

func TestClassifyPikachu(t *testing.T) {
	ls := classify(t, modeltest.New(), "red-blue", "pikachu")

	if got, want := ls.Types(), []string{"electric", "normal"}; !slices.Equal(got, want) {
		t.Fatalf("expected types %v, got %v", want, got)
	}

	electric := ls["electric"]
	if len(electric) != 2 {
		t.Fatalf("expected thunder-shock and thunderbolt, got %v", electric)
	}
	for _, e := range electric {
		if e.Name == "thunder-wave" {
			t.Fatalf("thunder-wave does no damage and should be skipped")
		}
		switch e.Method {
		case model.LevelUp:
			if e.Level == nil || *e.Level != 1 {
				t.Errorf("thunder-shock should be learned at level 1, got %v", e.Level)
			}
		case model.Machine:
			if e.Level != nil {
				t.Errorf("machine moves have no level, got %d", *e.Level)
			}
		default:
			t.Errorf("unexpected learn method %v", e.Method)
		}
	}

	if _, ok := ls["water"]; ok {
		t.Errorf("pikachu cannot learn surf in red-blue")
	}
	if _, ok := ls["fighting"]; ok {
		t.Errorf("seismic-toss has no power and should be skipped")
	}
}

func TestClassifyVersionSpecific(t *testing.T) {
	ls := classify(t, modeltest.New(), "yellow", "pikachu")

	water := ls["water"]
	if len(water) != 1 || water[0].Method != model.StadiumSurfingPikachu {
		t.Fatalf("expected surf via stadium-surfing-pikachu in yellow, got %v", water)
	}
}

func TestClassifyMultipleMethods(t *testing.T) {
	ls := classify(t, modeltest.New(), "red-blue", "mew")

	psychic := ls["psychic"]
	if len(psychic) != 2 {
		t.Fatalf("expected psychic by machine and by level up, got %v", psychic)
	}
	if len(ls.Types()) != 7 {
		t.Fatalf("expected 7 damaging types for mew in red-blue, got %v", ls.Types())
	}
}

func TestClassifyNoDamagingMoves(t *testing.T) {
	src := modeltest.New()
	ls := classify(t, src, "red-blue", "ditto")

	if !ls.Empty() {
		t.Fatalf("ditto should have no damaging moves, got %v", ls)
	}
	if src.Calls["Move"] != 1 {
		t.Fatalf("expected a single move lookup, got %d", src.Calls["Move"])
	}
}

func TestClassifySkipsOtherVersions(t *testing.T) {
	src := modeltest.New()
	classify(t, src, "x-y", "pikachu")

	// only surf and thunderbolt have x-y entries
	if src.Calls["Move"] != 2 {
		t.Fatalf("expected 2 move lookups, got %d", src.Calls["Move"])
	}
}

func TestClassifyMissingMove(t *testing.T) {
	src := modeltest.New()
	delete(src.Moves, "thunderbolt")

	mdl := model.New(src)
	ctx := context.Background()
	if err := mdl.SetVersionByName(ctx, "x-y"); err != nil {
		t.Fatalf("could not set version: %v", err)
	}
	pokemon, err := mdl.PokemonByName(ctx, "pikachu")
	if err != nil {
		t.Fatalf("could not get pokemon: %v", err)
	}

	if _, err := learnset.Classify(ctx, mdl, pokemon); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
