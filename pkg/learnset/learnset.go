package learnset

import (
	"context"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"github.com/notjagan/moveset/pkg/model"
	"github.com/samber/lo"
)

var internalLogger = logr.Discard()

func SetLogger(logger logr.Logger) {
	internalLogger = logger.WithName("learnset")
}

type Entry struct {
	Name   string
	Level  *int
	Method model.LearnMethodName
}

// Learnset maps a type name to the damaging moves of that type a pokemon can learn.
type Learnset map[string][]Entry

func (ls Learnset) Types() []string {
	types := lo.Keys(ls)
	slices.Sort(types)

	return types
}

func (ls Learnset) Empty() bool {
	return len(ls) == 0
}

// Classify collects the damaging moves pokemon can learn in the model's version group.
// A move learned in several ways gets one entry per way.
func Classify(ctx context.Context, mdl *model.Model, pokemon *model.Pokemon) (Learnset, error) {
	if mdl.Version == nil {
		return nil, fmt.Errorf("could not classify moves for %q: %w", pokemon.Name, model.ErrUnsetVersion)
	}
	versionGroup := mdl.Version.Name

	ls := make(Learnset)
	for _, pm := range pokemon.MovesIn(versionGroup) {
		move, err := mdl.MoveByName(ctx, pm.Name)
		if err != nil {
			return nil, fmt.Errorf("error while getting move %q for pokemon %q: %w", pm.Name, pokemon.Name, err)
		}
		if !move.Damaging() {
			internalLogger.V(1).Info("skipping non-damaging move", "move", move.Name)
			continue
		}

		for _, d := range pm.DetailsIn(versionGroup) {
			ls[move.Type] = append(ls[move.Type], Entry{
				Name:   move.Name,
				Level:  d.LevelLearned(),
				Method: d.Method,
			})
		}
	}

	internalLogger.V(1).Info("classified moves",
		"pokemon", pokemon.Name,
		"version_group", versionGroup,
		"types", len(ls),
	)

	return ls, nil
}
