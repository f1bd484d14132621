package coverage

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// Scores groups combos by how many available types they hit super effectively.
type Scores struct {
	bySize  map[int][]Combo
	covered map[string]Set
}

// Score computes each combo's coverage: the union of its members' super-effective sets,
// restricted to the available types.
func Score(combos []Combo, chart *Chart, available Set) Scores {
	scores := Scores{
		bySize:  make(map[int][]Combo),
		covered: make(map[string]Set, len(combos)),
	}

	for _, combo := range combos {
		covered := Set{}
		for _, name := range combo {
			if !chart.Has(name) {
				internalLogger.Info("type missing from chart, treating it as hitting nothing", "type", name)
			}
			covered = covered.Union(chart.SuperEffective(name))
		}
		covered = covered.Intersect(available)

		scores.covered[combo.Key()] = covered
		scores.bySize[covered.Len()] = append(scores.bySize[covered.Len()], combo)
	}

	return scores
}

// Sizes returns every observed coverage size, largest first.
func (s Scores) Sizes() []int {
	sizes := lo.Keys(s.bySize)
	slices.SortFunc(sizes, func(a, b int) int {
		return cmp.Compare(b, a)
	})

	return sizes
}

func (s Scores) Combos(size int) []Combo {
	return s.bySize[size]
}

func (s Scores) Covered(combo Combo) Set {
	return s.covered[combo.Key()].Clone()
}

type Option struct {
	Types      Combo
	Covered    Set
	NotCovered Set
}

// Result holds the best options found. Size is the coverage every option shares.
type Result struct {
	Generation int
	Size       int
	Options    []Option
	Evaluated  int
}

// Optimize returns every combo of types whose coverage of the available types is maximal.
// Ties are all kept, ordered by their member names.
func Optimize(types []string, chart *Chart, available Set) Result {
	combos := Combos(types)
	scores := Score(combos, chart, available)

	result := Result{
		Generation: chart.Generation(),
		Evaluated:  len(combos),
	}

	sizes := scores.Sizes()
	if len(sizes) == 0 {
		return result
	}
	result.Size = sizes[0]

	best := slices.Clone(scores.Combos(result.Size))
	slices.SortFunc(best, func(a, b Combo) int {
		return cmp.Compare(a.Key(), b.Key())
	})

	result.Options = lo.Map(best, func(combo Combo, _ int) Option {
		covered := scores.Covered(combo)
		return Option{
			Types:      combo,
			Covered:    covered,
			NotCovered: available.Difference(covered),
		}
	})

	internalLogger.V(1).Info("selected best combos",
		"evaluated", result.Evaluated,
		"coverage", result.Size,
		"options", len(result.Options),
	)

	return result
}
