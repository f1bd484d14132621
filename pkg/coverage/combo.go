package coverage

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// ComboSize is the number of moves a pokemon can know at once.
const ComboSize = 4

// Combo is a sorted group of at most ComboSize distinct type names.
type Combo []string

func (c Combo) Key() string {
	return strings.Join(c, ",")
}

func (c Combo) Set() Set {
	return NewSet(c...)
}

// Combos returns every ComboSize-element subset of types. With ComboSize or fewer
// distinct types there is a single combo holding all of them.
func Combos(types []string) []Combo {
	names := lo.Uniq(types)
	slices.Sort(names)

	n := len(names)
	if n <= ComboSize {
		return []Combo{Combo(names)}
	}

	combos := make([]Combo, 0, binomial(n, ComboSize))
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					combos = append(combos, Combo{names[a], names[b], names[c], names[d]})
				}
			}
		}
	}

	return combos
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}

	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}

	return result
}
