package coverage

import "fmt"

// Selection says which super-effective table of a type applies to a generation: one of
// its historical tables, or the current one. The zero value selects the current table.
type Selection struct {
	index      int
	historical bool
}

func UseCurrent() Selection {
	return Selection{}
}

func UseHistorical(index int) Selection {
	return Selection{index: index, historical: true}
}

func (s Selection) Current() bool {
	return !s.historical
}

// Historical returns the index of the historical table to use, if any.
func (s Selection) Historical() (int, bool) {
	return s.index, s.historical
}

func (s Selection) String() string {
	if s.historical {
		return fmt.Sprintf("historical(%d)", s.index)
	}

	return "current"
}

// SelectRelations picks the table in effect for gen given the ascending generations at
// which a type's historical tables stopped applying. The first threshold not below gen
// wins; past the last threshold the current table applies.
func SelectRelations(gen int, thresholds []int) Selection {
	if len(thresholds) == 0 {
		return UseCurrent()
	}

	i := 0
	for gen > thresholds[i] {
		if i == len(thresholds)-1 {
			return UseCurrent()
		}
		i++
	}

	return UseHistorical(i)
}
