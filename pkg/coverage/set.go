package coverage

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Set is a set of type names.
type Set map[string]struct{}

func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Sorted() []string {
	names := lo.Keys(s)
	slices.Sort(names)

	return names
}

func (s Set) Clone() Set {
	if s == nil {
		return Set{}
	}

	return maps.Clone(s)
}

func (s Set) Union(other Set) Set {
	out := s.Clone()
	for name := range other {
		out[name] = struct{}{}
	}

	return out
}

func (s Set) Intersect(other Set) Set {
	out := Set{}
	for name := range s {
		if other.Has(name) {
			out[name] = struct{}{}
		}
	}

	return out
}

func (s Set) Difference(other Set) Set {
	out := Set{}
	for name := range s {
		if !other.Has(name) {
			out[name] = struct{}{}
		}
	}

	return out
}

func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && len(s.Difference(other)) == 0
}
