package coverage

import "github.com/notjagan/moveset/pkg/model"

// SuperEffective resolves the set of types typ hits for double damage in gen.
func SuperEffective(typ *model.Type, gen int) Set {
	// normal moves are never super effective
	if typ.IsNormal() {
		return Set{}
	}

	sel := SelectRelations(gen, typ.PastGenerations())
	if i, ok := sel.Historical(); ok {
		return NewSet(typ.Past[i].DoubleDamageTo...)
	}

	return NewSet(typ.DoubleDamageTo...)
}

// Chart holds the resolved super-effective sets of a fixed group of types for one
// generation.
type Chart struct {
	gen       int
	relations map[string]Set
}

func NewChart(gen int, types []*model.Type) *Chart {
	chart := &Chart{
		gen:       gen,
		relations: make(map[string]Set, len(types)),
	}

	for _, typ := range types {
		if _, ok := chart.relations[typ.Name]; ok {
			continue
		}
		chart.relations[typ.Name] = SuperEffective(typ, gen)
		internalLogger.V(1).Info("resolved type relations",
			"type", typ.Name,
			"generation", gen,
			"selection", SelectRelations(gen, typ.PastGenerations()).String(),
		)
	}

	return chart
}

func (c *Chart) Generation() int {
	return c.gen
}

func (c *Chart) Has(name string) bool {
	_, ok := c.relations[name]
	return ok
}

// SuperEffective returns a copy of the resolved set for name. Types missing from the
// chart hit nothing.
func (c *Chart) SuperEffective(name string) Set {
	return c.relations[name].Clone()
}
