package model

type TypeRef struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

func (ref TypeRef) IsSpecial() bool {
	return ref.ID >= SpecialTypeIDCutoff
}

// PastRelations is a type's super-effective list as it stood up to and including
// Generation.
type PastRelations struct {
	Generation     int
	DoubleDamageTo []string
}

type Type struct {
	ID             int
	Name           string
	DoubleDamageTo []string

	// ordered by Generation, oldest first
	Past []PastRelations
}

func (typ *Type) IsNormal() bool {
	return typ.Name == "normal"
}

func (typ *Type) PastGenerations() []int {
	gens := make([]int, len(typ.Past))
	for i, past := range typ.Past {
		gens[i] = past.Generation
	}

	return gens
}
