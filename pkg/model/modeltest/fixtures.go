package modeltest

import "github.com/notjagan/moveset/pkg/model"

// New returns a Source holding generations 1 through 6, the current type chart with a
// few historical tables, and a handful of pokemon.
func New() *Source {
	return &Source{
		VersionGroups: versionGroups(),
		Generations:   generations(),
		Pokedex:       pokedex(),
		Moves:         moves(),
		Types:         types(),
	}
}

func versionGroups() map[string]model.VersionGroup {
	vgs := []model.VersionGroup{
		{ID: 1, Name: "red-blue", GenerationName: "generation-i"},
		{ID: 2, Name: "yellow", GenerationName: "generation-i"},
		{ID: 3, Name: "gold-silver", GenerationName: "generation-ii"},
		{ID: 5, Name: "ruby-sapphire", GenerationName: "generation-iii"},
		{ID: 15, Name: "x-y", GenerationName: "generation-vi"},
	}

	m := make(map[string]model.VersionGroup, len(vgs))
	for _, vg := range vgs {
		m[vg.Name] = vg
	}

	return m
}

func generations() map[int]model.Generation {
	return map[int]model.Generation{
		1: {ID: 1, Name: "generation-i", Types: []model.TypeRef{
			{ID: 1, Name: "normal"},
			{ID: 2, Name: "fighting"},
			{ID: 3, Name: "flying"},
			{ID: 4, Name: "poison"},
			{ID: 5, Name: "ground"},
			{ID: 6, Name: "rock"},
			{ID: 7, Name: "bug"},
			{ID: 8, Name: "ghost"},
			{ID: 10, Name: "fire"},
			{ID: 11, Name: "water"},
			{ID: 12, Name: "grass"},
			{ID: 13, Name: "electric"},
			{ID: 14, Name: "psychic"},
			{ID: 15, Name: "ice"},
			{ID: 16, Name: "dragon"},
		}},
		2: {ID: 2, Name: "generation-ii", Types: []model.TypeRef{
			{ID: 9, Name: "steel"},
			{ID: 17, Name: "dark"},
			{ID: 10001, Name: "unknown"},
		}},
		3: {ID: 3, Name: "generation-iii", Types: []model.TypeRef{
			{ID: 10002, Name: "shadow"},
		}},
		4: {ID: 4, Name: "generation-iv"},
		5: {ID: 5, Name: "generation-v"},
		6: {ID: 6, Name: "generation-vi", Types: []model.TypeRef{
			{ID: 18, Name: "fairy"},
		}},
	}
}

func types() map[string]model.Type {
	ts := []model.Type{
		{ID: 1, Name: "normal"},
		{ID: 2, Name: "fighting", DoubleDamageTo: []string{"normal", "rock", "steel", "ice", "dark"}},
		{ID: 3, Name: "flying", DoubleDamageTo: []string{"fighting", "bug", "grass"}},
		{ID: 4, Name: "poison", DoubleDamageTo: []string{"grass", "fairy"}, Past: []model.PastRelations{
			{Generation: 1, DoubleDamageTo: []string{"grass", "bug"}},
			{Generation: 5, DoubleDamageTo: []string{"grass"}},
		}},
		{ID: 5, Name: "ground", DoubleDamageTo: []string{"poison", "rock", "steel", "fire", "electric"}},
		{ID: 6, Name: "rock", DoubleDamageTo: []string{"flying", "bug", "fire", "ice"}},
		{ID: 7, Name: "bug", DoubleDamageTo: []string{"grass", "psychic", "dark"}, Past: []model.PastRelations{
			{Generation: 1, DoubleDamageTo: []string{"grass", "poison", "psychic"}},
		}},
		{ID: 8, Name: "ghost", DoubleDamageTo: []string{"ghost", "psychic"}, Past: []model.PastRelations{
			{Generation: 1, DoubleDamageTo: []string{"ghost"}},
			{Generation: 5, DoubleDamageTo: []string{"ghost", "psychic"}},
		}},
		{ID: 9, Name: "steel", DoubleDamageTo: []string{"rock", "ice", "fairy"}},
		{ID: 10, Name: "fire", DoubleDamageTo: []string{"bug", "steel", "grass", "ice"}},
		{ID: 11, Name: "water", DoubleDamageTo: []string{"ground", "rock", "fire"}},
		{ID: 12, Name: "grass", DoubleDamageTo: []string{"ground", "rock", "water"}},
		{ID: 13, Name: "electric", DoubleDamageTo: []string{"flying", "water"}},
		{ID: 14, Name: "psychic", DoubleDamageTo: []string{"fighting", "poison"}},
		{ID: 15, Name: "ice", DoubleDamageTo: []string{"flying", "ground", "grass", "dragon"}},
		{ID: 16, Name: "dragon", DoubleDamageTo: []string{"dragon"}},
		{ID: 17, Name: "dark", DoubleDamageTo: []string{"ghost", "psychic"}, Past: []model.PastRelations{
			{Generation: 5, DoubleDamageTo: []string{"ghost", "psychic"}},
		}},
		{ID: 18, Name: "fairy", DoubleDamageTo: []string{"fighting", "dragon", "dark"}},
	}

	m := make(map[string]model.Type, len(ts))
	for _, typ := range ts {
		m[typ.Name] = typ
	}

	return m
}

func power(n int) *int {
	return &n
}

func moves() map[string]model.Move {
	ms := []model.Move{
		{ID: 5, Name: "mega-punch", Power: power(80), Type: "normal"},
		{ID: 8, Name: "ice-punch", Power: power(75), Type: "ice"},
		{ID: 9, Name: "thunder-punch", Power: power(75), Type: "electric"},
		{ID: 33, Name: "tackle", Power: power(40), Type: "normal"},
		{ID: 34, Name: "body-slam", Power: power(85), Type: "normal"},
		{ID: 45, Name: "growl", Type: "normal"},
		{ID: 57, Name: "surf", Power: power(90), Type: "water"},
		{ID: 58, Name: "ice-beam", Power: power(90), Type: "ice"},
		{ID: 69, Name: "seismic-toss", Type: "fighting"},
		{ID: 84, Name: "thunder-shock", Power: power(40), Type: "electric"},
		{ID: 85, Name: "thunderbolt", Power: power(90), Type: "electric"},
		{ID: 86, Name: "thunder-wave", Power: power(0), Type: "electric"},
		{ID: 91, Name: "dig", Power: power(80), Type: "ground"},
		{ID: 94, Name: "psychic", Power: power(90), Type: "psychic"},
		{ID: 98, Name: "quick-attack", Power: power(40), Type: "normal"},
		{ID: 126, Name: "fire-blast", Power: power(110), Type: "fire"},
		{ID: 144, Name: "transform", Type: "normal"},
		{ID: 166, Name: "sketch", Type: "normal"},
		{ID: 247, Name: "shadow-ball", Power: power(80), Type: "ghost"},
	}

	m := make(map[string]model.Move, len(ms))
	for _, move := range ms {
		m[move.Name] = move
	}

	return m
}

func learn(versionGroup string, method model.LearnMethodName, level int) model.LearnDetail {
	return model.LearnDetail{VersionGroup: versionGroup, Method: method, Level: level}
}

func pokedex() map[string]model.Pokemon {
	ps := []model.Pokemon{
		{ID: 25, Name: "pikachu", Moves: []model.PokemonMove{
			{Name: "mega-punch", Details: []model.LearnDetail{
				learn("red-blue", model.Machine, 0),
				learn("yellow", model.Machine, 0),
			}},
			{Name: "body-slam", Details: []model.LearnDetail{
				learn("red-blue", model.Machine, 0),
			}},
			{Name: "growl", Details: []model.LearnDetail{
				learn("red-blue", model.LevelUp, 1),
				learn("yellow", model.LevelUp, 1),
			}},
			{Name: "surf", Details: []model.LearnDetail{
				learn("yellow", model.StadiumSurfingPikachu, 0),
				learn("x-y", model.Machine, 0),
			}},
			{Name: "thunder-shock", Details: []model.LearnDetail{
				learn("red-blue", model.LevelUp, 1),
				learn("yellow", model.LevelUp, 1),
			}},
			{Name: "thunderbolt", Details: []model.LearnDetail{
				learn("red-blue", model.Machine, 0),
				learn("x-y", model.Machine, 0),
			}},
			{Name: "thunder-wave", Details: []model.LearnDetail{
				learn("red-blue", model.LevelUp, 9),
				learn("yellow", model.LevelUp, 9),
			}},
			{Name: "quick-attack", Details: []model.LearnDetail{
				learn("red-blue", model.LevelUp, 16),
				learn("yellow", model.LevelUp, 16),
			}},
			{Name: "seismic-toss", Details: []model.LearnDetail{
				learn("red-blue", model.Machine, 0),
			}},
		}},
		{ID: 132, Name: "ditto", Moves: []model.PokemonMove{
			{Name: "transform", Details: []model.LearnDetail{
				learn("red-blue", model.LevelUp, 1),
				learn("x-y", model.LevelUp, 1),
			}},
		}},
		{ID: 151, Name: "mew", Moves: []model.PokemonMove{
			{Name: "mega-punch", Details: []model.LearnDetail{learn("red-blue", model.Machine, 0)}},
			{Name: "ice-punch", Details: []model.LearnDetail{learn("gold-silver", model.Tutor, 0)}},
			{Name: "thunder-punch", Details: []model.LearnDetail{learn("gold-silver", model.Tutor, 0)}},
			{Name: "ice-beam", Details: []model.LearnDetail{learn("red-blue", model.Machine, 0)}},
			{Name: "thunderbolt", Details: []model.LearnDetail{learn("red-blue", model.Machine, 0)}},
			{Name: "dig", Details: []model.LearnDetail{learn("red-blue", model.Machine, 0)}},
			{Name: "psychic", Details: []model.LearnDetail{
				learn("red-blue", model.Machine, 0),
				learn("red-blue", model.LevelUp, 50),
			}},
			{Name: "surf", Details: []model.LearnDetail{learn("red-blue", model.Machine, 0)}},
			{Name: "fire-blast", Details: []model.LearnDetail{learn("red-blue", model.Machine, 0)}},
			{Name: "shadow-ball", Details: []model.LearnDetail{learn("gold-silver", model.Machine, 0)}},
		}},
		{ID: 235, Name: "smeargle", Moves: []model.PokemonMove{
			{Name: "sketch", Details: []model.LearnDetail{
				learn("gold-silver", model.LevelUp, 1),
				learn("x-y", model.LevelUp, 1),
			}},
		}},
	}

	m := make(map[string]model.Pokemon, len(ps))
	for _, pokemon := range ps {
		m[pokemon.Name] = pokemon
	}

	return m
}
