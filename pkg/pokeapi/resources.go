package pokeapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/notjagan/moveset/pkg/model"
)

type namedAPIResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var ErrResourceURL = errors.New("malformed resource url")

// ID reads the numeric id at the end of a resource url, e.g.
// https://pokeapi.co/api/v2/type/10002/ is 10002.
func (r namedAPIResource) ID() (int, error) {
	trimmed := strings.TrimSuffix(r.URL, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return 0, fmt.Errorf("%q: %w", r.URL, ErrResourceURL)
	}

	id, err := strconv.Atoi(trimmed[i+1:])
	if err != nil {
		return 0, fmt.Errorf("%q: %w", r.URL, ErrResourceURL)
	}

	return id, nil
}

type namedAPIResourceList struct {
	Count   int                `json:"count"`
	Next    *string            `json:"next"`
	Results []namedAPIResource `json:"results"`
}

type versionGroupResponse struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Generation namedAPIResource `json:"generation"`
}

func (r versionGroupResponse) toModel() *model.VersionGroup {
	return &model.VersionGroup{
		ID:             r.ID,
		Name:           r.Name,
		GenerationName: r.Generation.Name,
	}
}

type generationResponse struct {
	ID    int                `json:"id"`
	Name  string             `json:"name"`
	Types []namedAPIResource `json:"types"`
}

func (r generationResponse) toModel() (*model.Generation, error) {
	gen := &model.Generation{
		ID:    r.ID,
		Name:  r.Name,
		Types: make([]model.TypeRef, len(r.Types)),
	}

	for i, t := range r.Types {
		id, err := t.ID()
		if err != nil {
			return nil, fmt.Errorf("could not read id of type %q: %w", t.Name, err)
		}
		gen.Types[i] = model.TypeRef{ID: id, Name: t.Name}
	}

	return gen, nil
}

type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Moves []struct {
		Move                namedAPIResource `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int `json:"level_learned_at"`
			MoveLearnMethod struct {
				Name model.LearnMethodName `json:"name"`
			} `json:"move_learn_method"`
			VersionGroup namedAPIResource `json:"version_group"`
		} `json:"version_group_details"`
	} `json:"moves"`
}

func (r pokemonResponse) toModel() *model.Pokemon {
	pokemon := &model.Pokemon{
		ID:    r.ID,
		Name:  r.Name,
		Moves: make([]model.PokemonMove, len(r.Moves)),
	}

	for i, m := range r.Moves {
		details := make([]model.LearnDetail, len(m.VersionGroupDetails))
		for j, d := range m.VersionGroupDetails {
			details[j] = model.LearnDetail{
				VersionGroup: d.VersionGroup.Name,
				Method:       d.MoveLearnMethod.Name,
				Level:        d.LevelLearnedAt,
			}
		}
		pokemon.Moves[i] = model.PokemonMove{Name: m.Move.Name, Details: details}
	}

	return pokemon
}

type moveResponse struct {
	ID    int              `json:"id"`
	Name  string           `json:"name"`
	Power *int             `json:"power"`
	Type  namedAPIResource `json:"type"`
}

func (r moveResponse) toModel() *model.Move {
	return &model.Move{
		ID:    r.ID,
		Name:  r.Name,
		Power: r.Power,
		Type:  r.Type.Name,
	}
}

type damageRelations struct {
	DoubleDamageTo []namedAPIResource `json:"double_damage_to"`
}

func (dr damageRelations) doubleDamageTo() []string {
	names := make([]string, len(dr.DoubleDamageTo))
	for i, t := range dr.DoubleDamageTo {
		names[i] = t.Name
	}

	return names
}

type typeResponse struct {
	ID                  int             `json:"id"`
	Name                string          `json:"name"`
	DamageRelations     damageRelations `json:"damage_relations"`
	PastDamageRelations []struct {
		Generation      namedAPIResource `json:"generation"`
		DamageRelations damageRelations  `json:"damage_relations"`
	} `json:"past_damage_relations"`
}

func (r typeResponse) toModel() (*model.Type, error) {
	typ := &model.Type{
		ID:             r.ID,
		Name:           r.Name,
		DoubleDamageTo: r.DamageRelations.doubleDamageTo(),
		Past:           make([]model.PastRelations, len(r.PastDamageRelations)),
	}

	for i, past := range r.PastDamageRelations {
		gen, err := model.ParseGenerationName(past.Generation.Name)
		if err != nil {
			return nil, fmt.Errorf("could not read past relations of type %q: %w", r.Name, err)
		}
		typ.Past[i] = model.PastRelations{
			Generation:     gen,
			DoubleDamageTo: past.DamageRelations.doubleDamageTo(),
		}
	}

	return typ, nil
}
