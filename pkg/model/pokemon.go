package model

import "slices"

// smeargle can Sketch nearly any move, so its learnset says nothing about its coverage.
const smeargle = "smeargle"

type Pokemon struct {
	ID    int
	Name  string
	Moves []PokemonMove
}

type PokemonMove struct {
	Name    string
	Details []LearnDetail
}

type LearnDetail struct {
	VersionGroup string
	Method       LearnMethodName
	Level        int
}

// LevelLearned is nil unless the move is learned by leveling up.
func (d LearnDetail) LevelLearned() *int {
	if d.Method != LevelUp {
		return nil
	}
	level := d.Level

	return &level
}

func (pm PokemonMove) DetailsIn(versionGroup string) []LearnDetail {
	var details []LearnDetail
	for _, d := range pm.Details {
		if d.VersionGroup == versionGroup {
			details = append(details, d)
		}
	}

	return details
}

func (pm PokemonMove) LearnableIn(versionGroup string) bool {
	return slices.ContainsFunc(pm.Details, func(d LearnDetail) bool {
		return d.VersionGroup == versionGroup
	})
}

func (pokemon *Pokemon) MovesIn(versionGroup string) []PokemonMove {
	var moves []PokemonMove
	for _, pm := range pokemon.Moves {
		if pm.LearnableIn(versionGroup) {
			moves = append(moves, pm)
		}
	}

	return moves
}

func (pokemon *Pokemon) SketchesEverything() bool {
	return pokemon.Name == smeargle
}
