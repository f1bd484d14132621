package model

type Move struct {
	ID    int    `db:"id"`
	Name  string `db:"name"`
	Power *int   `db:"power"`
	Type  string `db:"type_name"`
}

func (move *Move) Damaging() bool {
	return move.Power != nil && *move.Power > 0
}
