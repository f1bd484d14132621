package model

//go:generate go tool enumer -type=LearnMethodName -transform=kebab -text

type LearnMethodName int

const (
	LevelUp LearnMethodName = iota
	Egg
	Tutor
	Machine
	StadiumSurfingPikachu
	LightBallEgg
	ColosseumPurification
	XdShadow
	XdPurification
	FormChange
	ZygardeCube
)
