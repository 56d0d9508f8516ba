package components

import (
	"github.com/automoto/squareboy/shared/actor"
	"github.com/yohamta/donburi"
)

type SquareboyData struct {
	*actor.Squareboy
}

var Squareboy = donburi.NewComponentType[SquareboyData]()
