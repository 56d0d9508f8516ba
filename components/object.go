package components

import (
	"github.com/automoto/squareboy/shared/collision"
	"github.com/yohamta/donburi"
)

// SolidData points an entity at one solid of the simulation's space.
type SolidData struct {
	*collision.Solid
}

var Solid = donburi.NewComponentType[SolidData]()
