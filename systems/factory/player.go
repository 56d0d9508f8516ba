package factory

import (
	"github.com/automoto/squareboy/archetypes"
	"github.com/automoto/squareboy/components"
	"github.com/automoto/squareboy/shared/actor"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSquareboy(ecs *ecs.ECS, boy *actor.Squareboy) *donburi.Entry {
	player := archetypes.Squareboy.Spawn(ecs)
	components.Squareboy.SetValue(player, components.SquareboyData{Squareboy: boy})
	return player
}
