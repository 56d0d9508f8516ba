package factory

import (
	"github.com/automoto/squareboy/archetypes"
	"github.com/automoto/squareboy/components"
	"github.com/automoto/squareboy/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, data *leveldata.CollisionData) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name: data.Name,
		Data: data,
	})
	return level
}
