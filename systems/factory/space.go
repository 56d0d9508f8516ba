package factory

import (
	"github.com/automoto/squareboy/archetypes"
	"github.com/automoto/squareboy/components"
	"github.com/automoto/squareboy/shared/collision"
	"github.com/automoto/squareboy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSolids spawns one entity per solid in space.
func CreateSolids(ecs *ecs.ECS, space *collision.Space) {
	for _, solid := range space.Solids() {
		CreateSolid(ecs, solid)
	}
}

func CreateSolid(ecs *ecs.ECS, solid *collision.Solid) *donburi.Entry {
	entry := archetypes.Solid.Spawn(ecs)
	components.Solid.SetValue(entry, components.SolidData{Solid: solid})
	return entry
}

// RemoveSolids destroys every solid entity.
func RemoveSolids(ecs *ecs.ECS) {
	var entries []*donburi.Entry
	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	for _, e := range entries {
		ecs.World.Remove(e.Entity())
	}
}
