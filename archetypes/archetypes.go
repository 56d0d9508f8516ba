package archetypes

import (
	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/automoto/squareboy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Simulation = newArchetype(
		components.Simulation,
	)
	Level = newArchetype(
		components.Level,
	)
	Squareboy = newArchetype(
		tags.Squareboy,
		components.Squareboy,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Solid,
	)
	Fade = newArchetype(
		tags.Fade,
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
