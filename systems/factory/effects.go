package factory

import (
	"github.com/automoto/squareboy/archetypes"
	"github.com/automoto/squareboy/components"
	cfg "github.com/automoto/squareboy/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFade spawns a full-screen overlay that fades out after a reset.
func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Tween: gween.New(cfg.Fade.From, 0, cfg.Fade.Duration, ease.OutQuad),
		Alpha: cfg.Fade.From,
	})
	return fade
}
