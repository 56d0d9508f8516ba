package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData is a full-screen overlay whose alpha follows a tween.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
