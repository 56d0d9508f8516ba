package tags

import (
	"github.com/yohamta/donburi"
)

var (
	Squareboy = donburi.NewTag().SetName("Squareboy")
	Solid     = donburi.NewTag().SetName("Solid")
	Fade      = donburi.NewTag().SetName("Fade")
)
