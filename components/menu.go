package components

import "github.com/yohamta/donburi"

// MenuData stores the keyboard selection on the level select menu
type MenuData struct {
	SelectedIndex int
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
