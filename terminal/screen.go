package terminal

import (
	"fmt"

	"github.com/automoto/squareboy/shared/simulation"
	"github.com/gdamore/tcell/v2"
)

var (
	styleSolid = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleActor = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	styleFrame = tcell.StyleDefault.Foreground(tcell.Color(240)) // Dark gray in 256-color palette
)

const block = '█'

// Draw renders f and a status line below it. The bottom edge of the
// playfield is marked so the loss line is visible.
func Draw(screen tcell.Screen, f Frame, status string) {
	screen.Clear()

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			switch f.At(col, row) {
			case CellSolid:
				screen.SetContent(col, row, block, nil, styleSolid)
			case CellActor:
				screen.SetContent(col, row, block, nil, styleActor)
			}
		}
	}
	for col := 0; col < f.Cols; col++ {
		screen.SetContent(col, f.Rows, '‾', nil, styleFrame)
	}
	drawText(screen, 0, f.Rows+1, status, styleHUD)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// Status formats the line shown under the playfield.
func Status(snap simulation.Snapshot, in simulation.Intents) string {
	return fmt.Sprintf("%s  tick %d  resets %d  scroll %d  %s  [%s]  arrows/wasd move  space jump  r restart  q quit",
		snap.Level, snap.Tick, snap.Resets, snap.Scroll, snap.Jump.Phase, in)
}
