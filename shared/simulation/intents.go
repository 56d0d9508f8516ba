package simulation

import (
	"fmt"
	"strings"
)

// ParseIntents reads a comma separated list such as "right,jump".
func ParseIntents(list string) (Intents, error) {
	var in Intents
	for _, part := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "down":
			in.Down = true
		case "jump", "up":
			in.Jump = true
		default:
			return Intents{}, fmt.Errorf("unknown intent %q", part)
		}
	}
	return in, nil
}

func (in Intents) String() string {
	var parts []string
	if in.Left {
		parts = append(parts, "left")
	}
	if in.Right {
		parts = append(parts, "right")
	}
	if in.Down {
		parts = append(parts, "down")
	}
	if in.Jump {
		parts = append(parts, "jump")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// Script yields the intents for a given tick, counted from 1.
type Script func(tick int) Intents

// Hold is a script that holds the same intents forever.
func Hold(in Intents) Script {
	return func(int) Intents { return in }
}

// Replay steps the simulation ticks times using script and returns the
// events of every tick that reset the level.
func Replay(sim *Simulation, script Script, ticks int) []Events {
	var resets []Events
	for i := 0; i < ticks; i++ {
		ev := sim.Step(script(sim.Tick() + 1))
		if ev.Reset {
			resets = append(resets, ev)
		}
	}
	return resets
}
