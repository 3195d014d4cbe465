package config

import (
	_ "embed"
)

//go:embed defaults/boxworld.yaml
var defaultBoxworldYAML []byte

// DefaultBoxworldConfig returns the default world configuration: a 20x20
// grid with three monsters, four sticky boxes, a few walls and a hundred
// randomly scattered boxes.
func DefaultBoxworldConfig() BoxworldConfig {
	return BoxworldConfig{
		Grid: GridConfig{
			Width:    20,
			Height:   20,
			CellSize: 24,
		},
		Pacing: PacingConfig{
			TickEvery: 6,
		},
		Player: PlayerConfig{
			Icon: "@",
			X:    0,
			Y:    0,
		},
		Boxes: BoxScatter{
			Count: 100,
			Icon:  "▩",
		},
		Monsters: []MonsterSpec{
			{Icon: "&", X: 7, Y: 4, Delay: 5, Heading: HeadingSpec{X: 1, Y: 1}},
			{Icon: "&", X: 4, Y: 10, Delay: 3, Heading: HeadingSpec{X: 1, Y: 1}},
			{Icon: "&", X: 5, Y: 19, Delay: 2, Heading: HeadingSpec{X: 1, Y: -1}},
		},
		StickyBoxes: []PlacementSpec{
			{Icon: "*", X: 1, Y: 1},
			{Icon: "*", X: 10, Y: 10},
			{Icon: "*", X: 8, Y: 15},
			{Icon: "*", X: 9, Y: 1},
		},
		Walls: []PlacementSpec{
			{Icon: "#", X: 3, Y: 4},
			{Icon: "#", X: 3, Y: 5},
			{Icon: "#", X: 3, Y: 6},
			{Icon: "#", X: 9, Y: 9},
			{Icon: "#", X: 9, Y: 8},
			{Icon: "#", X: 12, Y: 12},
		},
	}
}
