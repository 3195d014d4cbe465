// Package config provides YAML-based world configuration loading and
// difficulty management for the boxworld platform.
package config

import "fmt"

// BoxworldConfig contains the full world-setup configuration: grid
// dimensions, pacing, and every entity placement the seeder needs.
type BoxworldConfig struct {
	Grid        GridConfig      `yaml:"grid"`
	Pacing      PacingConfig    `yaml:"pacing"`
	Player      PlayerConfig    `yaml:"player"`
	Boxes       BoxScatter      `yaml:"boxes"`
	Monsters    []MonsterSpec   `yaml:"monsters"`
	StickyBoxes []PlacementSpec `yaml:"sticky_boxes"`
	Walls       []PlacementSpec `yaml:"walls"`
}

// GridConfig defines the logical grid and the per-cell pixel size.
// CellSize is opaque to the simulation; it is carried for renderers that
// draw scaled tiles.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// PacingConfig controls how platform frames map to world ticks.
type PacingConfig struct {
	// TickEvery is the number of platform frames per world tick.
	// 6 frames at 60 fps reproduces the original 100 ms cadence.
	TickEvery int `yaml:"tick_every"`
}

// PlayerConfig defines the player's icon and starting cell.
type PlayerConfig struct {
	Icon string `yaml:"icon"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// BoxScatter defines the random box placement pass.
type BoxScatter struct {
	Count int    `yaml:"count"`
	Icon  string `yaml:"icon"`
}

// MonsterSpec defines one monster: placement, delay factor and heading.
type MonsterSpec struct {
	Icon    string      `yaml:"icon"`
	X       int         `yaml:"x"`
	Y       int         `yaml:"y"`
	Delay   int         `yaml:"delay"`
	Heading HeadingSpec `yaml:"heading"`
}

// HeadingSpec is a monster's initial heading vector.
type HeadingSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlacementSpec is a fixed icon+cell placement (walls, sticky boxes).
type PlacementSpec struct {
	Icon string `yaml:"icon"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// Validate checks that the configuration describes a buildable world:
// positive dimensions, sane pacing, and fixed placements that are
// in-bounds and non-colliding with enough free cells left for the box
// scatter.
func (c BoxworldConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: invalid grid dimensions %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Pacing.TickEvery < 1 {
		return fmt.Errorf("config: tick_every must be at least 1, got %d", c.Pacing.TickEvery)
	}
	if c.Boxes.Count < 0 {
		return fmt.Errorf("config: negative box count %d", c.Boxes.Count)
	}

	taken := make(map[[2]int]string)
	place := func(what string, x, y int) error {
		if x < 0 || x >= c.Grid.Width || y < 0 || y >= c.Grid.Height {
			return fmt.Errorf("config: %s at (%d,%d) is outside the %dx%d grid",
				what, x, y, c.Grid.Width, c.Grid.Height)
		}
		if prev, ok := taken[[2]int{x, y}]; ok {
			return fmt.Errorf("config: %s at (%d,%d) collides with %s", what, x, y, prev)
		}
		taken[[2]int{x, y}] = what
		return nil
	}

	if err := place("player", c.Player.X, c.Player.Y); err != nil {
		return err
	}
	for i, m := range c.Monsters {
		if err := place(fmt.Sprintf("monster %d", i), m.X, m.Y); err != nil {
			return err
		}
	}
	for i, s := range c.StickyBoxes {
		if err := place(fmt.Sprintf("sticky box %d", i), s.X, s.Y); err != nil {
			return err
		}
	}
	for i, w := range c.Walls {
		if err := place(fmt.Sprintf("wall %d", i), w.X, w.Y); err != nil {
			return err
		}
	}

	free := c.Grid.Width*c.Grid.Height - len(taken)
	if c.Boxes.Count > free {
		return fmt.Errorf("config: %d boxes do not fit in %d free cells", c.Boxes.Count, free)
	}
	return nil
}
