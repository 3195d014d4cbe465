package boxworld

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-boxworld/internal/config"
	"github.com/vovakirdan/tui-boxworld/internal/world"
)

// buildWorld constructs and seeds a grid from the configuration: fixed
// placements first (player, walls, monsters, sticky boxes), then the
// random box scatter on the remaining free cells.
func buildWorld(cfg config.BoxworldConfig, rng *rand.Rand) (*world.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := world.New(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return nil, err
	}

	grid.SetPlayer(world.NewPlayer(cfg.Player.Icon, cfg.Player.X, cfg.Player.Y))

	for _, m := range cfg.Monsters {
		grid.Add(world.NewMonster(m.Icon, m.X, m.Y, m.Delay, m.Heading.X, m.Heading.Y))
	}
	for _, s := range cfg.StickyBoxes {
		grid.Add(world.NewStickyBox(s.Icon, s.X, s.Y))
	}
	for _, w := range cfg.Walls {
		grid.Add(world.NewWall(w.Icon, w.X, w.Y))
	}

	if err := scatterBoxes(grid, cfg.Boxes, rng); err != nil {
		return nil, err
	}
	return grid, nil
}

// scatterBoxes places cfg.Count boxes on random free cells by rejection
// sampling, the same way the classic layout scattered its crates. The
// attempt cap guards against a configuration denser than validation
// should ever allow through.
func scatterBoxes(grid *world.Grid, boxes config.BoxScatter, rng *rand.Rand) error {
	placed := 0
	attempts := 0
	maxAttempts := grid.Width() * grid.Height() * 50

	for placed < boxes.Count {
		if attempts >= maxAttempts {
			return fmt.Errorf("boxworld: placed %d of %d boxes before giving up", placed, boxes.Count)
		}
		attempts++

		x := rng.Intn(grid.Width())
		y := rng.Intn(grid.Height())
		if grid.OccupantAt(x, y) != nil {
			continue
		}
		grid.Add(world.NewBox(boxes.Icon, x, y))
		placed++
	}
	return nil
}

// applyOnslaught tightens the world for the onslaught variant: faster
// monsters, a faster world clock and half again as many boxes (capped to
// what still fits).
func applyOnslaught(cfg *config.BoxworldConfig) {
	for i := range cfg.Monsters {
		d := cfg.Monsters[i].Delay - 1
		if d < 1 {
			d = 1
		}
		cfg.Monsters[i].Delay = d
	}

	if cfg.Pacing.TickEvery > 1 {
		cfg.Pacing.TickEvery--
	}

	fixed := 1 + len(cfg.Monsters) + len(cfg.StickyBoxes) + len(cfg.Walls)
	free := cfg.Grid.Width*cfg.Grid.Height - fixed
	count := cfg.Boxes.Count + cfg.Boxes.Count/2
	if count > free {
		count = free
	}
	cfg.Boxes.Count = count
}
