// Package boxworld adapts the world simulation to the platform's Game
// interface: it seeds the grid from configuration, paces world ticks
// against platform frames, translates input actions into player intents
// and renders the grid to a screen buffer.
package boxworld

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-boxworld/internal/config"
	"github.com/vovakirdan/tui-boxworld/internal/core"
	"github.com/vovakirdan/tui-boxworld/internal/registry"
	"github.com/vovakirdan/tui-boxworld/internal/world"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic   Mode = "classic"
	ModeOnslaught Mode = "onslaught"
)

// Game implements the boxworld game on top of the world engine.
type Game struct {
	mode Mode
	rng  *rand.Rand

	cfg  config.BoxworldConfig
	grid *world.Grid

	tick      uint64 // world ticks since Reset
	frame     int    // platform frames since the last world tick
	tickEvery int

	startMonsters int

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty (set by the CLI before
// the game is created, like the other platform games).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

// NewOnslaught creates a new onslaught mode game: same world, faster
// monsters, denser box field.
func NewOnslaught() *Game {
	return &Game{
		mode: ModeOnslaught,
	}
}

func init() {
	registry.Register("boxworld", func() registry.Game {
		return New()
	})
	registry.Register("boxworld_onslaught", func() registry.Game {
		return NewOnslaught()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeOnslaught {
		return "boxworld_onslaught"
	}
	return "boxworld"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeOnslaught {
		return "Box World (Onslaught)"
	}
	return "Box World"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.frame = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	wcfg, err := config.LoadBoxworld(configPath)
	if err != nil {
		wcfg = config.DefaultBoxworldConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&wcfg, config.DifficultyPreset(difficultyPreset))
	}
	if g.mode == ModeOnslaught {
		applyOnslaught(&wcfg)
	}
	g.cfg = wcfg
	g.tickEvery = wcfg.Pacing.TickEvery
	g.startMonsters = len(wcfg.Monsters)

	grid, err := buildWorld(wcfg, g.rng)
	if err != nil {
		// A validated config never fails to build; an unvalidated one
		// falls back to the defaults rather than crashing the platform.
		grid, _ = buildWorld(config.DefaultBoxworldConfig(), g.rng)
	}
	g.grid = grid

	g.layOut()
}

// layOut recomputes the map placement and the too-small flag for the
// current screen dimensions.
func (g *Game) layOut() {
	requiredW := g.grid.Width() + 2
	requiredH := g.grid.Height() + 2 + g.hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the bordered map below the HUD.
	g.mapOffsetX = (g.screenW-g.grid.Width())/2 + 1
	g.mapOffsetY = g.hudHeight + 1
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Deliver the most relevant movement input as the player intent.
	// The mailbox keeps only the latest one across frames, matching the
	// "last keypress before the tick wins" input model.
	if d := directionFromInput(input); d != world.DirNone {
		g.grid.PlayerIntent(d)
	}

	// Advance the world on the configured frame interval.
	g.frame++
	if g.frame >= g.tickEvery {
		g.frame = 0
		g.tick++
		g.grid.AdvanceTick()

		if g.grid.Player() == nil {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// actionDirections maps movement actions to world directions, in the
// fixed scan order of core.DirectionActions.
var actionDirections = map[core.Action]world.Direction{
	core.ActionUp:        world.DirNorth,
	core.ActionDown:      world.DirSouth,
	core.ActionLeft:      world.DirWest,
	core.ActionRight:     world.DirEast,
	core.ActionUpLeft:    world.DirNorthWest,
	core.ActionUpRight:   world.DirNorthEast,
	core.ActionDownLeft:  world.DirSouthWest,
	core.ActionDownRight: world.DirSouthEast,
}

// directionFromInput returns the first triggered movement action in the
// fixed scan order, or DirNone.
func directionFromInput(input core.InputFrame) world.Direction {
	for _, a := range core.DirectionActions {
		if input.Has(a) {
			return actionDirections[a]
		}
	}
	return world.DirNone
}

// MonstersRemaining returns the number of live monsters.
func (g *Game) MonstersRemaining() int {
	n := 0
	for _, e := range g.grid.Entities() {
		if e.Kind() == world.KindMonster {
			n++
		}
	}
	return n
}

// monstersEnsnared returns the number of live ensnared monsters.
func (g *Game) monstersEnsnared() int {
	n := 0
	for _, e := range g.grid.Entities() {
		if e.Kind() == world.KindMonster && e.Ensnared() {
			n++
		}
	}
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Ticks:    g.tick,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	px, py := -1, -1
	if p := g.grid.Player(); p != nil {
		px, py = p.Position()
	}
	return fmt.Sprintf("Tick: %d, Player: (%d,%d), Monsters: %d (%d ensnared), GameOver: %v",
		g.tick, px, py, g.MonstersRemaining(), g.monstersEnsnared(), g.gameOver)
}
