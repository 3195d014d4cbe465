package boxworld

import "github.com/vovakirdan/tui-boxworld/internal/world"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCaught      GameStateType = "caught"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick             uint64
	Mode             string
	PlayerX          int
	PlayerY          int
	PlayerAlive      bool
	Boxes            int
	MonstersAlive    int
	MonstersEnsnared int
	State            GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateCaught
	case g.paused:
		state = StatePaused
	}

	playerX, playerY := -1, -1
	playerAlive := false
	if p := g.grid.Player(); p != nil {
		playerX, playerY = p.Position()
		playerAlive = p.Alive()
	}

	boxes := 0
	for _, e := range g.grid.Entities() {
		if e.Kind() == world.KindBox || e.Kind() == world.KindStickyBox {
			boxes++
		}
	}

	return Snapshot{
		Tick:             g.tick,
		Mode:             string(g.mode),
		PlayerX:          playerX,
		PlayerY:          playerY,
		PlayerAlive:      playerAlive,
		Boxes:            boxes,
		MonstersAlive:    g.MonstersRemaining(),
		MonstersEnsnared: g.monstersEnsnared(),
		State:            state,
	}
}
