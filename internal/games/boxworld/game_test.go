package boxworld

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-boxworld/internal/core"
	"github.com/vovakirdan/tui-boxworld/internal/world"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 30,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots.
	cfg := testRuntimeConfig(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i%17 == 0 {
			input.Set(core.ActionRight)
		}
		if i%41 == 0 {
			input.Set(core.ActionDownRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestWorldSeedingOneEntityPerCell(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	occupancy := make(map[[2]int]int)
	for _, e := range g.grid.Entities() {
		x, y := e.Position()
		if !g.grid.InBounds(x, y) {
			t.Errorf("%s seeded out of bounds at (%d,%d)", e.Kind(), x, y)
		}
		occupancy[[2]int{x, y}]++
	}
	for cell, n := range occupancy {
		if n > 1 {
			t.Errorf("Cell (%d,%d) seeded with %d entities", cell[0], cell[1], n)
		}
	}

	// Default world: player + 3 monsters + 4 sticky boxes + 6 walls + 100 boxes.
	if got := len(g.grid.Entities()); got != 114 {
		t.Errorf("Seeded %d entities, expected 114", got)
	}
}

func TestOnslaughtIsDenser(t *testing.T) {
	classic := New()
	classic.Reset(testRuntimeConfig(7))
	onslaught := NewOnslaught()
	onslaught.Reset(testRuntimeConfig(7))

	if onslaught.Snapshot().Boxes <= classic.Snapshot().Boxes {
		t.Errorf("Onslaught boxes = %d, expected more than classic's %d",
			onslaught.Snapshot().Boxes, classic.Snapshot().Boxes)
	}
	if onslaught.tickEvery >= classic.tickEvery {
		t.Errorf("Onslaught tickEvery = %d, expected faster than classic's %d",
			onslaught.tickEvery, classic.tickEvery)
	}
}

func TestTickPacing(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	input := core.NewInputFrame()
	for i := 0; i < g.tickEvery-1; i++ {
		g.Step(input)
	}
	if got := g.State().Ticks; got != 0 {
		t.Errorf("Ticks = %d before the frame interval elapsed, expected 0", got)
	}

	g.Step(input)
	if got := g.State().Ticks; got != 1 {
		t.Errorf("Ticks = %d after the frame interval, expected 1", got)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(1))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.State().Paused {
		t.Fatal("Game not paused after ActionPause")
	}

	input.Clear()
	before := g.State().Ticks
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if g.State().Ticks != before {
		t.Error("World ticked while paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("Game still paused after second ActionPause")
	}
}

// writeTrapConfig writes a tiny world where the monster catches the
// player on the very first tick.
func writeTrapConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "trap.yaml")
	data := []byte(`
grid: {width: 5, height: 5, cell_size: 8}
pacing: {tick_every: 1}
player: {icon: "@", x: 0, y: 0}
boxes: {count: 0, icon: "o"}
monsters:
  - {icon: "&", x: 1, y: 1, delay: 1, heading: {x: -1, y: -1}}
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestGameOverWhenPlayerCaught(t *testing.T) {
	SetConfigPath(writeTrapConfig(t))
	defer SetConfigPath("")

	g := New()
	g.Reset(testRuntimeConfig(1))

	input := core.NewInputFrame()
	g.Step(input)

	state := g.State()
	if !state.GameOver {
		t.Fatal("Game not over after the player was caught")
	}
	snap := g.Snapshot()
	if snap.PlayerAlive {
		t.Error("Snapshot still reports the player alive")
	}
	if snap.State != StateCaught {
		t.Errorf("Snapshot state = %q, expected %q", snap.State, StateCaught)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	SetConfigPath(writeTrapConfig(t))
	defer SetConfigPath("")

	g := New()
	g.Reset(testRuntimeConfig(1))

	input := core.NewInputFrame()
	g.Step(input)
	if !g.State().GameOver {
		t.Fatal("Game not over after the player was caught")
	}

	input.Set(core.ActionRestart)
	g.Step(input)

	state := g.State()
	if state.GameOver {
		t.Error("Game still over after restart")
	}
	if state.Ticks != 0 {
		t.Errorf("Ticks = %d after restart, expected 0", state.Ticks)
	}
	if p := g.grid.Player(); p == nil || !p.Alive() {
		t.Error("Player not respawned by restart")
	}
}

func TestRenderDrawsEntitiesAndHUD(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	// The HUD names the game on the first row.
	if got := screen.Row(0); !strings.Contains(got, "Box World") {
		t.Errorf("HUD row = %q, expected it to mention the game title", got)
	}

	// The player glyph appears at its mapped screen cell.
	p := g.grid.Player()
	if p == nil {
		t.Fatal("No player after Reset")
	}
	px, py := p.Position()
	if got := screen.Get(g.mapOffsetX+px, g.mapOffsetY+py); got != '@' {
		t.Errorf("Player cell rune = %q, expected '@'", got)
	}
	cell := screen.GetCell(g.mapOffsetX+px, g.mapOffsetY+py)
	if cell.Color != core.ColorBrightGreen {
		t.Errorf("Player cell color = %v, expected bright green", cell.Color)
	}
}

func TestIconFallback(t *testing.T) {
	e := world.NewBox("", 0, 0)
	if got := iconRune(e); got != '?' {
		t.Errorf("iconRune(empty) = %q, expected '?'", got)
	}
}
