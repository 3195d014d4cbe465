package world

import "testing"

func TestMonsterRoamsDiagonally(t *testing.T) {
	g, _ := New(10, 10)
	m := NewMonster("monster", 2, 2, 1, 1, 1)
	g.Add(m)

	g.AdvanceTick()
	if x, y := m.Position(); x != 3 || y != 3 {
		t.Errorf("Monster at (%d,%d), expected (3,3)", x, y)
	}

	g.AdvanceTick()
	if x, y := m.Position(); x != 4 || y != 4 {
		t.Errorf("Monster at (%d,%d), expected (4,4)", x, y)
	}
}

func TestMonsterDelayThrottlesMovement(t *testing.T) {
	g, _ := New(10, 10)
	m := NewMonster("monster", 2, 2, 3, 1, 1)
	g.Add(m)

	// Ticks 1 and 2: the counter has not wrapped, no movement.
	g.AdvanceTick()
	g.AdvanceTick()
	if x, y := m.Position(); x != 2 || y != 2 {
		t.Errorf("Monster moved early to (%d,%d)", x, y)
	}

	// Tick 3: the counter wraps and the monster steps.
	g.AdvanceTick()
	if x, y := m.Position(); x != 3 || y != 3 {
		t.Errorf("Monster at (%d,%d), expected (3,3) on the wrapping tick", x, y)
	}
}

func TestMonsterBouncesXOnlyAtVerticalEdge(t *testing.T) {
	// Heading (1,1) with the x-destination off-grid: only the
	// x-component reverses, and no relocation happens that tick.
	g, _ := New(5, 5)
	m := NewMonster("monster", 4, 2, 1, 1, 1)
	g.Add(m)

	g.AdvanceTick()

	if x, y := m.Position(); x != 4 || y != 2 {
		t.Errorf("Monster relocated to (%d,%d) on a bounce tick", x, y)
	}
	dx, dy := m.Heading()
	if dx != -1 || dy != 1 {
		t.Errorf("Heading = (%d,%d), expected (-1,1): x reversed, y preserved", dx, dy)
	}

	// Next tick the monster moves along the new heading.
	g.AdvanceTick()
	if x, y := m.Position(); x != 3 || y != 3 {
		t.Errorf("Monster at (%d,%d), expected (3,3) after the bounce", x, y)
	}
}

func TestMonsterBouncesYOnlyAtHorizontalEdge(t *testing.T) {
	g, _ := New(5, 5)
	m := NewMonster("monster", 2, 4, 1, 1, 1)
	g.Add(m)

	g.AdvanceTick()

	if x, y := m.Position(); x != 2 || y != 4 {
		t.Errorf("Monster relocated to (%d,%d) on a bounce tick", x, y)
	}
	dx, dy := m.Heading()
	if dx != 1 || dy != -1 {
		t.Errorf("Heading = (%d,%d), expected (1,-1): y reversed, x preserved", dx, dy)
	}
}

func TestMonsterBouncesBothAxesOffOccupant(t *testing.T) {
	// An occupied destination reverses both heading components.
	g, _ := New(10, 10)
	m := NewMonster("monster", 2, 2, 1, 1, 1)
	g.Add(m)
	g.Add(NewBox("box", 3, 3))

	g.AdvanceTick()

	if x, y := m.Position(); x != 2 || y != 2 {
		t.Errorf("Monster relocated to (%d,%d) on a bounce tick", x, y)
	}
	dx, dy := m.Heading()
	if dx != -1 || dy != -1 {
		t.Errorf("Heading = (%d,%d), expected (-1,-1)", dx, dy)
	}
}

func TestMonsterCatchesPlayer(t *testing.T) {
	g, _ := New(10, 10)
	p := NewPlayer("player", 3, 3)
	g.SetPlayer(p)
	m := NewMonster("monster", 2, 2, 1, 1, 1)
	g.Add(m)

	g.AdvanceTick()

	if p.Alive() {
		t.Error("Player survived monster contact")
	}
	if g.Player() != nil {
		t.Error("Grid still designates the caught player")
	}
	// Catching is not a relocation: the monster bounces off the
	// (formerly) occupied cell.
	if x, y := m.Position(); x != 2 || y != 2 {
		t.Errorf("Monster at (%d,%d), expected (2,2)", x, y)
	}
	dx, dy := m.Heading()
	if dx != -1 || dy != -1 {
		t.Errorf("Heading = (%d,%d), expected (-1,-1) after the catch-bounce", dx, dy)
	}
}

func TestMonsterDiesWhenEncircled(t *testing.T) {
	g, _ := New(9, 9)

	// Use a large delay: death by encirclement ignores the throttle.
	m := NewMonster("monster", 4, 4, 50, 1, 1)
	g.Add(m)
	for _, off := range neighborOffsets {
		g.Add(NewBox("box", 4+off[0], 4+off[1]))
	}

	g.AdvanceTick()

	if m.Alive() {
		t.Error("Encircled monster still alive")
	}
	if got := g.OccupantAt(4, 4); got != nil {
		t.Errorf("Dead monster's cell still occupied by %v", got.Kind())
	}
}

func TestMonsterSurvivesPartialEncirclement(t *testing.T) {
	g, _ := New(9, 9)
	m := NewMonster("monster", 4, 4, 1, 1, 1)
	g.Add(m)

	// 7 of 8 neighbors occupied: the monster must stay alive.
	for _, off := range neighborOffsets[:7] {
		g.Add(NewBox("box", 4+off[0], 4+off[1]))
	}

	g.AdvanceTick()
	if !m.Alive() {
		t.Error("Monster died without full encirclement")
	}
}

func TestMonsterNotSmotheredByGridCorner(t *testing.T) {
	// Off-grid neighbors count as open: a cornered monster with its
	// in-bounds neighbors occupied does not die.
	g, _ := New(5, 5)
	m := NewMonster("monster", 0, 0, 1, 1, 1)
	g.Add(m)
	g.Add(NewBox("box", 1, 0))
	g.Add(NewBox("box", 0, 1))
	g.Add(NewBox("box", 1, 1))

	g.AdvanceTick()
	if !m.Alive() {
		t.Error("Cornered monster died; grid edges must not count as occupants")
	}
}

func TestEnsnaredMonsterIgnoresDelayAndStays(t *testing.T) {
	g, _ := New(6, 6)
	p := NewPlayer("player", 0, 0)
	g.SetPlayer(p)
	m := NewMonster("monster", 2, 0, 4, 1, 1)
	g.Add(m)
	s := NewStickyBox("sticky", 1, 0)
	g.Add(s)

	g.PlayerIntent(DirEast)
	g.AdvanceTick()
	if !m.Ensnared() {
		t.Fatal("Monster not ensnared")
	}

	// Many more ticks than the delay factor: never relocates.
	for i := 0; i < 12; i++ {
		g.AdvanceTick()
	}
	if x, y := m.Position(); x != 2 || y != 0 {
		t.Errorf("Ensnared monster relocated to (%d,%d)", x, y)
	}
	dx, dy := m.Heading()
	if dx != 1 || dy != 1 {
		t.Errorf("Ensnared monster's heading changed to (%d,%d)", dx, dy)
	}
}
