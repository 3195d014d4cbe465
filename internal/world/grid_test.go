package world

import "testing"

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{name: "valid", w: 20, h: 20, wantErr: false},
		{name: "single cell", w: 1, h: 1, wantErr: false},
		{name: "zero width", w: 0, h: 10, wantErr: true},
		{name: "zero height", w: 10, h: 0, wantErr: true},
		{name: "negative", w: -5, h: 5, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.w, tc.h)
			if tc.wantErr {
				if err == nil {
					t.Errorf("New(%d, %d) expected error, got nil", tc.w, tc.h)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d) failed: %v", tc.w, tc.h, err)
			}
			if g.Width() != tc.w || g.Height() != tc.h {
				t.Errorf("Dimensions = %dx%d, expected %dx%d", g.Width(), g.Height(), tc.w, tc.h)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	g, err := New(5, 3)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{4, 2, true},
		{5, 2, false},
		{4, 3, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tc := range tests {
		if got := g.InBounds(tc.x, tc.y); got != tc.expected {
			t.Errorf("InBounds(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestOccupantLookupInsertionOrder(t *testing.T) {
	g, _ := New(5, 5)

	first := NewBox("box", 2, 2)
	second := NewWall("wall", 2, 2)
	g.Add(first)
	g.Add(second)

	// The first-inserted entity wins the single-occupant lookup.
	if got := g.OccupantAt(2, 2); got != first {
		t.Errorf("OccupantAt(2,2) = %v, expected the first-inserted entity", got)
	}

	occupants := g.OccupantsAt(2, 2)
	if len(occupants) != 2 {
		t.Fatalf("OccupantsAt(2,2) returned %d entities, expected 2", len(occupants))
	}
	if occupants[0] != first || occupants[1] != second {
		t.Error("OccupantsAt(2,2) did not preserve insertion order")
	}
}

func TestOccupantAtEmpty(t *testing.T) {
	g, _ := New(5, 5)
	g.Add(NewBox("box", 1, 1))

	if got := g.OccupantAt(3, 3); got != nil {
		t.Errorf("OccupantAt(3,3) = %v, expected nil for empty cell", got)
	}
	// Out-of-bounds lookups are simply empty, never a fault.
	if got := g.OccupantAt(-1, 7); got != nil {
		t.Errorf("OccupantAt(-1,7) = %v, expected nil", got)
	}
}

func TestRemoveNonMember(t *testing.T) {
	g, _ := New(5, 5)
	member := NewBox("box", 1, 1)
	stranger := NewBox("box", 2, 2)
	g.Add(member)

	if err := g.Remove(stranger); err != ErrNotOnGrid {
		t.Errorf("Remove(non-member) = %v, expected ErrNotOnGrid", err)
	}

	// The live set must be untouched.
	if len(g.Entities()) != 1 || g.OccupantAt(1, 1) != member {
		t.Error("Remove(non-member) corrupted the entity set")
	}

	if err := g.Remove(member); err != nil {
		t.Errorf("Remove(member) failed: %v", err)
	}
	if g.OccupantAt(1, 1) != nil {
		t.Error("Removed entity still reported as occupant")
	}
}

func TestPlayerIntentLastWriteWins(t *testing.T) {
	g, _ := New(5, 5)
	p := NewPlayer("player", 2, 2)
	g.SetPlayer(p)

	// A burst of inputs between ticks: only the most recent one acts.
	g.PlayerIntent(DirNorth)
	g.PlayerIntent(DirSouth)
	g.PlayerIntent(DirEast)
	g.AdvanceTick()

	if x, y := p.Position(); x != 3 || y != 2 {
		t.Errorf("Player at (%d,%d), expected (3,2) from the last intent", x, y)
	}

	// The intent was consumed; the next tick must be a no-op.
	g.AdvanceTick()
	if x, y := p.Position(); x != 3 || y != 2 {
		t.Errorf("Player moved to (%d,%d) without a fresh intent", x, y)
	}
}

func TestRemovePlayer(t *testing.T) {
	g, _ := New(5, 5)
	p := NewPlayer("player", 0, 0)
	g.SetPlayer(p)

	g.RemovePlayer()
	if g.Player() != nil {
		t.Error("Player() non-nil after RemovePlayer")
	}
	if g.OccupantAt(0, 0) != nil {
		t.Error("Removed player still occupies its cell")
	}

	// Intent delivery with no player is a no-op, not a crash.
	g.PlayerIntent(DirEast)
	g.AdvanceTick()
}

func TestAdvanceTickSafeAgainstMidTickRemoval(t *testing.T) {
	g, _ := New(9, 9)

	// A monster boxed in on all 8 sides dies during the pass; the
	// entities added after it must still be stepped.
	m := NewMonster("monster", 4, 4, 1, 1, 1)
	g.Add(m)
	for _, off := range neighborOffsets {
		g.Add(NewBox("box", 4+off[0], 4+off[1]))
	}
	late := NewMonster("monster", 0, 0, 1, 1, 1)
	g.Add(late)

	g.AdvanceTick()

	if m.Alive() {
		t.Error("Encircled monster survived the tick")
	}
	if x, y := late.Position(); x != 1 || y != 1 {
		t.Errorf("Monster added after the dying one did not step: at (%d,%d), expected (1,1)", x, y)
	}
}

func TestAllPositionsInBoundsAfterTicks(t *testing.T) {
	g, _ := New(6, 6)
	g.SetPlayer(NewPlayer("player", 0, 0))
	g.Add(NewMonster("monster", 5, 5, 1, 1, 1))
	g.Add(NewMonster("monster", 0, 5, 2, -1, 1))
	g.Add(NewBox("box", 3, 3))
	g.Add(NewStickyBox("sticky", 2, 4))
	g.Add(NewWall("wall", 1, 1))

	for i := 0; i < 200; i++ {
		g.PlayerIntent(DirSouthEast)
		g.AdvanceTick()

		for _, e := range g.Entities() {
			x, y := e.Position()
			if !g.InBounds(x, y) {
				t.Fatalf("Tick %d: %s at (%d,%d) is out of bounds", i, e.Kind(), x, y)
			}
		}
	}
}
