package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultBoxworldConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Loading with no custom path and no user/local config files present
	// should land on the embedded default, which mirrors the hardcoded one.
	cfg, err := LoadBoxworld("")
	if err != nil {
		t.Fatalf("LoadBoxworld() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Loaded config invalid: %v", err)
	}

	def := DefaultBoxworldConfig()
	if cfg.Grid != def.Grid {
		t.Errorf("Grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if len(cfg.Monsters) != len(def.Monsters) {
		t.Errorf("Monsters = %d, expected %d", len(cfg.Monsters), len(def.Monsters))
	}
	if cfg.Boxes != def.Boxes {
		t.Errorf("Boxes = %+v, expected %+v", cfg.Boxes, def.Boxes)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")

	data := []byte(`
grid: {width: 8, height: 6, cell_size: 16}
pacing: {tick_every: 3}
player: {icon: "@", x: 0, y: 0}
boxes: {count: 5, icon: "o"}
monsters:
  - {icon: "&", x: 4, y: 4, delay: 2, heading: {x: -1, y: -1}}
sticky_boxes:
  - {icon: "*", x: 2, y: 2}
walls:
  - {icon: "#", x: 5, y: 1}
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBoxworld(path)
	if err != nil {
		t.Fatalf("LoadBoxworld(%s) failed: %v", path, err)
	}

	if cfg.Grid.Width != 8 || cfg.Grid.Height != 6 {
		t.Errorf("Grid = %dx%d, expected 8x6", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Pacing.TickEvery != 3 {
		t.Errorf("TickEvery = %d, expected 3", cfg.Pacing.TickEvery)
	}
	if len(cfg.Monsters) != 1 || cfg.Monsters[0].Heading.X != -1 {
		t.Errorf("Monsters = %+v, expected one with heading x=-1", cfg.Monsters)
	}
}

func TestLoadMissingCustomConfig(t *testing.T) {
	if _, err := LoadBoxworld("/nonexistent/world.yaml"); err == nil {
		t.Error("Expected error for missing custom config, got nil")
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoxworldConfig)
	}{
		{"zero width", func(c *BoxworldConfig) { c.Grid.Width = 0 }},
		{"zero tick_every", func(c *BoxworldConfig) { c.Pacing.TickEvery = 0 }},
		{"player out of bounds", func(c *BoxworldConfig) { c.Player.X = 99 }},
		{"monster out of bounds", func(c *BoxworldConfig) { c.Monsters[0].Y = -1 }},
		{"wall collides with player", func(c *BoxworldConfig) {
			c.Walls[0].X = c.Player.X
			c.Walls[0].Y = c.Player.Y
		}},
		{"too many boxes", func(c *BoxworldConfig) { c.Boxes.Count = 1000 }},
		{"negative box count", func(c *BoxworldConfig) { c.Boxes.Count = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBoxworldConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   []int // expected delays for the default 5/3/2 monsters
	}{
		{DifficultyEasy, []int{7, 5, 4}},
		{DifficultyNormal, []int{5, 3, 2}},
		{DifficultyHard, []int{4, 2, 1}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBoxworldConfig()
			ApplyPreset(&cfg, tc.preset)
			for i, m := range cfg.Monsters {
				if m.Delay != tc.want[i] {
					t.Errorf("Monster %d delay = %d, expected %d", i, m.Delay, tc.want[i])
				}
			}
		})
	}
}

func TestApplyPresetClampsDelay(t *testing.T) {
	cfg := DefaultBoxworldConfig()
	cfg.Monsters[0].Delay = 1
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Monsters[0].Delay != 1 {
		t.Errorf("Delay = %d, expected clamp at 1", cfg.Monsters[0].Delay)
	}
}
