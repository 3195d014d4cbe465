package config

// DifficultyPreset represents a named difficulty level.
// Difficulty only changes how fast the monsters act; the world layout
// stays the same.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DelayAdjustmentForPreset returns the amount added to every monster's
// delay factor. A larger delay means a slower monster.
func DelayAdjustmentForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return -1
	default:
		return 0
	}
}

// ApplyPreset adjusts all monster delays in place for the given preset.
// Delays never drop below 1 (a monster acting every tick).
func ApplyPreset(cfg *BoxworldConfig, preset DifficultyPreset) {
	adj := DelayAdjustmentForPreset(preset)
	if adj == 0 {
		return
	}
	for i := range cfg.Monsters {
		d := cfg.Monsters[i].Delay + adj
		if d < 1 {
			d = 1
		}
		cfg.Monsters[i].Delay = d
	}
}
