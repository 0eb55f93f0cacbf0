package config

import "testing"

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", ok, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1, GapReduction: 4, SpacingReduction: 30},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{500, 1},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.Speed(2, 100, 0); got != 4 {
		t.Errorf("Speed at max = %v, expected 4", got)
	}
	if got := d.GapSize(6, 100, 0); got != 4 {
		t.Errorf("GapSize should not go below 4, got %d", got)
	}
	if got := d.Spacing(40, 100, 0); got != 15 {
		t.Errorf("Spacing should not go below 15, got %d", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Enabled {
		t.Error("fixed preset should disable progression")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Enabled || cfg.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg)
	}

	d := NewDifficultyManager(cfg)
	if d.Level(0, 0) != 0.7 {
		t.Errorf("Level(0) = %v, expected initial 0.7", d.Level(0, 0))
	}

	b := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&b, DifficultyEasy)
	if b.Gameplay.Lives != 5 || b.Paddle.Width != 80 {
		t.Errorf("easy breakout = lives %d width %v", b.Gameplay.Lives, b.Paddle.Width)
	}
}
