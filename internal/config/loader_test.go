package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		name     string
		load     func() (any, error)
		expected any
	}{
		{"breakout", func() (any, error) { return Load("breakout", "", BreakoutConfig{}) }, DefaultBreakoutConfig()},
		{"flappy", func() (any, error) { return Load("flappy", "", FlappyConfig{}) }, DefaultFlappyConfig()},
		{"snake", func() (any, error) { return Load("snake", "", SnakeConfig{}) }, DefaultSnakeConfig()},
		{"bubbles", func() (any, error) { return Load("bubbles", "", BubblesConfig{}) }, DefaultBubblesConfig()},
		{"tictactoe", func() (any, error) { return Load("tictactoe", "", TicTacToeConfig{}) }, DefaultTicTacToeConfig()},
		{"memory", func() (any, error) { return Load("memory", "", MemoryConfig{}) }, DefaultMemoryConfig()},
		{"simon", func() (any, error) { return Load("simon", "", SimonConfig{}) }, DefaultSimonConfig()},
		{"pacman", func() (any, error) { return Load("pacman", "", PacmanConfig{}) }, DefaultPacmanConfig()},
		{"tron", func() (any, error) { return Load("tron", "", TronConfig{}) }, DefaultTronConfig()},
		{"t2048", func() (any, error) { return Load("t2048", "", T2048Config{}) }, DefaultT2048Config()},
	}

	// Run from an empty directory so ./configs cannot shadow the embedded files.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if DefaultYAML(tc.name) == nil {
				t.Fatalf("no embedded default for %s", tc.name)
			}
			got, err := tc.load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("embedded %s.yaml = %+v, expected %+v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestLoadCustomPathOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("target_length: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("snake", path, DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TargetLength != 12 {
		t.Errorf("TargetLength = %d, expected 12", cfg.TargetLength)
	}
	if cfg.Grid != DefaultSnakeConfig().Grid {
		t.Errorf("Grid = %+v, expected default to be kept", cfg.Grid)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load("snake", filepath.Join(dir, "missing.yaml"), DefaultSnakeConfig()); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("grid: [unclosed"), 0o644)
	if _, err := Load("snake", bad, DefaultSnakeConfig()); err == nil {
		t.Error("invalid YAML should fail")
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	_ = os.MkdirAll("configs", 0o755)
	_ = os.WriteFile(filepath.Join("configs", "tron.yaml"), []byte("win_points: 7\n"), 0o644)

	cfg, err := Load("tron", "", DefaultTronConfig())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WinPoints != 7 || cfg.Grid.Width != 40 {
		t.Errorf("cfg = %+v, expected win_points 7 with default grid", cfg)
	}
}

func TestLoadUnknownGameUsesFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	fallback := SimonConfig{Pads: 9}
	cfg, err := Load("nope", "", fallback)
	if err != nil || cfg != fallback {
		t.Errorf("Load(nope) = %+v, %v, expected fallback", cfg, err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSimonConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "simon.yaml")
	_ = os.WriteFile(path, data, 0o644)

	cfg, err := Load("simon", path, SimonConfig{})
	if err != nil || cfg != DefaultSimonConfig() {
		t.Errorf("reloaded = %+v, %v", cfg, err)
	}
}
