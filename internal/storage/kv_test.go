package storage

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-hub/internal/profile"
)

var _ profile.KV = (*Store)(nil)

func TestKVGetSet(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); ok || err != nil {
		t.Errorf("Get(missing) = ok %v, err %v, expected false, nil", ok, err)
	}

	_ = store.Set("themeAccent", "#7c3aed")
	_ = store.Set("themeAccent", "#10b981")

	v, ok, err := store.Get("themeAccent")
	if err != nil || !ok || v != "#10b981" {
		t.Errorf("Get(themeAccent) = %q, %v, %v, expected #10b981", v, ok, err)
	}
}

func TestKVAdd(t *testing.T) {
	store := openTestStore(t)
	_ = store.Set("streak", "oops")
	_ = store.Set("best:snake", "-4")

	tests := []struct {
		key      string
		delta    int
		expected int
	}{
		{"points", 10, 10},
		{"points", 5, 15},
		{"streak", 1, 1},
		{"best:snake", 3, 3},
	}
	for _, tt := range tests {
		got, err := store.Add(tt.key, tt.delta)
		if err != nil {
			t.Fatalf("Add(%q, %d) error = %v", tt.key, tt.delta, err)
		}
		if got != tt.expected {
			t.Errorf("Add(%q, %d) = %d, expected %d", tt.key, tt.delta, got, tt.expected)
		}
	}
	if v, _, _ := store.Get("points"); v != "15" {
		t.Errorf("Get(points) = %q, expected 15", v)
	}
}

func TestKVSharedProfiles(t *testing.T) {
	store := openTestStore(t)
	logger := log.New(io.Discard)
	open := func() *profile.Store {
		p, err := profile.Open(store, profile.WithNamespace("alice"), profile.WithLogger(logger))
		if err != nil {
			t.Fatalf("profile.Open() failed: %v", err)
		}
		return p
	}
	a, b := open(), open()

	_ = a.AddPoints(10)
	_ = b.AddPoints(5)
	_ = a.IncrementStreak()
	_ = b.IncrementStreak()

	snap := open().Snapshot()
	if snap.Points != 15 || snap.Streak != 2 {
		t.Errorf("persisted points/streak = %d/%d, expected 15/2", snap.Points, snap.Streak)
	}
	if got := b.Snapshot().Points; got != 15 {
		t.Errorf("second store points = %d, expected 15", got)
	}
}

func TestKVKeys(t *testing.T) {
	store := openTestStore(t)
	_ = store.Set("best:snake", "3")
	_ = store.Set("best:tron", "1")
	_ = store.Set("points", "9")

	keys, err := store.Keys("best:")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "best:snake" || keys[1] != "best:tron" {
		t.Errorf("Keys(best:) = %v", keys)
	}
}

func TestKVBacksProfile(t *testing.T) {
	store := openTestStore(t)
	logger := log.New(io.Discard)

	p, err := profile.Open(store, profile.WithLogger(logger))
	if err != nil {
		t.Fatalf("profile.Open() failed: %v", err)
	}
	_ = p.AddPoints(42)
	_, _ = p.ToggleFavorite("bubbles")

	again, err := profile.Open(store, profile.WithLogger(logger))
	if err != nil {
		t.Fatalf("profile.Open() failed: %v", err)
	}
	snap := again.Snapshot()
	if snap.Points != 42 || len(snap.Favorites) != 1 {
		t.Errorf("reloaded profile = %+v, expected 42 points and 1 favorite", snap)
	}
}
