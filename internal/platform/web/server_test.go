package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/engine"
	"github.com/vovakirdan/arcade-hub/internal/profile"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/session"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

const stubID = "webstub"

func init() {
	registry.Register(stubID, func() registry.Game {
		return engine.New(engine.Definition[int]{
			ID:       stubID,
			Title:    "Web Stub",
			TickRate: 10,
			Policy:   session.NewPolicy(session.FixedBonus(1)),
			Init:     func(core.RuntimeConfig) int { return 0 },
			Resolve: func(prev int, _ core.InputSnapshot) engine.Resolution[int] {
				return engine.Resolution[int]{Next: prev}
			},
		})
	})
}

type fixture struct {
	handler http.Handler
	profile *profile.Store
	store   *storage.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	prof, err := profile.Open(store)
	if err != nil {
		t.Fatalf("profile.Open() error = %v", err)
	}
	srv := NewServer(prof, WithScores(store), WithLogger(log.New(io.Discard)))
	return fixture{handler: srv.Routes(), profile: prof, store: store}
}

func (f fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Errorf("GET /healthz = %d, expected 200", w.Code)
	}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	if err := f.profile.AddPoints(40); err != nil {
		t.Fatalf("AddPoints() error = %v", err)
	}
	if _, err := f.profile.RecordBest(stubID, 70); err != nil {
		t.Fatalf("RecordBest() error = %v", err)
	}

	w := f.do(t, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d, expected 200", w.Code)
	}
	resp := decode[DashboardResponse](t, w)
	if resp.Points != 40 {
		t.Errorf("Points = %d, expected 40", resp.Points)
	}
	if resp.Name != profile.DefaultName {
		t.Errorf("Name = %q, expected %q", resp.Name, profile.DefaultName)
	}

	var found bool
	for _, g := range resp.Games {
		if g.ID == stubID {
			found = true
			if g.Best != 70 {
				t.Errorf("Best = %d, expected 70", g.Best)
			}
		}
	}
	if !found {
		t.Errorf("dashboard games %v missing %q", resp.Games, stubID)
	}
}

func TestDashboardSeesOtherWriters(t *testing.T) {
	f := newFixture(t)
	_ = f.do(t, http.MethodGet, "/", nil)

	other, err := profile.Open(f.store, profile.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("profile.Open() error = %v", err)
	}
	_ = other.AddPoints(25)
	_ = other.IncrementStreak()

	resp := decode[DashboardResponse](t, f.do(t, http.MethodGet, "/", nil))
	if resp.Points != 25 || resp.Streak != 1 {
		t.Errorf("points/streak = %d/%d, expected 25/1", resp.Points, resp.Streak)
	}
}

func TestGameRoute(t *testing.T) {
	f := newFixture(t)
	for _, score := range []int{10, 30, 20} {
		rec := session.Record{
			ID:      uuid.New(),
			GameID:  stubID,
			Outcome: core.OutcomeLose,
			Score:   score,
			Streak:  "reset",
			EndedAt: time.Now(),
		}
		if err := f.store.RecordSession(rec); err != nil {
			t.Fatalf("RecordSession() error = %v", err)
		}
	}

	w := f.do(t, http.MethodGet, "/games/"+stubID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /games/%s = %d, expected 200", stubID, w.Code)
	}
	resp := decode[GameResponse](t, w)
	if resp.Title != "Web Stub" || resp.TickRate != 10 {
		t.Errorf("game = %+v, expected the stub metadata", resp)
	}
	if len(resp.TopScores) != 3 || resp.TopScores[0].Score != 30 {
		t.Errorf("TopScores = %v, expected 3 entries best first", resp.TopScores)
	}
}

func TestUnknownGame(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/games/nope"},
		{http.MethodPost, "/games/nope/favorite"},
	}
	for _, tt := range tests {
		if w := f.do(t, tt.method, tt.path, nil); w.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d, expected 404", tt.method, tt.path, w.Code)
		}
	}
}

func TestFavoriteToggle(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/games/"+stubID+"/favorite", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("POST favorite = %d, expected 200", w.Code)
	}
	if got := decode[map[string]any](t, w)["favorite"]; got != true {
		t.Errorf("favorite = %v, expected true", got)
	}
	if !f.profile.IsFavorite(stubID) {
		t.Error("IsFavorite() = false after toggle")
	}

	f.do(t, http.MethodPost, "/games/"+stubID+"/favorite", nil)
	if f.profile.IsFavorite(stubID) {
		t.Error("IsFavorite() = true after second toggle")
	}
}

func TestPutProfile(t *testing.T) {
	f := newFixture(t)
	name, accent, scale := "Ada", "#112233", 1.5

	w := f.do(t, http.MethodPut, "/profile", ProfileUpdate{Name: &name, ThemeAccent: &accent, Scale: &scale})
	if w.Code != http.StatusOK {
		t.Fatalf("PUT /profile = %d, expected 200: %s", w.Code, w.Body.String())
	}
	p := f.profile.Snapshot()
	if p.Identity.Name != name || p.ThemeAccent != accent || p.Scale != scale {
		t.Errorf("profile = %+v, expected the update applied", p)
	}

	w = f.do(t, http.MethodGet, "/profile", nil)
	if got := decode[profile.Profile](t, w); got.Identity.Name != name {
		t.Errorf("GET /profile name = %q, expected %q", got.Identity.Name, name)
	}
}

func TestPutProfileRejectsInvalid(t *testing.T) {
	empty, badAccent, badScale := "", "purple", 9.0
	okName := "Grace"
	tests := []struct {
		name string
		upd  ProfileUpdate
	}{
		{"empty name", ProfileUpdate{Name: &empty}},
		{"bad accent", ProfileUpdate{Name: &okName, ThemeAccent: &badAccent}},
		{"bad scale", ProfileUpdate{Scale: &badScale}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			w := f.do(t, http.MethodPut, "/profile", tt.upd)
			if w.Code != http.StatusBadRequest {
				t.Errorf("PUT /profile = %d, expected 400", w.Code)
			}
			// Nothing is applied on a rejected update
			if got := f.profile.Snapshot().Identity.Name; got != profile.DefaultName {
				t.Errorf("Name = %q, expected %q", got, profile.DefaultName)
			}
		})
	}
}

func TestPutProfileBadJSON(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("PUT /profile = %d, expected 400", w.Code)
	}
}

func TestJSONContentType(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", ct)
	}
}
