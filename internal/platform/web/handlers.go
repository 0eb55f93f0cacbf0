package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vovakirdan/arcade-hub/internal/profile"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// topScoresLimit is how many scores a game page lists.
const topScoresLimit = 10

// GameSummary is one dashboard entry.
type GameSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Favorite bool   `json:"favorite"`
	Best     int    `json:"best"`
}

// DashboardResponse is the body of GET /.
type DashboardResponse struct {
	Points int           `json:"points"`
	Streak int           `json:"streak"`
	Name   string        `json:"name"`
	Avatar string        `json:"avatar"`
	Games  []GameSummary `json:"games"`
}

// ScoreView is one entry of a game's score table.
type ScoreView struct {
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameResponse is the body of GET /games/{id}.
type GameResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Controls    string      `json:"controls"`
	TickRate    int         `json:"tickRate"`
	Favorite    bool        `json:"favorite"`
	Best        int         `json:"best"`
	TopScores   []ScoreView `json:"topScores"`
}

// ProfileUpdate is the body of PUT /profile. Absent fields are left as is.
type ProfileUpdate struct {
	Name        *string  `json:"name"`
	Avatar      *string  `json:"avatar"`
	ThemeAccent *string  `json:"themeAccent"`
	Scale       *float64 `json:"uiScale"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	p := s.profile.Snapshot()
	resp := DashboardResponse{
		Points: p.Points,
		Streak: p.Streak,
		Name:   p.Identity.Name,
		Avatar: p.Identity.Avatar,
		Games:  []GameSummary{},
	}
	for _, g := range registry.List() {
		resp.Games = append(resp.Games, GameSummary{
			ID:       g.ID,
			Title:    g.Title,
			Favorite: s.profile.IsFavorite(g.ID),
			Best:     s.profile.BestScore(g.ID),
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.profile.Snapshot())
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var upd ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Validate everything first so a bad field never leaves a half-applied update.
	current := s.profile.Snapshot().Identity
	id := current
	if upd.Name != nil {
		id.Name = *upd.Name
	}
	if upd.Avatar != nil {
		id.Avatar = *upd.Avatar
	}
	switch {
	case id.Name == "":
		s.writeError(w, http.StatusBadRequest, profile.ErrEmptyName.Error())
		return
	case upd.ThemeAccent != nil && !profile.ValidAccent(*upd.ThemeAccent):
		s.writeError(w, http.StatusBadRequest, profile.ErrInvalidAccent.Error())
		return
	case upd.Scale != nil && (*upd.Scale < profile.MinScale || *upd.Scale > profile.MaxScale):
		s.writeError(w, http.StatusBadRequest, profile.ErrInvalidScale.Error())
		return
	}

	if id != current {
		if err := s.profile.SetIdentity(id); err != nil {
			s.internalError(w, r, err)
			return
		}
	}
	if upd.ThemeAccent != nil {
		if err := s.profile.SetThemeAccent(*upd.ThemeAccent); err != nil {
			s.internalError(w, r, err)
			return
		}
	}
	if upd.Scale != nil {
		if err := s.profile.SetScale(*upd.Scale); err != nil {
			s.internalError(w, r, err)
			return
		}
	}

	s.writeJSON(w, http.StatusOK, s.profile.Snapshot())
}

func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r.Context())
	resp := GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Controls:    g.Controls,
		TickRate:    g.TickRate,
		Favorite:    s.profile.IsFavorite(g.ID),
		Best:        s.profile.BestScore(g.ID),
		TopScores:   []ScoreView{},
	}

	if s.scores != nil {
		entries, err := s.scores.TopScores(g.ID, topScoresLimit)
		if err != nil {
			s.internalError(w, r, err)
			return
		}
		for _, e := range entries {
			resp.TopScores = append(resp.TopScores, ScoreView{Score: e.Score, CreatedAt: e.CreatedAt})
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFavorite(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r.Context())
	fav, err := s.profile.ToggleFavorite(g.ID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"id": g.ID, "favorite": fav})
}

// internalError logs err and answers 500 without exposing it.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	s.writeError(w, http.StatusInternalServerError, "internal error")
}
