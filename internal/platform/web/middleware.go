package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/arcade-hub/internal/registry"
)

type ctxKey int

const gameKey ctxKey = iota

// logRequests logs one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
			"remote", r.RemoteAddr,
		)
	})
}

// freshProfile reloads the profile so writes from other processes on the
// same database are visible.
func (s *Server) freshProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.profile.Reload(); err != nil {
			s.internalError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireGame resolves the {id} URL parameter to a registered game and
// answers 404 for unknown ids.
func (s *Server) requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, ok := registry.Info(chi.URLParam(r, "id"))
		if !ok {
			s.writeError(w, http.StatusNotFound, "unknown game")
			return
		}
		ctx := context.WithValue(r.Context(), gameKey, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// gameFrom returns the game resolved by requireGame.
func gameFrom(ctx context.Context) registry.GameInfo {
	info, _ := ctx.Value(gameKey).(registry.GameInfo)
	return info
}
