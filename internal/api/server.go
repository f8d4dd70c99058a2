// Package api serves the arcade leaderboard and round history as read-only
// JSON over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/whack-arcade/internal/registry"
	"github.com/vovakirdan/whack-arcade/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var errBadLimit = errors.New("limit must be a positive integer")

// Server handles HTTP requests against a score store.
type Server struct {
	store     *storage.Store
	logger    *log.Logger
	startTime time.Time
}

// NewServer creates an API server. A nil logger discards log output.
func NewServer(store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		store:     store,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", s.handleListGames)
		r.Get("/games/{game}/scores", s.handleScores)
		r.Get("/games/{game}/stats", s.handleStats)
		r.Get("/stats", s.handleAllStats)
		r.Get("/rounds", s.handleRounds)
		r.Get("/rounds/{id}", s.handleRound)
	})

	return r
}

// requestLogger logs each request once it completes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("could not encode response", "error", err)
	}
}

// writeError writes {"error": message}. Server errors are logged.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error(message,
			"path", r.URL.Path,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
	}
	s.writeJSON(w, status, ErrorResponse{Error: message})
}

// parseLimit reads ?limit=, falling back to defaultLimit and capping at maxLimit.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errBadLimit
	}
	return min(n, maxLimit), nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Games:     len(registry.List()),
		Database:  s.store != nil,
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	resp := GamesResponse{Games: make([]GameInfo, 0, len(games))}

	for _, g := range games {
		info := GameInfo{ID: g.ID, Title: g.Title}
		if s.store != nil {
			hs, err := s.store.HighScore(g.ID)
			if err != nil {
				s.writeError(w, r, http.StatusInternalServerError, "could not load high score", err)
				return
			}
			info.HighScore = hs
		}
		resp.Games = append(resp.Games, info)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// gameParam returns the {game} URL parameter if it names a registered game.
func (s *Server) gameParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "game")
	if !registry.Exists(id) {
		s.writeError(w, r, http.StatusNotFound, "unknown game: "+id, nil)
		return "", false
	}
	if s.store == nil {
		s.writeError(w, r, http.StatusInternalServerError, "storage unavailable", nil)
		return "", false
	}
	return id, true
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	gameID, ok := s.gameParam(w, r)
	if !ok {
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	entries, err := s.store.TopScores(gameID, limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "could not load scores", err)
		return
	}

	resp := ScoresResponse{GameID: gameID, Scores: make([]ScoreInfo, 0, len(entries))}
	for i, e := range entries {
		resp.Scores = append(resp.Scores, ScoreInfo{
			Rank:      i + 1,
			Score:     e.Score,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	gameID, ok := s.gameParam(w, r)
	if !ok {
		return
	}

	stats, err := s.store.GetGameStats(gameID)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "could not load stats", err)
		return
	}

	s.writeJSON(w, http.StatusOK, newStatsResponse(stats))
}

// handleAllStats lists stats for every game with at least one score,
// ordered by game id.
func (s *Server) handleAllStats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, http.StatusInternalServerError, "storage unavailable", nil)
		return
	}

	all, err := s.store.GetAllGamesStats()
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "could not load stats", err)
		return
	}

	resp := AllStatsResponse{Games: make([]StatsResponse, 0, len(all))}
	for _, id := range slices.Sorted(maps.Keys(all)) {
		resp.Games = append(resp.Games, newStatsResponse(all[id]))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, http.StatusInternalServerError, "storage unavailable", nil)
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}
	gameID := r.URL.Query().Get("game")

	records, err := s.store.RecentRounds(gameID, limit)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "could not load rounds", err)
		return
	}

	resp := RoundsResponse{Rounds: make([]RoundInfo, 0, len(records))}
	for _, rec := range records {
		resp.Rounds = append(resp.Rounds, newRoundInfo(rec))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, http.StatusInternalServerError, "storage unavailable", nil)
		return
	}
	id := chi.URLParam(r, "id")

	rec, err := s.store.RoundByID(id)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "could not load round", err)
		return
	}
	if rec == nil {
		s.writeError(w, r, http.StatusNotFound, "round not found: "+id, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, newRoundInfo(*rec))
}
