package playback

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/karalvik/npuzzle/astar"
	"github.com/karalvik/npuzzle/board"
	"github.com/karalvik/npuzzle/scramble"
)

// Server is the REST front of the solver: it validates requests, runs
// the engine, and optionally hands the result to the Player for timed
// streaming over the hub.
type Server struct {
	hub    *Hub
	player *Player
	router *mux.Router
	log    *logrus.Logger

	// maxExpansions caps server-side solves so one pathological request
	// cannot pin the process. 0 disables the cap.
	maxExpansions int
}

// ServerConfig carries the Server's tunables.
type ServerConfig struct {
	FrameInterval time.Duration // pace of streamed playback
	MaxExpansions int           // server-side search budget, 0 = unlimited
	Log           *logrus.Logger
}

// NewServer wires the REST routes, the hub, and the player together.
func NewServer(hub *Hub, cfg ServerConfig) *Server {
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	s := &Server{
		hub:           hub,
		player:        NewPlayer(hub, cfg.FrameInterval, cfg.Log),
		router:        mux.NewRouter(),
		log:           cfg.Log,
		maxExpansions: cfg.MaxExpansions,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/scramble", s.handleScramble).Methods("POST")

	s.router.HandleFunc("/ws/{session}", s.handleWS)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// solveRequest is the POST /api/solve payload. Goal defaults to the
// canonical ordering; a non-empty Session schedules a timed stream of
// the frames to that session's WebSocket clients.
type solveRequest struct {
	Size      int    `json:"size"`
	Start     []int  `json:"start"`
	Goal      []int  `json:"goal,omitempty"`
	Heuristic string `json:"heuristic,omitempty"`
	Session   string `json:"session,omitempty"`
}

type solveResponse struct {
	Solvable bool    `json:"solvable"`
	Cost     int     `json:"cost,omitempty"`
	Expanded int     `json:"expanded,omitempty"`
	Frames   []Frame `json:"frames,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed JSON: "+err.Error())
		return
	}

	start, err := board.New(req.Size, req.Start)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	goal := board.Goal(req.Size)
	if len(req.Goal) > 0 {
		if goal, err = board.New(req.Size, req.Goal); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	opts := []astar.Option{astar.WithContext(r.Context())}
	if s.maxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(s.maxExpansions))
	}
	switch req.Heuristic {
	case "", "manhattan":
	case "misplaced":
		opts = append(opts, astar.WithHeuristic(astar.Misplaced))
	default:
		respondError(w, http.StatusBadRequest, "unknown heuristic "+req.Heuristic)
		return
	}

	res, err := astar.Solve(start, goal, opts...)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		respondJSON(w, http.StatusOK, solveResponse{Solvable: false})
		return
	case errors.Is(err, astar.ErrBudgetExhausted):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	frames := make([]Frame, len(res.Path))
	for i, b := range res.Path {
		frames[i] = newFrame(b, i+1, res.Cost)
	}

	if req.Session != "" {
		// Detach from the request context: playback outlives the HTTP
		// exchange that scheduled it.
		go s.player.Play(context.Background(), req.Session, start, res.Path)
		s.log.WithFields(logrus.Fields{
			"session": req.Session,
			"moves":   res.Cost,
		}).Info("playback scheduled")
	}

	respondJSON(w, http.StatusOK, solveResponse{
		Solvable: true,
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Frames:   frames,
	})
}

// scrambleRequest is the POST /api/scramble payload.
type scrambleRequest struct {
	Size       int    `json:"size"`
	Mode       string `json:"mode,omitempty"` // "uniform" (default) or "walk"
	Seed       int64  `json:"seed,omitempty"`
	WalkLength int    `json:"walk_length,omitempty"`
}

type scrambleResponse struct {
	Size  int   `json:"size"`
	Tiles []int `json:"tiles"`
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req scrambleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed JSON: "+err.Error())
		return
	}
	if req.Size < board.MinSize || req.Size > board.MaxSize {
		respondError(w, http.StatusBadRequest, "size out of range")
		return
	}

	opts := []scramble.Option{scramble.WithSeed(req.Seed)}
	switch req.Mode {
	case "", "uniform":
	case "walk":
		opts = append(opts, scramble.WithMode(scramble.Walk))
		if req.WalkLength > 0 {
			opts = append(opts, scramble.WithWalkLength(req.WalkLength))
		}
	default:
		respondError(w, http.StatusBadRequest, "unknown mode "+req.Mode)
		return
	}

	b, err := scramble.Scramble(board.Goal(req.Size), opts...)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, scrambleResponse{Size: b.Size(), Tiles: b.Tiles()})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	session := mux.Vars(r)["session"]
	if session == "" {
		respondError(w, http.StatusBadRequest, "missing session")
		return
	}
	s.hub.ServeWS(w, r, session)
}
