/*
Package api
File: handlers.go
Description:
    Contains the HTTP handlers for the intent API: the only way the
    presentation layer mutates the mission. Each handler decodes a JSON
    intent, calls the matching Mission method, and returns the resulting
    snapshot.

    Key Responsibilities:
    - Input Validation (Is the JSON valid? Is the element key known?)
    - Intent Dispatch (Calling the Mission controller)
    - HTTP semantics: malformed requests get 4xx; valid-but-rejected
      intents get 200 with the unchanged snapshot (the rejection shows up
      in the mission log, per the no-crash contract).
*/

package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/everforgeworks/regolith-rover/internal/game"
)

// Request DTOs. These structs define exactly what the client sends us.

type MoveRequest struct {
	DRow int `json:"d_row"`
	DCol int `json:"d_col"`
}

type PathRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type InstrumentRequest struct {
	Kind string `json:"kind"` // "apxs" or "libs"
}

type GuessRequest struct {
	Element string `json:"element"`
}

type WakeRequest struct {
	StopPosition float64 `json:"stop_position"` // 0..100 timing scale
}

type TickRateRequest struct {
	PerSecond float64 `json:"per_second"`
}

// timingCenter is the target of the wake timing scale (0..100).
const timingCenter = 55.0

// Server owns the HTTP surface. The mission pointer is swappable so a
// SIGHUP reset can splice in a fresh campaign without restarting.
type Server struct {
	mu      sync.RWMutex
	mission *game.Mission
	loop    *game.Loop
}

// NewServer wires the intent API around a mission and its tick loop.
func NewServer(m *game.Mission, l *game.Loop) *Server {
	return &Server{mission: m, loop: l}
}

// SetMission swaps in a fresh mission (used by the hot-reload path).
func (s *Server) SetMission(m *game.Mission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mission = m
}

// Mission returns the live mission.
func (s *Server) Mission() *game.Mission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mission
}

// Register attaches every route to the mux.
func (s *Server) Register(mux *http.ServeMux) {
	// Read endpoints
	mux.HandleFunc("/api/state", s.HandleGetState)
	mux.HandleFunc("/api/grid", s.HandleGetGrid)
	mux.HandleFunc("/api/objectives", s.HandleGetObjectives)
	mux.HandleFunc("/api/elements", s.HandleGetElements)
	mux.HandleFunc("/api/log", s.HandleGetLog)

	// Intent endpoints
	mux.HandleFunc("/api/move", s.HandleMove)
	mux.HandleFunc("/api/path", s.HandlePath)
	mux.HandleFunc("/api/path/clear", s.HandleClearPath)
	mux.HandleFunc("/api/instrument", s.HandleInstrument)
	mux.HandleFunc("/api/guess", s.HandleGuess)
	mux.HandleFunc("/api/transmit", s.HandleTransmit)
	mux.HandleFunc("/api/hibernate", s.HandleHibernate)
	mux.HandleFunc("/api/wake", s.HandleWake)

	// Scheduler endpoints
	mux.HandleFunc("/api/tickrate", s.HandleTickRate)
	mux.HandleFunc("/api/pause", s.HandlePause)
	mux.HandleFunc("/api/resume", s.HandleResume)
}

// writeSnapshot is the single response path for intent handlers.
func writeSnapshot(w http.ResponseWriter, snap game.Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

// HandleGetState returns the full mission snapshot.
func (s *Server) HandleGetState(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, s.Mission().Snapshot())
}

// HandleGetGrid returns just the surface map (with seen flags).
func (s *Server) HandleGetGrid(w http.ResponseWriter, r *http.Request) {
	snap := s.Mission().Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap.Grid)
}

// HandleGetObjectives returns the objective checklist.
func (s *Server) HandleGetObjectives(w http.ResponseWriter, r *http.Request) {
	snap := s.Mission().Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap.Objectives)
}

// HandleGetElements returns the static spectral catalog.
func (s *Server) HandleGetElements(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Mission().Elements())
}

// HandleGetLog returns the mission log, newest first.
func (s *Server) HandleGetLog(w http.ResponseWriter, r *http.Request) {
	snap := s.Mission().Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap.Log)
}

// HandleMove drives the rover one cell.
func (s *Server) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	writeSnapshot(w, s.Mission().Move(req.DRow, req.DCol))
}

// HandlePath queues a multi-step route toward a target cell.
func (s *Server) HandlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	writeSnapshot(w, s.Mission().QueuePath(req.Row, req.Col))
}

// HandleClearPath cancels any queued route.
func (s *Server) HandleClearPath(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, s.Mission().ClearPath())
}

// HandleInstrument activates APXS or LIBS on the current tile.
func (s *Server) HandleInstrument(w http.ResponseWriter, r *http.Request) {
	var req InstrumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var kind game.InstrumentKind
	switch req.Kind {
	case string(game.InstrumentAPXS):
		kind = game.InstrumentAPXS
	case string(game.InstrumentLIBS):
		kind = game.InstrumentLIBS
	default:
		http.Error(w, "Unknown instrument", http.StatusBadRequest)
		return
	}
	writeSnapshot(w, s.Mission().UseInstrument(kind))
}

// HandleGuess submits one element guess against the active challenge.
func (s *Server) HandleGuess(w http.ResponseWriter, r *http.Request) {
	var req GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	writeSnapshot(w, s.Mission().GuessElement(req.Element))
}

// HandleTransmit uplinks the data buffer to the relay.
func (s *Server) HandleTransmit(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, s.Mission().Transmit())
}

// HandleHibernate powers the rover down.
func (s *Server) HandleHibernate(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, s.Mission().BeginHibernation())
}

// HandleWake rolls the restart sequence. The client sends the raw timing
// stop position; the skill conversion happens here so the widget stays dumb.
func (s *Server) HandleWake(w http.ResponseWriter, r *http.Request) {
	var req WakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	skill := game.TimingSkill(req.StopPosition, timingCenter)
	writeSnapshot(w, s.Mission().AttemptWake(skill))
}

// HandleTickRate changes the scheduler cadence (ticks per second).
func (s *Server) HandleTickRate(w http.ResponseWriter, r *http.Request) {
	var req TickRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.PerSecond <= 0 || req.PerSecond > 60 {
		http.Error(w, "Tick rate out of range", http.StatusBadRequest)
		return
	}
	s.loop.SetRate(req.PerSecond)
	writeSnapshot(w, s.Mission().Snapshot())
}

// HandlePause stops the mission clock.
func (s *Server) HandlePause(w http.ResponseWriter, r *http.Request) {
	s.loop.Pause()
	writeSnapshot(w, s.Mission().Snapshot())
}

// HandleResume restarts the mission clock after a pause.
func (s *Server) HandleResume(w http.ResponseWriter, r *http.Request) {
	s.loop.Resume()
	writeSnapshot(w, s.Mission().Snapshot())
}
