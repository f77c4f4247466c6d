// Command ghsnake-preview is a small HTTP+websocket server for trying the
// solver interactively: POST a calendar document to /solve, then watch the
// route replay over /ws or fetch the finished /route.svg. It replaces the
// project's earlier pair of throwaway smoke-test binaries (a bare index
// handler, and a one-shot client that POSTed a canned request) with one
// server exercising the same request/response shape against this domain.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/ghsnake/routesolver/internal/calendar"
	"github.com/ghsnake/routesolver/internal/config"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/live"
	"github.com/ghsnake/routesolver/internal/render"
	"github.com/ghsnake/routesolver/internal/snake"
	"github.com/ghsnake/routesolver/internal/solver"
)

// replayStep is how long the server pauses between poses when replaying a
// finished route to connected websocket clients.
const replayStep = 80 * time.Millisecond

const maxPreviewSubscribers = 8

type server struct {
	mu      sync.RWMutex
	lastSVG []byte
	hub     *live.Hub
}

func main() {
	addr := flag.String("addr", config.Default().PreviewAddr, "address to listen on")
	flag.Parse()

	s := &server{hub: live.NewHub(context.Background().Done(), maxPreviewSubscribers)}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/solve", s.handleSolve).Methods(http.MethodPost)
	r.HandleFunc("/route.svg", s.handleSVG).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)

	slog.Info("ghsnake-preview listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, r); err != nil {
		slog.Error("preview server stopped", "error", err)
	}
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"service": "ghsnake-preview",
		"version": "0.0.1",
	})
}

func (s *server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var doc calendar.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	original, err := grid.New(doc.ToColors())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	work := original.Clone()
	defaults := config.Default()
	start, err := snake.Horizontal(defaults.SnakeLength)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	route, err := solver.Solve(r.Context(), work, start)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var buf bytes.Buffer
	render.SVG(&buf, original, route)

	s.mu.Lock()
	s.lastSVG = buf.Bytes()
	s.mu.Unlock()

	go s.replay(route)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"poses": len(route.Poses)})
}

// replay publishes each pose of a just-solved route to the hub, one at a
// time, so a client connected to /ws sees the route walk out the way it
// would inside a browser animation.
func (s *server) replay(route *solver.Route) {
	for i, pose := range route.Poses {
		s.hub.Publish(live.Progress{
			Step: i,
			Head: pose.Head(),
			Done: i == len(route.Poses)-1,
		})
		time.Sleep(replayStep)
	}
}

func (s *server) handleSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	svg := s.lastSVG
	s.mu.RUnlock()

	if svg == nil {
		http.Error(w, "no route solved yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	live.ServeWS(s.hub, w, r)
}
