package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeWait = 2 * time.Second

// ServeWS upgrades r into a websocket connection and streams every
// Progress value from a freshly claimed Hub subscription until the
// subscription closes or the write fails.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	sub, ok := hub.Subscribe()
	if !ok {
		http.Error(w, "no subscriber slots available", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("live: upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for p := range sub {
		payload, err := json.Marshal(p)
		if err != nil {
			slog.Warn("live: marshal progress", "error", err)
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			slog.Debug("live: write failed, closing", "error", err)
			return
		}
		if p.Done {
			return
		}
	}
}
