// Package live fans a single solver progress stream out to any number of
// connected preview clients, using the fan-out/pipeline helpers the
// project's earlier reactive dashboard built on.
package live

import (
	"sync"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/ghsnake/routesolver/internal/geom"
)

// Progress is one pose of a solved route, broadcast to every subscriber
// while the route is replayed.
type Progress struct {
	Step int
	Head geom.Point
	Done bool
}

// Hub broadcasts Progress values to a fixed number of subscriber slots,
// built once up front the way channerics.Broadcast requires.
type Hub struct {
	source chan Progress
	subs   []<-chan Progress

	mu   sync.Mutex
	next int
}

// NewHub creates a Hub with maxSubscribers channels, all closed when done
// fires.
func NewHub(done <-chan struct{}, maxSubscribers int) *Hub {
	source := make(chan Progress, 64)
	subs := channerics.Broadcast(done, source, maxSubscribers)
	return &Hub{source: source, subs: subs}
}

// Publish sends p to every subscriber, dropping it if the source buffer is
// full rather than blocking the solver's caller.
func (h *Hub) Publish(p Progress) {
	select {
	case h.source <- p:
	default:
	}
}

// Subscribe hands out the next unused subscriber channel, or ok=false once
// every slot has been claimed.
func (h *Hub) Subscribe() (ch <-chan Progress, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.next >= len(h.subs) {
		return nil, false
	}
	ch = h.subs[h.next]
	h.next++
	return ch, true
}
