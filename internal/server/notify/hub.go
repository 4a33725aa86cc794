// Package notify delivers share events to connected clients.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/vaultshare/internal/server/models"
)

// Broadcast as a target reaches every subscriber except the event's actor.
const Broadcast = "*"

// Event types.
const (
	ShareCreated  = "share.created"
	ShareAccepted = "share.accepted"
	ShareRevoked  = "share.revoked"
	ShareExpired  = "share.expired"
)

// ErrDropped reports subscribers whose buffer was full.
var ErrDropped = errors.New("notification dropped")

// Event is what a subscriber receives. It never carries envelope data.
type Event struct {
	Type      string           `json:"type"`
	ShareID   string           `json:"share_id"`
	ShareKind models.ShareKind `json:"share_kind"`
	Actor     string           `json:"actor"`
	At        time.Time        `json:"at"`
}

// Notifier is the sink services publish to.
type Notifier interface {
	Notify(ctx context.Context, target string, ev Event) error
}

// Subscription is one connected listener.
type Subscription struct {
	id       uint64
	identity string
	ch       chan Event
}

// Events is closed when the subscription is removed.
func (s *Subscription) Events() <-chan Event { return s.ch }

func (s *Subscription) Identity() string { return s.identity }

// Hub is a concurrency-safe registry of subscriptions keyed by identity.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]*Subscription
	nextID uint64
	buffer int
}

// NewHub creates a hub whose subscriptions buffer up to buffer events.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{subs: make(map[string]map[uint64]*Subscription), buffer: buffer}
}

func (h *Hub) Subscribe(identity string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	s := &Subscription{id: h.nextID, identity: identity, ch: make(chan Event, h.buffer)}
	if h.subs[identity] == nil {
		h.subs[identity] = make(map[uint64]*Subscription)
	}
	h.subs[identity][s.id] = s
	return s
}

// Unsubscribe removes s and closes its channel. Calling it twice is safe.
func (h *Hub) Unsubscribe(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[s.identity]
	if _, ok := set[s.id]; !ok {
		return
	}
	delete(set, s.id)
	if len(set) == 0 {
		delete(h.subs, s.identity)
	}
	close(s.ch)
}

// Subscribers returns the number of live subscriptions of identity.
func (h *Hub) Subscribers(identity string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[identity])
}

// Notify delivers ev without blocking. Having nobody listening is not an
// error; a full buffer is.
func (h *Hub) Notify(ctx context.Context, target string, ev Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	var dropped int
	deliver := func(s *Subscription) {
		select {
		case s.ch <- ev:
		default:
			dropped++
		}
	}

	if target == Broadcast {
		for identity, set := range h.subs {
			if identity == ev.Actor {
				continue
			}
			for _, s := range set {
				deliver(s)
			}
		}
	} else {
		for _, s := range h.subs[target] {
			deliver(s)
		}
	}

	if dropped > 0 {
		return fmt.Errorf("%w: %d subscriber(s) of %s", ErrDropped, dropped, target)
	}
	return nil
}
