package server

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/planets/model"
)

const timeout = 200 * time.Millisecond

func NewHub() *Hub {
	return &Hub{
		snapshots:  make(chan model.Snapshot, 16),
		register:   make(chan *Watcher),
		unregister: make(chan *Watcher),
		states:     make(chan chan *model.Snapshot),
		watchers:   make(map[*Watcher]struct{}),
		Upgrader:   &websocket.Upgrader{},
	}
}

// Publish never blocks the game loop; snapshots are dropped when the hub
// falls behind.
func (h *Hub) Publish(s model.Snapshot) {
	select {
	case h.snapshots <- s:
	default:
		log.Warn("Hub.Publish queue full, dropping snapshot")
	}
}

func (h *Hub) Loop(ctx context.Context) {
	log.Debug("Hub.Loop starting")
	for {
		select {
		case <-ctx.Done():
			for w := range h.watchers {
				h.drop(w)
			}
			log.Debug("Hub.Loop ended")
			return
		case s := <-h.snapshots:
			h.last = &s
			for w := range h.watchers {
				select {
				case w.MessagesToSend <- s:
				default:
					log.Warn("Hub.Loop watcher too slow, disconnecting")
					h.drop(w)
				}
			}
		case w := <-h.register:
			h.watchers[w] = struct{}{}
			if h.last != nil {
				w.MessagesToSend <- *h.last
			}
			log.WithField("watchers", len(h.watchers)).Info("spectator joined")
		case w := <-h.unregister:
			if _, ok := h.watchers[w]; ok {
				h.drop(w)
				log.WithField("watchers", len(h.watchers)).Info("spectator left")
			}
		case reply := <-h.states:
			if h.last == nil {
				reply <- nil
			} else {
				s := *h.last
				reply <- &s
			}
		}
	}
}

func (h *Hub) drop(w *Watcher) {
	delete(h.watchers, w)
	close(w.MessagesToSend)
}

// HandleWatch upgrades to a websocket and streams gob-encoded snapshots
// until either side goes away.
func (h *Hub) HandleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleWatch websocket upgrade err %v", err)
			return
		}
		defer conn.Close()

		watcher := &Watcher{
			Conn:           conn,
			MessagesToSend: make(chan model.Snapshot, 10),
		}
		select {
		case h.register <- watcher:
		case <-time.After(timeout):
			log.Warn("HandleWatch register TIMEOUTED")
			return
		}

		go watcher.LoopChannelRead(h)
		watcher.LoopChannelWrite()
	}
}

// HandleState answers with the last snapshot as JSON.
func (h *Hub) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan *model.Snapshot, 1)
		select {
		case h.states <- reply:
		case <-time.After(timeout):
			w.WriteHeader(http.StatusRequestTimeout)
			return
		}

		var s *model.Snapshot
		select {
		case s = <-reply:
		case <-time.After(timeout):
			w.WriteHeader(http.StatusRequestTimeout)
			return
		}
		if s == nil {
			http.Error(w, "no planet placed yet", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s); err != nil {
			log.Warnf("HandleState encode err %v", err)
		}
	}
}

// LoopChannelRead only watches for the connection to close; spectators
// cannot send moves.
func (ws *Watcher) LoopChannelRead(h *Hub) {
	for {
		if _, _, err := ws.Conn.NextReader(); err != nil {
			log.Debugf("LoopChannelRead ended: %v", err)
			break
		}
	}
	select {
	case h.unregister <- ws:
	case <-time.After(timeout):
	}
}

// LoopChannelWrite runs until the hub closes MessagesToSend or a write fails.
func (ws *Watcher) LoopChannelWrite() {
	for s := range ws.MessagesToSend {
		w, err := ws.Conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			log.Warnf("LoopChannelWrite cant get writer %v", err)
			return
		}
		if err := gob.NewEncoder(w).Encode(s); err != nil {
			log.Warnf("LoopChannelWrite cant encode %v", err)
			return
		}
		if err := w.Close(); err != nil {
			log.Warnf("LoopChannelWrite cant flush %v", err)
			return
		}
		ws.DebugOutMessages++
	}
	_ = ws.Conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(time.Second))
}
