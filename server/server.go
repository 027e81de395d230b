package server

import (
	"github.com/gorilla/websocket"

	"github.com/zucenko/planets/model"
)

// Hub hands every published snapshot to the connected spectators. All of
// its state is owned by the Loop goroutine.
type Hub struct {
	snapshots  chan model.Snapshot
	register   chan *Watcher
	unregister chan *Watcher
	states     chan chan *model.Snapshot
	watchers   map[*Watcher]struct{}
	last       *model.Snapshot
	Upgrader   *websocket.Upgrader
}

// Watcher is one spectator connection.
type Watcher struct {
	Conn           *websocket.Conn
	MessagesToSend chan model.Snapshot

	DebugOutMessages int
}
