package main

import (
	"bytes"
	"context"
	"encoding/gob"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/planets/model"
)

func main() {
	url := flag.String("url", "ws://localhost:8080/watch", "spectator feed")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.Fatalf("spectate: %v", err)
	}
	log.SetLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *url); err != nil {
		log.Fatalf("spectate: %v", err)
	}
}

func run(ctx context.Context, url string) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()
	log.Infof("watching %s", url)

	go func() {
		<-ctx.Done()
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		var s model.Snapshot
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		log.WithFields(log.Fields{
			"turn":    s.Turn.Name(),
			"placed":  s.Placed,
			"outcome": s.Outcome.Name(),
		}).Infof("\n%s", s.ASCII())
	}
}
