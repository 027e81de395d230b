package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

const (
	URI_WATCH = "/watch"
	URI_STATE = "/state"
)

type Server struct {
	router *way.Router
	Hub    *Hub
}

func NewServer(hub *Hub) *Server {
	s := &Server{Hub: hub}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WATCH, s.Hub.HandleWatch())
	s.router.HandleFunc("GET", URI_STATE, s.Hub.HandleState())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the hub and the HTTP server until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	go s.Hub.Loop(ctx)

	srv := &http.Server{Addr: addr, Handler: s.router}
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Warnf("spectator server shutdown: %v", err)
		}
	}()

	log.WithField("addr", addr).Info("spectator server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
