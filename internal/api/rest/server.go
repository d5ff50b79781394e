// Package rest exposes the platform over HTTP JSON: profiles, projects,
// the collaboration request lifecycle and the notification inbox.
package rest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/reelcrew/reelcrew/internal/collab"
	"github.com/reelcrew/reelcrew/internal/identity"
	"github.com/reelcrew/reelcrew/internal/notification"
	"github.com/reelcrew/reelcrew/internal/platform/timeouts"
	"github.com/reelcrew/reelcrew/internal/project"
)

// Config defines the inputs for the HTTP API server.
type Config struct {
	Addr          string
	Users         *identity.Service
	Projects      *project.Service
	Collabs       *collab.Service
	Notifications *notification.Service
}

// Server hosts the platform HTTP API.
type Server struct {
	addr       string
	httpServer *http.Server
}

// NewServer builds a configured API server.
func NewServer(config Config) (*Server, error) {
	addr := strings.TrimSpace(config.Addr)
	if addr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Users == nil || config.Projects == nil || config.Collabs == nil || config.Notifications == nil {
		return nil, errors.New("all services are required")
	}

	handler := &apiHandler{
		users:         config.Users,
		projects:      config.Projects,
		collabs:       config.Collabs,
		notifications: config.Notifications,
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           withRequestContext(handler.routes()),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		addr:       addr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("api server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("api listening on %s", s.addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// apiHandler carries the domain services behind the HTTP routes.
type apiHandler struct {
	users         *identity.Service
	projects      *project.Service
	collabs       *collab.Service
	notifications *notification.Service
}
