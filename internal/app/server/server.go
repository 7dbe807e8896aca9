package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tuolden/health-dashboard-sub003/internal/api"
	"github.com/tuolden/health-dashboard-sub003/internal/app/config"
	"github.com/tuolden/health-dashboard-sub003/internal/app/mw"
)

// Server contains application dependencies.
type Server struct {
	config      *config.Server
	debugServer *http.Server
	httpServer  *http.Server

	rateLimiters map[string]map[string]mw.RateLimiter // rate limiter by api and user
}

// New returns a new Server.
func New(ctx context.Context, cfg *config.Server, registrar *api.Registrar) (*Server, error) {
	s := &Server{config: cfg}

	if err := s.init(ctx, registrar); err != nil {
		return nil, fmt.Errorf("init server: %w", err)
	}

	return s, nil
}
