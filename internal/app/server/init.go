package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tuolden/health-dashboard-sub003/internal/api"
	"github.com/tuolden/health-dashboard-sub003/internal/app/mw"
	"github.com/tuolden/health-dashboard-sub003/logger"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.uber.org/zap"
)

const (
	defaultCORSAllowedOrigins = "*"
	maxHTTPHeaderBytes        = 1 << 12 // 4 KiB
)

var defaultCORSAllowedMethods = []string{"HEAD", "GET", "POST", "PUT", "DELETE"}

func (s *Server) init(ctx context.Context, registrar *api.Registrar) error {
	if err := s.prepareRateLimiters(); err != nil {
		return err
	}

	s.prepareHTTPServer(ctx, registrar)
	s.prepareDebugServer(ctx)

	return nil
}

// setupCORS applies CORS policies set in config to the provided mux.
func (s *Server) setupCORS(mux *chi.Mux) {
	allowedOrigins := s.config.CORS.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = append(allowedOrigins, defaultCORSAllowedOrigins)
	}
	allowedMethods := s.config.CORS.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = append(allowedMethods, defaultCORSAllowedMethods...)
	}
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     allowedMethods,
		AllowedHeaders:     s.config.CORS.AllowedHeaders,
		ExposedHeaders:     s.config.CORS.ExposedHeaders,
		AllowCredentials:   s.config.CORS.AllowCredentials,
		MaxAge:             s.config.CORS.MaxAge,
		OptionsPassthrough: s.config.CORS.OptionsPassthrough,
	}))
}

// prepareRateLimiters prepares requests rate limiters based on server config.
func (s *Server) prepareRateLimiters() error {
	if len(s.config.RateLimiters) == 0 {
		return nil
	}

	s.rateLimiters = make(map[string]map[string]mw.RateLimiter)

	for apiName, rateLimiters := range s.config.RateLimiters {
		s.rateLimiters[apiName] = make(map[string]mw.RateLimiter)

		logger.Info("init default rate limiter", zap.String("api", apiName))
		defaultLimiter, err := mw.NewRateLimiter(apiName, rateLimiters.Default)
		if err != nil {
			return fmt.Errorf("init default rate limiter: %w", err)
		}

		s.rateLimiters[apiName][mw.RateLimiterDefaultUser] = defaultLimiter

		for user, rateLimiter := range rateLimiters.SpecialUsers {
			logger.Info(
				"init user rate limiter",
				zap.String("api", apiName),
				zap.String("user", user),
			)
			limiter, err := mw.NewRateLimiter(apiName, rateLimiter)
			if err != nil {
				return fmt.Errorf("init user %q rate limiter: %w", user, err)
			}

			s.rateLimiters[apiName][user] = limiter
		}
	}

	return nil
}

// prepareHTTPServer prepares HTTP server with applied CORS policies and added interceptors.
func (s *Server) prepareHTTPServer(ctx context.Context, registrar *api.Registrar) {
	mux := chi.NewMux()
	if s.config.CORS != nil {
		s.setupCORS(mux)
	}
	interceptors := chi.Middlewares{
		mw.HTTPNotFoundInterceptor(),
		mw.HTTPRecoverInterceptor(),
		mw.HTTPUserInterceptor(),
		mw.HTTPRequestIDInterceptor(),
		mw.HTTPMetricInterceptor(),
		mw.HTTPTraceInterceptor(),
		mw.HTTPLogInterceptor(tracing.NewLogger(logger.Instance)),
	}
	if len(s.rateLimiters) > 0 {
		interceptors = append(interceptors, mw.HTTPRateLimitInterceptor(s.rateLimiters))
	}
	mux.Use(interceptors...)

	registrar.RegisterHTTPHandlers(mux)

	s.httpServer = s.makeHTTPServer(ctx, mux)
}

// prepareDebugServer prepares debug HTTP server mux with health, metrics and pprof handlers.
func (s *Server) prepareDebugServer(ctx context.Context) {
	mux := chi.NewMux()
	if s.config.CORS != nil {
		s.setupCORS(mux)
	}
	interceptors := chi.Middlewares{
		mw.HTTPRecoverInterceptor(),
	}
	mux.Use(interceptors...)
	mux.Handle("/metrics", promhttp.Handler())
	serveHealth(mux)
	servePprof(mux)
	s.debugServer = s.makeHTTPServer(ctx, mux)
}

// makeHTTPServer makes HTTP server from provided mux.
func (s *Server) makeHTTPServer(ctx context.Context, mux *chi.Mux) *http.Server {
	return &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: s.config.HTTPReadHeaderTimeout,
		ReadTimeout:       s.config.HTTPReadTimeout,
		WriteTimeout:      s.config.HTTPWriteTimeout,
		MaxHeaderBytes:    maxHTTPHeaderBytes, // 4 KiB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
}
