// Package api Health Dashboard Server.
//
//	@title		Health Dashboard Server
//	@version	1.0
//
//	@accept		json
//	@produce	json
package api

import (
	"github.com/go-chi/chi/v5"
	dashboards_v1_api "github.com/tuolden/health-dashboard-sub003/internal/api/dashboards/v1"
)

// Registrar is registrar of HTTP handlers.
type Registrar struct {
	dashboardsV1 *dashboards_v1_api.Dashboards
}

// NewRegistrar returns new registrar instance.
func NewRegistrar(dashboardsV1 *dashboards_v1_api.Dashboards) *Registrar {
	return &Registrar{
		dashboardsV1: dashboardsV1,
	}
}

// RegisterHTTPHandlers registers all handlers for mux.
func (r *Registrar) RegisterHTTPHandlers(mux *chi.Mux) {
	if r.dashboardsV1 != nil {
		mux.Mount("/dashboards", r.dashboardsV1.HTTPRouter())
	}
}
