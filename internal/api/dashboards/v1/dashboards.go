package dashboards_v1

import (
	"github.com/go-chi/chi/v5"
	http_api "github.com/tuolden/health-dashboard-sub003/internal/api/dashboards/v1/http"
	"github.com/tuolden/health-dashboard-sub003/internal/pkg/service"
)

type Dashboards struct {
	httpAPI *http_api.API
}

func New(svc service.Service) *Dashboards {
	return &Dashboards{
		httpAPI: http_api.New(svc),
	}
}

func (d *Dashboards) HTTPRouter() chi.Router {
	return d.httpAPI.Router()
}
