package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/internal/pkg/service"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type API struct {
	service service.Service
}

func New(svc service.Service) *API {
	return &API{
		service: svc,
	}
}

func (a *API) Router() chi.Router {
	mux := chi.NewMux()

	mux.Get("/", a.serveGetAll)
	mux.Post("/", a.serveCreate)
	mux.Get("/{id}", a.serveGetByID)
	mux.Put("/{id}", a.serveUpdate)
	mux.Post("/{id}/widgets", a.serveAddWidget)
	mux.Put("/{id}/widgets/{widgetId}", a.serveUpdateWidget)
	mux.Delete("/{id}/widgets/{widgetId}", a.serveRemoveWidget)

	return mux
}

// parsePathID rejects non-numeric path ids before any service call.
func parsePathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, types.NewErrInvalidRequestField("invalid '" + param + "'")
	}
	return id, nil
}

type dashboard struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	TimeRange string    `json:"time_range"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newDashboard(t types.Dashboard) dashboard {
	return dashboard{
		ID:        t.ID,
		Name:      t.Name,
		UserID:    t.UserID,
		TimeRange: t.TimeRange,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type dashboards []dashboard

func newDashboards(t types.Dashboards) dashboards {
	res := make(dashboards, len(t))
	for i, d := range t {
		res[i] = newDashboard(d)
	}
	return res
}

type dashboardWithWidgets struct {
	dashboard
	Widgets widgets `json:"widgets"`
}

func newDashboardWithWidgets(t types.Dashboard) dashboardWithWidgets {
	return dashboardWithWidgets{
		dashboard: newDashboard(t),
		Widgets:   newWidgets(t.Widgets),
	}
}

type widget struct {
	ID          int64               `json:"id"`
	DashboardID int64               `json:"dashboard_id"`
	WidgetType  string              `json:"widget_type"`
	GridX       int32               `json:"grid_x"`
	GridY       int32               `json:"grid_y"`
	Size        string              `json:"size"`
	Config      jsoniter.RawMessage `json:"widget_config"`
	CreatedAt   time.Time           `json:"created_at"`
}

func newWidget(t types.Widget) widget {
	return widget{
		ID:          t.ID,
		DashboardID: t.DashboardID,
		WidgetType:  t.WidgetType,
		GridX:       t.GridX,
		GridY:       t.GridY,
		Size:        string(t.Size),
		Config:      jsoniter.RawMessage(t.Config),
		CreatedAt:   t.CreatedAt,
	}
}

type widgets []widget

func newWidgets(t types.Widgets) widgets {
	res := make(widgets, len(t))
	for i, w := range t {
		res[i] = newWidget(w)
	}
	return res
}
