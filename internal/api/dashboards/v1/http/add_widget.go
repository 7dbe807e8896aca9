package http

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// serveAddWidget places a new widget on the dashboard. Grid coordinates
// are required but not bounds-checked; size and config are optional.
func (a *API) serveAddWidget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "dashboards_v1_add_widget")
	defer span.End()

	wr := httputil.NewWriter(w)

	dashboardID, err := parsePathID(r, "id")
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	var httpReq addWidgetRequest
	if err = json.NewDecoder(r.Body).Decode(&httpReq); err != nil {
		wr.Error(fmt.Errorf("failed to parse request: %w", err), http.StatusBadRequest)
		return
	}
	if httpReq.GridX == nil {
		httputil.ProcessError(wr, types.NewErrInvalidRequestField("missing 'grid_x'"))
		return
	}
	if httpReq.GridY == nil {
		httputil.ProcessError(wr, types.NewErrInvalidRequestField("missing 'grid_y'"))
		return
	}

	span.SetAttributes(
		attribute.KeyValue{
			Key:   "dashboard_id",
			Value: attribute.Int64Value(dashboardID),
		},
		attribute.KeyValue{
			Key:   "widget_type",
			Value: attribute.StringValue(httpReq.WidgetType),
		},
	)

	req := types.AddWidgetRequest{
		DashboardID: dashboardID,
		WidgetType:  httpReq.WidgetType,
		GridX:       *httpReq.GridX,
		GridY:       *httpReq.GridY,
		Size:        types.WidgetSize(httpReq.Size),
		Config:      string(httpReq.Config),
	}
	wgt, err := a.service.AddWidget(ctx, req)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteData(http.StatusCreated, newWidget(wgt))
}

type addWidgetRequest struct {
	WidgetType string              `json:"widget_type"`
	GridX      *int32              `json:"grid_x"`
	GridY      *int32              `json:"grid_y"`
	Size       string              `json:"size"`
	Config     jsoniter.RawMessage `json:"widget_config"`
}
