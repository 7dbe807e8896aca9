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

// serveUpdateWidget applies a partial widget update. Dashboard ownership
// is immutable; only placement, size and config can change.
func (a *API) serveUpdateWidget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "dashboards_v1_update_widget")
	defer span.End()

	wr := httputil.NewWriter(w)

	if _, err := parsePathID(r, "id"); err != nil {
		httputil.ProcessError(wr, err)
		return
	}
	widgetID, err := parsePathID(r, "widgetId")
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	span.SetAttributes(attribute.KeyValue{
		Key:   "widget_id",
		Value: attribute.Int64Value(widgetID),
	})

	var httpReq updateWidgetRequest
	if err = json.NewDecoder(r.Body).Decode(&httpReq); err != nil {
		wr.Error(fmt.Errorf("failed to parse request: %w", err), http.StatusBadRequest)
		return
	}

	req := types.UpdateWidgetRequest{
		ID:    widgetID,
		GridX: httpReq.GridX,
		GridY: httpReq.GridY,
	}
	if httpReq.Size != nil {
		size := types.WidgetSize(*httpReq.Size)
		req.Size = &size
	}
	if httpReq.Config != nil {
		config := string(httpReq.Config)
		req.Config = &config
	}

	wgt, err := a.service.UpdateWidget(ctx, req)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteData(http.StatusOK, newWidget(wgt))
}

type updateWidgetRequest struct {
	GridX  *int32              `json:"grid_x"`
	GridY  *int32              `json:"grid_y"`
	Size   *string             `json:"size"`
	Config jsoniter.RawMessage `json:"widget_config"`
}
