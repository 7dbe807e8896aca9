package http

import (
	"fmt"
	"net/http"

	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.opentelemetry.io/otel/attribute"
)

func (a *API) serveCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "dashboards_v1_create")
	defer span.End()

	wr := httputil.NewWriter(w)

	var httpReq createRequest
	if err := json.NewDecoder(r.Body).Decode(&httpReq); err != nil {
		wr.Error(fmt.Errorf("failed to parse request: %w", err), http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.KeyValue{
		Key:   "name",
		Value: attribute.StringValue(httpReq.Name),
	})

	req := types.CreateDashboardRequest{
		Name:      httpReq.Name,
		UserID:    httpReq.UserID,
		TimeRange: httpReq.TimeRange,
	}
	d, err := a.service.CreateDashboard(ctx, req)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteData(http.StatusCreated, newDashboard(d))
}

type createRequest struct {
	Name      string `json:"name"`
	UserID    string `json:"user_id"`
	TimeRange string `json:"time_range"`
}
