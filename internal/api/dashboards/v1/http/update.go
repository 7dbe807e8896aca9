package http

import (
	"fmt"
	"net/http"

	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// serveUpdate applies a partial dashboard update. Owner and id are not
// mutable through this endpoint.
func (a *API) serveUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "dashboards_v1_update")
	defer span.End()

	wr := httputil.NewWriter(w)

	id, err := parsePathID(r, "id")
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	span.SetAttributes(attribute.KeyValue{
		Key:   "id",
		Value: attribute.Int64Value(id),
	})

	var httpReq updateRequest
	if err = json.NewDecoder(r.Body).Decode(&httpReq); err != nil {
		wr.Error(fmt.Errorf("failed to parse request: %w", err), http.StatusBadRequest)
		return
	}

	req := types.UpdateDashboardRequest{
		ID:        id,
		Name:      httpReq.Name,
		TimeRange: httpReq.TimeRange,
	}
	d, err := a.service.UpdateDashboard(ctx, req)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteData(http.StatusOK, newDashboard(d))
}

type updateRequest struct {
	Name      *string `json:"name"`
	TimeRange *string `json:"time_range"`
}
