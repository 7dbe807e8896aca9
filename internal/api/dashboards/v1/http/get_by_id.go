package http

import (
	"net/http"

	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// serveGetByID returns the dashboard with its widgets in row-major
// reading order.
func (a *API) serveGetByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "dashboards_v1_get_by_id")
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

	d, err := a.service.GetDashboardByID(ctx, id)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteData(http.StatusOK, newDashboardWithWidgets(d))
}
