package http

import (
	"net/http"

	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// serveGetAll lists the user's dashboards, newest-created first, without
// their widgets.
func (a *API) serveGetAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "dashboards_v1_get_all")
	defer span.End()

	wr := httputil.NewWriter(w)

	userID := r.URL.Query().Get("user_id")

	span.SetAttributes(attribute.KeyValue{
		Key:   "user_id",
		Value: attribute.StringValue(userID),
	})

	req := types.GetDashboardsRequest{
		UserID: userID,
	}
	ds, err := a.service.GetDashboards(ctx, req)
	if err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteList(http.StatusOK, newDashboards(ds), len(ds))
}
