package http

import (
	"net/http"

	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"github.com/tuolden/health-dashboard-sub003/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// serveRemoveWidget deletes the widget. Siblings and the owning dashboard
// are untouched; a repeated delete answers not-found.
func (a *API) serveRemoveWidget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.StartSpan(r.Context(), "dashboards_v1_remove_widget")
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

	if err = a.service.RemoveWidget(ctx, widgetID); err != nil {
		httputil.ProcessError(wr, err)
		return
	}

	wr.WriteSuccess()
}
