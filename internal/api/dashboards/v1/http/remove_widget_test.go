package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"go.uber.org/mock/gomock"
)

func TestServeRemoveWidget(t *testing.T) {
	type mockArgs struct {
		id      int64
		deleted bool
		err     error
	}

	tests := []struct {
		name string

		id           string
		widgetID     string
		wantRespBody string
		wantStatus   int

		mockArgs *mockArgs
	}{
		{
			name:         "success",
			id:           "1",
			widgetID:     "11",
			wantRespBody: `{"success":true}`,
			wantStatus:   http.StatusOK,
			mockArgs: &mockArgs{
				id:      11,
				deleted: true,
			},
		},
		{
			name:         "err_already_removed",
			id:           "1",
			widgetID:     "11",
			wantRespBody: `{"success":false,"error":"not found: widget"}`,
			wantStatus:   http.StatusNotFound,
			mockArgs: &mockArgs{
				id:      11,
				deleted: false,
			},
		},
		{
			name:         "err_invalid_widget_id",
			id:           "1",
			widgetID:     "abc",
			wantRespBody: `{"success":false,"error":"invalid request field: invalid 'widgetId'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_invalid_dashboard_id",
			id:           "abc",
			widgetID:     "11",
			wantRespBody: `{"success":false,"error":"invalid request field: invalid 'id'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_repo_random",
			id:           "1",
			widgetID:     "11",
			wantRespBody: `{"success":false,"error":"failed to fetch"}`,
			wantStatus:   http.StatusInternalServerError,
			mockArgs: &mockArgs{
				id:  11,
				err: errors.New("random repo err"),
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, _, mockedWidgets := newTestData(t)
			req := httptest.NewRequest(http.MethodDelete,
				fmt.Sprintf("/dashboards/%s/widgets/%s", tt.id, tt.widgetID), http.NoBody)
			rCtx := chi.NewRouteContext()
			rCtx.URLParams.Add("id", tt.id)
			rCtx.URLParams.Add("widgetId", tt.widgetID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rCtx))

			if tt.mockArgs != nil {
				mockedWidgets.EXPECT().Remove(gomock.Any(), tt.mockArgs.id).
					Return(tt.mockArgs.deleted, tt.mockArgs.err).Times(1)
			}

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveRemoveWidget,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}
