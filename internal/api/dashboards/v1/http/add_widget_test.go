package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tuolden/health-dashboard-sub003/internal/api/httputil"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"go.uber.org/mock/gomock"
)

func TestServeAddWidget(t *testing.T) {
	createdAt := time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)

	type mockArgs struct {
		req  types.AddWidgetRequest
		resp types.Widget
		err  error
	}

	tests := []struct {
		name string

		id           string
		reqBody      string
		wantRespBody string
		wantStatus   int

		mockArgs *mockArgs
	}{
		{
			name:    "success",
			id:      "1",
			reqBody: `{"widget_type":"heart_rate","grid_x":2,"grid_y":3,"size":"large","widget_config":{"metric":"bpm"}}`,
			wantRespBody: `{"success":true,"data":` +
				`{"id":11,"dashboard_id":1,"widget_type":"heart_rate","grid_x":2,"grid_y":3,"size":"large","widget_config":{"metric":"bpm"},"created_at":"2026-03-02T10:30:00Z"}}`,
			wantStatus: http.StatusCreated,
			mockArgs: &mockArgs{
				req: types.AddWidgetRequest{
					DashboardID: 1,
					WidgetType:  "heart_rate",
					GridX:       2,
					GridY:       3,
					Size:        types.WidgetSizeLarge,
					Config:      `{"metric":"bpm"}`,
				},
				resp: types.Widget{
					ID:          11,
					DashboardID: 1,
					WidgetType:  "heart_rate",
					GridX:       2,
					GridY:       3,
					Size:        types.WidgetSizeLarge,
					Config:      `{"metric":"bpm"}`,
					CreatedAt:   createdAt,
				},
			},
		},
		{
			name:    "success_defaults",
			id:      "1",
			reqBody: `{"widget_type":"steps","grid_x":0,"grid_y":0}`,
			wantRespBody: `{"success":true,"data":` +
				`{"id":11,"dashboard_id":1,"widget_type":"steps","grid_x":0,"grid_y":0,"size":"medium","widget_config":{},"created_at":"2026-03-02T10:30:00Z"}}`,
			wantStatus: http.StatusCreated,
			mockArgs: &mockArgs{
				req: types.AddWidgetRequest{
					DashboardID: 1,
					WidgetType:  "steps",
					GridX:       0,
					GridY:       0,
					Size:        types.DefaultWidgetSize,
					Config:      types.DefaultWidgetConfig,
				},
				resp: types.Widget{
					ID:          11,
					DashboardID: 1,
					WidgetType:  "steps",
					GridX:       0,
					GridY:       0,
					Size:        types.DefaultWidgetSize,
					Config:      types.DefaultWidgetConfig,
					CreatedAt:   createdAt,
				},
			},
		},
		{
			name:    "success_negative_grid",
			id:      "1",
			reqBody: `{"widget_type":"steps","grid_x":-5,"grid_y":-1}`,
			wantRespBody: `{"success":true,"data":` +
				`{"id":11,"dashboard_id":1,"widget_type":"steps","grid_x":-5,"grid_y":-1,"size":"medium","widget_config":{},"created_at":"2026-03-02T10:30:00Z"}}`,
			wantStatus: http.StatusCreated,
			mockArgs: &mockArgs{
				req: types.AddWidgetRequest{
					DashboardID: 1,
					WidgetType:  "steps",
					GridX:       -5,
					GridY:       -1,
					Size:        types.DefaultWidgetSize,
					Config:      types.DefaultWidgetConfig,
				},
				resp: types.Widget{
					ID:          11,
					DashboardID: 1,
					WidgetType:  "steps",
					GridX:       -5,
					GridY:       -1,
					Size:        types.DefaultWidgetSize,
					Config:      types.DefaultWidgetConfig,
					CreatedAt:   createdAt,
				},
			},
		},
		{
			name:         "err_missing_grid_x",
			id:           "1",
			reqBody:      `{"widget_type":"steps","grid_y":0}`,
			wantRespBody: `{"success":false,"error":"invalid request field: missing 'grid_x'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_missing_grid_y",
			id:           "1",
			reqBody:      `{"widget_type":"steps","grid_x":0}`,
			wantRespBody: `{"success":false,"error":"invalid request field: missing 'grid_y'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_empty_widget_type",
			id:           "1",
			reqBody:      `{"grid_x":0,"grid_y":0}`,
			wantRespBody: `{"success":false,"error":"invalid request field: empty 'widget_type'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_invalid_size",
			id:           "1",
			reqBody:      `{"widget_type":"steps","grid_x":0,"grid_y":0,"size":"huge"}`,
			wantRespBody: `{"success":false,"error":"invalid request field: invalid 'size'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_invalid_dashboard_id",
			id:           "abc",
			reqBody:      `{"widget_type":"steps","grid_x":0,"grid_y":0}`,
			wantRespBody: `{"success":false,"error":"invalid request field: invalid 'id'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_dashboard_not_found",
			id:           "42",
			reqBody:      `{"widget_type":"steps","grid_x":0,"grid_y":0}`,
			wantRespBody: `{"success":false,"error":"not found: dashboard"}`,
			wantStatus:   http.StatusNotFound,
			mockArgs: &mockArgs{
				req: types.AddWidgetRequest{
					DashboardID: 42,
					WidgetType:  "steps",
					GridX:       0,
					GridY:       0,
					Size:        types.DefaultWidgetSize,
					Config:      types.DefaultWidgetConfig,
				},
				err: types.NewErrNotFound("dashboard"),
			},
		},
		{
			name:         "err_repo_random",
			id:           "1",
			reqBody:      `{"widget_type":"steps","grid_x":0,"grid_y":0}`,
			wantRespBody: `{"success":false,"error":"failed to fetch"}`,
			wantStatus:   http.StatusInternalServerError,
			mockArgs: &mockArgs{
				req: types.AddWidgetRequest{
					DashboardID: 1,
					WidgetType:  "steps",
					GridX:       0,
					GridY:       0,
					Size:        types.DefaultWidgetSize,
					Config:      types.DefaultWidgetConfig,
				},
				err: errors.New("random repo err"),
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, _, mockedWidgets := newTestData(t)
			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/dashboards/%s/widgets", tt.id), strings.NewReader(tt.reqBody))
			rCtx := chi.NewRouteContext()
			rCtx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rCtx))

			if tt.mockArgs != nil {
				mockedWidgets.EXPECT().Add(gomock.Any(), tt.mockArgs.req).
					Return(tt.mockArgs.resp, tt.mockArgs.err).Times(1)
			}

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveAddWidget,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}
