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

func TestServeUpdate(t *testing.T) {
	createdAt := time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)
	updatedAt := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)

	newName := "renamed"
	newTimeRange := "last_week"

	type mockArgs struct {
		req  types.UpdateDashboardRequest
		resp types.Dashboard
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
			name:    "success_full",
			id:      "1",
			reqBody: `{"name":"renamed","time_range":"last_week"}`,
			wantRespBody: `{"success":true,"data":` +
				`{"id":1,"name":"renamed","user_id":"alice","time_range":"last_week","created_at":"2026-03-02T10:30:00Z","updated_at":"2026-03-03T08:00:00Z"}}`,
			wantStatus: http.StatusOK,
			mockArgs: &mockArgs{
				req: types.UpdateDashboardRequest{
					ID:        1,
					Name:      &newName,
					TimeRange: &newTimeRange,
				},
				resp: types.Dashboard{
					ID:        1,
					Name:      newName,
					UserID:    "alice",
					TimeRange: newTimeRange,
					CreatedAt: createdAt,
					UpdatedAt: updatedAt,
				},
			},
		},
		{
			name:    "success_name_only",
			id:      "1",
			reqBody: `{"name":"renamed"}`,
			wantRespBody: `{"success":true,"data":` +
				`{"id":1,"name":"renamed","user_id":"alice","time_range":"last_month","created_at":"2026-03-02T10:30:00Z","updated_at":"2026-03-03T08:00:00Z"}}`,
			wantStatus: http.StatusOK,
			mockArgs: &mockArgs{
				req: types.UpdateDashboardRequest{
					ID:   1,
					Name: &newName,
				},
				resp: types.Dashboard{
					ID:        1,
					Name:      newName,
					UserID:    "alice",
					TimeRange: "last_month",
					CreatedAt: createdAt,
					UpdatedAt: updatedAt,
				},
			},
		},
		{
			name:         "err_empty_update",
			id:           "1",
			reqBody:      `{}`,
			wantRespBody: `{"success":false,"error":"empty update request"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_invalid_id",
			id:           "abc",
			reqBody:      `{"name":"renamed"}`,
			wantRespBody: `{"success":false,"error":"invalid request field: invalid 'id'"}`,
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "err_repo_not_found",
			id:           "42",
			reqBody:      `{"name":"renamed"}`,
			wantRespBody: `{"success":false,"error":"not found: dashboard"}`,
			wantStatus:   http.StatusNotFound,
			mockArgs: &mockArgs{
				req: types.UpdateDashboardRequest{
					ID:   42,
					Name: &newName,
				},
				err: types.NewErrNotFound("dashboard"),
			},
		},
		{
			name:         "err_repo_random",
			id:           "1",
			reqBody:      `{"name":"renamed"}`,
			wantRespBody: `{"success":false,"error":"failed to fetch"}`,
			wantStatus:   http.StatusInternalServerError,
			mockArgs: &mockArgs{
				req: types.UpdateDashboardRequest{
					ID:   1,
					Name: &newName,
				},
				err: errors.New("random repo err"),
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, mockedDashboards, _ := newTestData(t)
			req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/dashboards/%s", tt.id), strings.NewReader(tt.reqBody))
			rCtx := chi.NewRouteContext()
			rCtx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rCtx))

			if tt.mockArgs != nil {
				mockedDashboards.EXPECT().Update(gomock.Any(), tt.mockArgs.req).
					Return(tt.mockArgs.resp, tt.mockArgs.err).Times(1)
			}

			httputil.DoTestHTTP(t, httputil.TestDataHTTP{
				Req:          req,
				Handler:      api.serveUpdate,
				WantRespBody: tt.wantRespBody,
				WantStatus:   tt.wantStatus,
			})
		})
	}
}
