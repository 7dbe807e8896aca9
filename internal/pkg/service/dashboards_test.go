package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/internal/pkg/repository"
	repo_mock "github.com/tuolden/health-dashboard-sub003/internal/pkg/repository/mock"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Service, *repo_mock.MockDashboards, *repo_mock.MockWidgets) {
	ctl := gomock.NewController(t)
	mockedDashboards := repo_mock.NewMockDashboards(ctl)
	mockedWidgets := repo_mock.NewMockWidgets(ctl)
	s := New(&repository.Repository{
		Dashboards: mockedDashboards,
		Widgets:    mockedWidgets,
	})
	return s, mockedDashboards, mockedWidgets
}

func TestGetDashboards(t *testing.T) {
	s, mockedDashboards, _ := newTestService(t)

	// no user supplied: the sentinel owner is used
	mockedDashboards.EXPECT().
		GetAll(gomock.Any(), types.GetDashboardsRequest{UserID: types.DefaultUserID}).
		Return(types.Dashboards{}, nil).Times(1)

	_, err := s.GetDashboards(context.Background(), types.GetDashboardsRequest{})
	require.NoError(t, err)

	mockedDashboards.EXPECT().
		GetAll(gomock.Any(), types.GetDashboardsRequest{UserID: "alice"}).
		Return(types.Dashboards{}, nil).Times(1)

	_, err = s.GetDashboards(context.Background(), types.GetDashboardsRequest{UserID: "alice"})
	require.NoError(t, err)
}

func TestCreateDashboard(t *testing.T) {
	tests := []struct {
		name string

		req     types.CreateDashboardRequest
		repoReq *types.CreateDashboardRequest
		wantErr error
	}{
		{
			name: "defaults_applied",
			req:  types.CreateDashboardRequest{Name: "My Health Overview"},
			repoReq: &types.CreateDashboardRequest{
				Name:      "My Health Overview",
				UserID:    types.DefaultUserID,
				TimeRange: types.DefaultTimeRange,
			},
		},
		{
			name: "explicit_fields_kept",
			req: types.CreateDashboardRequest{
				Name:      "Sleep",
				UserID:    "alice",
				TimeRange: "this_week",
			},
			repoReq: &types.CreateDashboardRequest{
				Name:      "Sleep",
				UserID:    "alice",
				TimeRange: "this_week",
			},
		},
		{
			// validation gate: rejected before any storage access
			name:    "err_empty_name",
			req:     types.CreateDashboardRequest{UserID: "alice"},
			wantErr: types.ErrInvalidRequestField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockedDashboards, _ := newTestService(t)
			if tt.repoReq != nil {
				mockedDashboards.EXPECT().
					Create(gomock.Any(), *tt.repoReq).
					Return(types.Dashboard{ID: 1, Name: tt.repoReq.Name}, nil).Times(1)
			}

			d, err := s.CreateDashboard(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Name, d.Name)
		})
	}
}

func TestGetDashboardByID(t *testing.T) {
	s, mockedDashboards, _ := newTestService(t)

	_, err := s.GetDashboardByID(context.Background(), 0)
	require.ErrorIs(t, err, types.ErrInvalidRequestField)

	mockedDashboards.EXPECT().
		GetByID(gomock.Any(), int64(7)).
		Return(types.Dashboard{}, types.NewErrNotFound("dashboard")).Times(1)

	_, err = s.GetDashboardByID(context.Background(), 7)
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateDashboard(t *testing.T) {
	name := "renamed"
	timeRange := "this_week"

	tests := []struct {
		name string

		req      types.UpdateDashboardRequest
		wantRepo bool
		wantErr  error
	}{
		{
			name:     "partial_name_only",
			req:      types.UpdateDashboardRequest{ID: 1, Name: &name},
			wantRepo: true,
		},
		{
			name:     "partial_time_range_only",
			req:      types.UpdateDashboardRequest{ID: 1, TimeRange: &timeRange},
			wantRepo: true,
		},
		{
			name:    "err_empty_update",
			req:     types.UpdateDashboardRequest{ID: 1},
			wantErr: types.ErrEmptyUpdateRequest,
		},
		{
			name:    "err_bad_id",
			req:     types.UpdateDashboardRequest{ID: -1, Name: &name},
			wantErr: types.ErrInvalidRequestField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockedDashboards, _ := newTestService(t)
			if tt.wantRepo {
				mockedDashboards.EXPECT().
					Update(gomock.Any(), tt.req).
					Return(types.Dashboard{ID: tt.req.ID}, nil).Times(1)
			}

			_, err := s.UpdateDashboard(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRepoErrorPassthrough(t *testing.T) {
	s, mockedDashboards, _ := newTestService(t)

	repoErr := errors.New("connection refused")
	mockedDashboards.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		Return(nil, repoErr).Times(1)

	_, err := s.GetDashboards(context.Background(), types.GetDashboardsRequest{})
	require.ErrorIs(t, err, repoErr)
	require.NotErrorIs(t, err, types.ErrNotFound)
}
