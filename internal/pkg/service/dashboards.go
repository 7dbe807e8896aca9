package service

import (
	"context"

	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
)

// GetDashboards from underlying repository. The sentinel owner is applied
// when no user was supplied.
func (s *service) GetDashboards(ctx context.Context, req types.GetDashboardsRequest) (types.Dashboards, error) {
	if req.UserID == "" {
		req.UserID = types.DefaultUserID
	}

	return s.repo.Dashboards.GetAll(ctx, req)
}

// GetDashboardByID from underlying repository, widgets included.
func (s *service) GetDashboardByID(ctx context.Context, id int64) (types.Dashboard, error) {
	if err := checkID("id", id); err != nil {
		return types.Dashboard{}, err
	}

	return s.repo.Dashboards.GetByID(ctx, id)
}

// CreateDashboard in underlying repository. Name is required; owner and
// time range fall back to their defaults before any storage access.
func (s *service) CreateDashboard(ctx context.Context, req types.CreateDashboardRequest) (types.Dashboard, error) {
	if req.Name == "" {
		return types.Dashboard{}, types.NewErrInvalidRequestField("empty 'name'")
	}
	if req.UserID == "" {
		req.UserID = types.DefaultUserID
	}
	if req.TimeRange == "" {
		req.TimeRange = types.DefaultTimeRange
	}

	return s.repo.Dashboards.Create(ctx, req)
}

// UpdateDashboard in underlying repository.
func (s *service) UpdateDashboard(ctx context.Context, req types.UpdateDashboardRequest) (types.Dashboard, error) {
	if err := checkID("id", req.ID); err != nil {
		return types.Dashboard{}, err
	}
	if req.IsEmpty() {
		return types.Dashboard{}, types.ErrEmptyUpdateRequest
	}

	return s.repo.Dashboards.Update(ctx, req)
}
