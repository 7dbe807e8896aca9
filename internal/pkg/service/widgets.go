package service

import (
	"context"

	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
)

// AddWidget in underlying repository. Grid coordinates accept any integer,
// negative included; only presence is validated, at the facade.
func (s *service) AddWidget(ctx context.Context, req types.AddWidgetRequest) (types.Widget, error) {
	if err := checkID("dashboard_id", req.DashboardID); err != nil {
		return types.Widget{}, err
	}
	if req.WidgetType == "" {
		return types.Widget{}, types.NewErrInvalidRequestField("empty 'widget_type'")
	}
	if req.Size == "" {
		req.Size = types.DefaultWidgetSize
	}
	if !req.Size.Valid() {
		return types.Widget{}, types.NewErrInvalidRequestField("invalid 'size'")
	}
	if req.Config == "" {
		req.Config = types.DefaultWidgetConfig
	}

	return s.repo.Widgets.Add(ctx, req)
}

// UpdateWidget in underlying repository.
func (s *service) UpdateWidget(ctx context.Context, req types.UpdateWidgetRequest) (types.Widget, error) {
	if err := checkID("id", req.ID); err != nil {
		return types.Widget{}, err
	}
	if req.IsEmpty() {
		return types.Widget{}, types.ErrEmptyUpdateRequest
	}
	if req.Size != nil && !req.Size.Valid() {
		return types.Widget{}, types.NewErrInvalidRequestField("invalid 'size'")
	}

	return s.repo.Widgets.Update(ctx, req)
}

// RemoveWidget in underlying repository. The repository reports
// non-existence as a boolean; it becomes not-found here so the facade
// can answer 404 on repeated deletes.
func (s *service) RemoveWidget(ctx context.Context, id int64) error {
	if err := checkID("id", id); err != nil {
		return err
	}

	deleted, err := s.repo.Widgets.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return types.NewErrNotFound("widget")
	}

	return nil
}
