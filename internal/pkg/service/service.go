package service

import (
	"context"

	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/internal/pkg/repository"
)

type Service interface {
	GetDashboards(context.Context, types.GetDashboardsRequest) (types.Dashboards, error)
	GetDashboardByID(context.Context, int64) (types.Dashboard, error)
	CreateDashboard(context.Context, types.CreateDashboardRequest) (types.Dashboard, error)
	UpdateDashboard(context.Context, types.UpdateDashboardRequest) (types.Dashboard, error)

	AddWidget(context.Context, types.AddWidgetRequest) (types.Widget, error)
	UpdateWidget(context.Context, types.UpdateWidgetRequest) (types.Widget, error)
	RemoveWidget(context.Context, int64) error
}

type service struct {
	repo *repository.Repository
}

func New(repo *repository.Repository) Service {
	return &service{
		repo: repo,
	}
}

func checkID(name string, id int64) error {
	if id <= 0 {
		return types.NewErrInvalidRequestField("'" + name + "' must be greater than 0")
	}
	return nil
}
