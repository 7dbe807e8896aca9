package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
)

type (
	Dashboards interface {
		GetAll(context.Context, types.GetDashboardsRequest) (types.Dashboards, error)
		GetByID(context.Context, int64) (types.Dashboard, error)
		Create(context.Context, types.CreateDashboardRequest) (types.Dashboard, error)
		Update(context.Context, types.UpdateDashboardRequest) (types.Dashboard, error)
	}

	Widgets interface {
		Add(context.Context, types.AddWidgetRequest) (types.Widget, error)
		Update(context.Context, types.UpdateWidgetRequest) (types.Widget, error)
		Remove(context.Context, int64) (bool, error)
	}

	Schema interface {
		Init(context.Context) error
	}
)

type Repository struct {
	Dashboards
	Widgets
	Schema
}

func New(pool *pgxpool.Pool, requestTimeout time.Duration) *Repository {
	p := newPool(pool, requestTimeout)
	return &Repository{
		Dashboards: newDashboardsRepository(p),
		Widgets:    newWidgetsRepository(p),
		Schema:     newSchemaRepository(p),
	}
}
