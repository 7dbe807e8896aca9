package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	sqlb "github.com/tuolden/health-dashboard-sub003/internal/pkg/repository/sql_builder"
)

const dashboardColumns = "id, name, user_id, time_range, created_at, updated_at"

type dashboardsRepository struct {
	*pool
}

func newDashboardsRepository(pool *pool) *dashboardsRepository {
	return &dashboardsRepository{pool}
}

func (r *dashboardsRepository) GetAll(ctx context.Context, req types.GetDashboardsRequest) (types.Dashboards, error) {
	query, args := sqlb.Select(dashboardColumns).
		From("custom_dashboards").
		Where(sq.Eq{
			"user_id": req.UserID,
		}).
		OrderBy("created_at DESC").
		MustSql()

	metricLabels := []string{"custom_dashboards", "SELECT"}
	rows, err := r.query(ctx, metricLabels, query, args...)
	if err != nil {
		incErrorMetric(err, metricLabels)
		return nil, fmt.Errorf("failed to get dashboards: %w", err)
	}
	defer rows.Close()

	dashboards, err := collectDashboards(rows)
	if err != nil {
		incErrorMetric(err, metricLabels)
		return nil, err
	}

	return dashboards, nil
}

// GetByID loads the dashboard and then its widgets in two independent
// reads. Widgets come back in row-major reading order.
func (r *dashboardsRepository) GetByID(ctx context.Context, id int64) (types.Dashboard, error) {
	dashboard := types.Dashboard{}

	query, args := sqlb.Select(dashboardColumns).
		From("custom_dashboards").
		Where(sq.Eq{
			"id": id,
		}).
		Limit(1).
		MustSql()

	metricLabels := []string{"custom_dashboards", "SELECT"}
	err := scanDashboard(r.queryRow(ctx, metricLabels, query, args...), &dashboard)
	if errors.Is(err, pgx.ErrNoRows) {
		err = types.NewErrNotFound("dashboard")
	} else if err != nil {
		err = fmt.Errorf("failed to get dashboard: %w", err)
	}

	if err != nil {
		incErrorMetric(err, metricLabels)
		return dashboard, err
	}

	widgets, err := r.getWidgets(ctx, id)
	if err != nil {
		return dashboard, err
	}
	dashboard.Widgets = widgets

	return dashboard, nil
}

func (r *dashboardsRepository) getWidgets(ctx context.Context, dashboardID int64) (types.Widgets, error) {
	query, args := sqlb.Select(widgetColumns).
		From("custom_dashboard_widgets").
		Where(sq.Eq{
			"dashboard_id": dashboardID,
		}).
		OrderBy("grid_y ASC", "grid_x ASC").
		MustSql()

	metricLabels := []string{"custom_dashboard_widgets", "SELECT"}
	rows, err := r.query(ctx, metricLabels, query, args...)
	if err != nil {
		incErrorMetric(err, metricLabels)
		return nil, fmt.Errorf("failed to get dashboard widgets: %w", err)
	}
	defer rows.Close()

	widgets, err := collectWidgets(rows)
	if err != nil {
		incErrorMetric(err, metricLabels)
		return nil, err
	}

	return widgets, nil
}

func (r *dashboardsRepository) Create(ctx context.Context, req types.CreateDashboardRequest) (types.Dashboard, error) {
	dashboard := types.Dashboard{}

	query, args := sqlb.Insert("custom_dashboards").
		Columns("name", "user_id", "time_range").
		Values(req.Name, req.UserID, req.TimeRange).
		Suffix("RETURNING " + dashboardColumns).
		MustSql()

	metricLabels := []string{"custom_dashboards", "INSERT"}
	if err := scanDashboard(r.queryRow(ctx, metricLabels, query, args...), &dashboard); err != nil {
		incErrorMetric(err, metricLabels)
		return dashboard, fmt.Errorf("failed to create dashboard: %w", err)
	}

	return dashboard, nil
}

// Update modifies only the supplied fields. updated_at is refreshed on
// every call, a no-op update included. user_id is never touched.
func (r *dashboardsRepository) Update(ctx context.Context, req types.UpdateDashboardRequest) (types.Dashboard, error) {
	dashboard := types.Dashboard{}

	qb := sqlb.Update("custom_dashboards").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{
			"id": req.ID,
		}).
		Suffix("RETURNING " + dashboardColumns)
	if req.Name != nil {
		qb = qb.Set("name", *req.Name)
	}
	if req.TimeRange != nil {
		qb = qb.Set("time_range", *req.TimeRange)
	}

	query, args := qb.MustSql()

	metricLabels := []string{"custom_dashboards", "UPDATE"}
	err := scanDashboard(r.queryRow(ctx, metricLabels, query, args...), &dashboard)
	if errors.Is(err, pgx.ErrNoRows) {
		err = types.NewErrNotFound("dashboard")
	} else if err != nil {
		err = fmt.Errorf("failed to update dashboard: %w", err)
	}

	if err != nil {
		incErrorMetric(err, metricLabels)
		return dashboard, err
	}

	return dashboard, nil
}

// collectDashboards drains rows and fails on any stream error, so a read
// that breaks mid-stream never yields a truncated list.
func collectDashboards(rows pgx.Rows) (types.Dashboards, error) {
	dashboards := types.Dashboards{}
	for rows.Next() {
		var d types.Dashboard
		if err := scanDashboard(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		dashboards = append(dashboards, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return dashboards, nil
}

func scanDashboard(row pgx.Row, d *types.Dashboard) error {
	return row.Scan(
		&d.ID,
		&d.Name,
		&d.UserID,
		&d.TimeRange,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}
