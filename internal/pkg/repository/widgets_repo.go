package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	sqlb "github.com/tuolden/health-dashboard-sub003/internal/pkg/repository/sql_builder"
)

const widgetColumns = "id, dashboard_id, widget_type, grid_x, grid_y, size, widget_config, created_at"

// foreign_key_violation, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgFKViolationCode = "23503"

type widgetsRepository struct {
	*pool
}

func newWidgetsRepository(pool *pool) *widgetsRepository {
	return &widgetsRepository{pool}
}

// Add inserts the widget without pre-checking the dashboard. The storage
// foreign key rejects orphans; its violation is reported as a missing
// dashboard.
func (r *widgetsRepository) Add(ctx context.Context, req types.AddWidgetRequest) (types.Widget, error) {
	widget := types.Widget{}

	query, args := sqlb.Insert("custom_dashboard_widgets").
		Columns("dashboard_id", "widget_type", "grid_x", "grid_y", "size", "widget_config").
		Values(req.DashboardID, req.WidgetType, req.GridX, req.GridY, string(req.Size), req.Config).
		Suffix("RETURNING " + widgetColumns).
		MustSql()

	metricLabels := []string{"custom_dashboard_widgets", "INSERT"}
	err := scanWidget(r.queryRow(ctx, metricLabels, query, args...), &widget)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgFKViolationCode {
		err = types.NewErrNotFound("dashboard")
	} else if err != nil {
		err = fmt.Errorf("failed to add widget: %w", err)
	}

	if err != nil {
		incErrorMetric(err, metricLabels)
		return widget, err
	}

	return widget, nil
}

// Update modifies only the supplied fields. dashboard_id is immutable.
func (r *widgetsRepository) Update(ctx context.Context, req types.UpdateWidgetRequest) (types.Widget, error) {
	widget := types.Widget{}

	qb := sqlb.Update("custom_dashboard_widgets").
		Where(sq.Eq{
			"id": req.ID,
		}).
		Suffix("RETURNING " + widgetColumns)
	if req.GridX != nil {
		qb = qb.Set("grid_x", *req.GridX)
	}
	if req.GridY != nil {
		qb = qb.Set("grid_y", *req.GridY)
	}
	if req.Size != nil {
		qb = qb.Set("size", string(*req.Size))
	}
	if req.Config != nil {
		qb = qb.Set("widget_config", *req.Config)
	}

	query, args := qb.MustSql()

	metricLabels := []string{"custom_dashboard_widgets", "UPDATE"}
	err := scanWidget(r.queryRow(ctx, metricLabels, query, args...), &widget)
	if errors.Is(err, pgx.ErrNoRows) {
		err = types.NewErrNotFound("widget")
	} else if err != nil {
		err = fmt.Errorf("failed to update widget: %w", err)
	}

	if err != nil {
		incErrorMetric(err, metricLabels)
		return widget, err
	}

	return widget, nil
}

// Remove deletes the widget by id. A missing row is the false outcome,
// not an error.
func (r *widgetsRepository) Remove(ctx context.Context, id int64) (bool, error) {
	query, args := sqlb.Delete("custom_dashboard_widgets").
		Where(sq.Eq{
			"id": id,
		}).
		MustSql()

	metricLabels := []string{"custom_dashboard_widgets", "DELETE"}
	tag, err := r.exec(ctx, metricLabels, query, args...)
	if err != nil {
		incErrorMetric(err, metricLabels)
		return false, fmt.Errorf("failed to remove widget: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// collectWidgets drains rows and fails on any stream error, so a read
// that breaks mid-stream never yields a truncated list.
func collectWidgets(rows pgx.Rows) (types.Widgets, error) {
	widgets := types.Widgets{}
	for rows.Next() {
		var w types.Widget
		if err := scanWidget(rows, &w); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		widgets = append(widgets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return widgets, nil
}

func scanWidget(row pgx.Row, w *types.Widget) error {
	var (
		size   string
		config []byte
	)
	err := row.Scan(
		&w.ID,
		&w.DashboardID,
		&w.WidgetType,
		&w.GridX,
		&w.GridY,
		&size,
		&config,
		&w.CreatedAt,
	)
	if err != nil {
		return err
	}

	w.Size = types.WidgetSize(size)
	w.Config = string(config)

	return nil
}
