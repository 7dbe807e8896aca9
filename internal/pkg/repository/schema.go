package repository

import (
	"context"
	"fmt"
)

const (
	createDashboardsTable = `
		CREATE TABLE IF NOT EXISTS custom_dashboards (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			user_id TEXT NOT NULL DEFAULT 'default_user',
			time_range TEXT NOT NULL DEFAULT 'last_month',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	createWidgetsTable = `
		CREATE TABLE IF NOT EXISTS custom_dashboard_widgets (
			id BIGSERIAL PRIMARY KEY,
			dashboard_id BIGINT NOT NULL REFERENCES custom_dashboards (id) ON DELETE CASCADE,
			widget_type TEXT NOT NULL,
			grid_x INT NOT NULL,
			grid_y INT NOT NULL,
			size TEXT NOT NULL DEFAULT 'medium',
			widget_config JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
)

type schemaRepository struct {
	*pool
}

func newSchemaRepository(pool *pool) *schemaRepository {
	return &schemaRepository{pool}
}

// Init ensures both tables exist. Idempotent, run once at process start;
// not part of the steady-state request path.
func (r *schemaRepository) Init(ctx context.Context) error {
	metricLabels := []string{"custom_dashboards", "CREATE"}
	if _, err := r.exec(ctx, metricLabels, createDashboardsTable); err != nil {
		incErrorMetric(err, metricLabels)
		return fmt.Errorf("failed to create dashboards table: %w", err)
	}

	metricLabels = []string{"custom_dashboard_widgets", "CREATE"}
	if _, err := r.exec(ctx, metricLabels, createWidgetsTable); err != nil {
		incErrorMetric(err, metricLabels)
		return fmt.Errorf("failed to create widgets table: %w", err)
	}

	return nil
}
