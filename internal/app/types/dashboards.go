package types

import "time"

const (
	// DefaultUserID is the sentinel owner used when no user is supplied.
	DefaultUserID = "default_user"

	// DefaultTimeRange is applied to dashboards created without one.
	DefaultTimeRange = "last_month"
)

type Dashboard struct {
	ID        int64
	Name      string
	UserID    string
	TimeRange string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Widgets are loaded on single-dashboard fetch only.
	Widgets Widgets
}

type Dashboards []Dashboard

type GetDashboardsRequest struct {
	UserID string
}

type CreateDashboardRequest struct {
	Name      string
	UserID    string
	TimeRange string
}

type UpdateDashboardRequest struct {
	ID        int64
	Name      *string
	TimeRange *string
}

func (ur UpdateDashboardRequest) IsEmpty() bool {
	return ur.Name == nil && ur.TimeRange == nil
}
