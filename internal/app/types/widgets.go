package types

import "time"

// WidgetSize is the closed set of grid tile sizes.
type WidgetSize string

const (
	WidgetSizeSmall  WidgetSize = "small"
	WidgetSizeMedium WidgetSize = "medium"
	WidgetSizeLarge  WidgetSize = "large"
)

func (s WidgetSize) Valid() bool {
	switch s {
	case WidgetSizeSmall, WidgetSizeMedium, WidgetSizeLarge:
		return true
	}
	return false
}

const (
	DefaultWidgetSize = WidgetSizeMedium

	// DefaultWidgetConfig is the empty config blob. The config is opaque
	// JSON text end to end; nothing below the presentation layer parses it.
	DefaultWidgetConfig = "{}"
)

type Widget struct {
	ID          int64
	DashboardID int64
	WidgetType  string
	GridX       int32
	GridY       int32
	Size        WidgetSize
	Config      string
	CreatedAt   time.Time
}

type Widgets []Widget

type AddWidgetRequest struct {
	DashboardID int64
	WidgetType  string
	GridX       int32
	GridY       int32
	Size        WidgetSize
	Config      string
}

type UpdateWidgetRequest struct {
	ID     int64
	GridX  *int32
	GridY  *int32
	Size   *WidgetSize
	Config *string
}

func (ur UpdateWidgetRequest) IsEmpty() bool {
	return ur.GridX == nil && ur.GridY == nil && ur.Size == nil && ur.Config == nil
}
