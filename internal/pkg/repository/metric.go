package repository

import (
	"context"
	"errors"

	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/metric"
)

const (
	queryErrorOther       = "other"
	queryErrorTimeout     = "timeout"
	queryErrorCtxCanceled = "context canceled"
	queryErrorNotFound    = "not found"
)

func incErrorMetric(err error, metricLabels []string) {
	if err == nil {
		return
	}

	var queryErr string
	switch {
	case errors.Is(err, context.Canceled):
		queryErr = queryErrorCtxCanceled
	case errors.Is(err, context.DeadlineExceeded):
		queryErr = queryErrorTimeout
	case errors.Is(err, types.ErrNotFound):
		queryErr = queryErrorNotFound
	default:
		queryErr = queryErrorOther
	}

	metricLabels = append(metricLabels, queryErr)
	metric.RepositoryRequestError.WithLabelValues(metricLabels...).Inc()
}
