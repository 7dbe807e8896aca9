package httputil

import (
	"errors"
	"net/http"

	"github.com/tuolden/health-dashboard-sub003/internal/app/types"
	"github.com/tuolden/health-dashboard-sub003/logger"
	"go.uber.org/zap"
)

// redactedStorageError is what HTTP callers see instead of driver errors.
const redactedStorageError = "failed to fetch"

// ProcessError maps the three-way outcome onto HTTP statuses: validation
// to 400, not-found to 404, anything else is a storage failure logged
// server-side and surfaced with a redacted 500.
func ProcessError(w *Writer, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, types.ErrEmptyUpdateRequest) || errors.Is(err, types.ErrInvalidRequestField):
		w.Error(err, http.StatusBadRequest)
	case errors.Is(err, types.ErrNotFound):
		w.Error(err, http.StatusNotFound)
	default:
		logger.Error("storage failure", zap.Error(err))
		w.Error(errors.New(redactedStorageError), http.StatusInternalServerError)
	}
}
