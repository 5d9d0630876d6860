package http

import (
	"errors"
	"net/http"

	"github.com/quickdo/market-api/internal/app"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/service"
	"github.com/quickdo/market-api/internal/utils"
)

var categoryStatusMap = map[error]int{
	service.ErrValidation:      http.StatusBadRequest,
	service.ErrAuth:            http.StatusUnauthorized,
	service.ErrForbidden:       http.StatusForbidden,
	service.ErrConflict:        http.StatusConflict,
	service.ErrNotFound:        http.StatusNotFound,
	service.ErrExternalService: http.StatusBadGateway,
	service.ErrTooManyAttempts: http.StatusTooManyRequests,
}

// statusFromError returns the status of a service error and
// http.StatusInternalServerError for anything without a known category.
func statusFromError(err error) int {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return http.StatusInternalServerError
	}
	if status, ok := categoryStatusMap[svcErr.Category()]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError answers with the client message of a service error. Other
// errors are logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var svcErr *service.Error
	status := statusFromError(err)
	if status == http.StatusInternalServerError || !errors.As(err, &svcErr) {
		log.Err(err).Msg("unexpected error while processing request")
		utils.WriteMessage(w, app.MsgUnexpectedError, http.StatusInternalServerError)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	utils.WriteMessage(w, svcErr.Error(), status)
}
