package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quickdo/market-api/internal/app"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/service"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.FromRequest(r).Debug().Err(fmt.Errorf("%w: %w", ErrInvalidBody, err)).Send()
		utils.WriteMessage(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return false
	}
	return true
}

// pathID reads a positive integer path parameter.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Debug().Err(ErrInvalidIdentifier).Str("param", name).Send()
		utils.WriteMessage(w, app.MsgInvalidIdentifier, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// actor returns the user attached by the auth middleware.
func actor(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrPermissionDenied)
		return models.User{}, false
	}
	return user, true
}
