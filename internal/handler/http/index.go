package http

import (
	"net/http"

	"github.com/quickdo/market-api/internal/app"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.IndexResponse{
		App:     h.services.AppInfoService.GetAppName(ctx),
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, app.MsgResourceNotFound, http.StatusNotFound)
}
