package http

import (
	"net/http"

	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", resp.ID).Msg("user registered")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", result.User.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, result, http.StatusOK)
}

// check re-issues a token. The token is read from the body and, when the
// body carries none, from the Authorization header.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var req models.CheckRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	if req.Token == "" {
		req.Token, _ = utils.ParseBearerToken(r.Header.Get("Authorization"))
	}

	result, err := h.services.AuthService.Check(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	var req models.ActivateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.AuthService.Activate(r.Context(), userID, req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Msg("user activated")
	utils.WriteJSON(w, result, http.StatusOK)
}
