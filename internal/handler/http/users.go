package http

import (
	"errors"
	"net/http"

	"github.com/quickdo/market-api/internal/app"
	"github.com/quickdo/market-api/internal/service"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{Message: app.MsgUserCreated, ID: user.UserID}, http.StatusCreated)
}

func (h *Handler) toggleAdmin(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	isAdmin, err := h.services.AuthService.ToggleAdmin(r.Context(), userID)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ToggleAdminResponse{Message: app.MsgUserStatusUpdated, IsAdmin: isAdmin}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.UserService.Update(r.Context(), user, userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgAccountUpdated, http.StatusOK)
}

func (h *Handler) softDeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	if err := h.services.UserService.SoftDelete(r.Context(), user, userID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgAccountDeleted, http.StatusOK)
}

func (h *Handler) destroyUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	if err := h.services.UserService.Destroy(r.Context(), userID); err != nil {
		writeAdminError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgUserDeleted, http.StatusOK)
}

// writeAdminError answers 400 for an unknown user on administrative routes.
func writeAdminError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		utils.WriteMessage(w, app.MsgUnableToFindUser, http.StatusBadRequest)
		return
	}
	writeError(w, r, err)
}

// userNotifications lists unseen notifications. ?type= filters by type and
// ?mark=1 marks the returned notifications as seen.
func (h *Handler) userNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	query := r.URL.Query()
	mark := query.Get("mark")

	notifications, err := h.services.NotificationService.List(r.Context(), user, models.NotificationQuery{
		UserID:   userID,
		Type:     models.NotificationType(query.Get("type")),
		MarkSeen: mark == "1" || mark == "true",
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	utils.WriteJSON(w, notifications, http.StatusOK)
}

func (h *Handler) userProperties(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}
	ownerID, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	properties, err := h.services.PropertyService.ListByOwner(r.Context(), user, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}
