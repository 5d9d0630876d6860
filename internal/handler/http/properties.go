package http

import (
	"net/http"

	"github.com/quickdo/market-api/internal/app"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

func (h *Handler) listProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	properties, err := h.services.PropertyService.ListActive(r.Context(), models.PropertyFilter{
		City:    query.Get("city"),
		Country: query.Get("country"),
		Type:    query.Get("type"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}

	utils.WriteJSON(w, properties, http.StatusOK)
}

func (h *Handler) createProperty(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}

	var req models.CreatePropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := h.services.PropertyService.Create(r.Context(), user, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{Message: app.MsgPropertyCreated, ID: property.PropertyID}, http.StatusCreated)
}

func (h *Handler) updateProperty(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "property")
	if !ok {
		return
	}

	var req models.UpdatePropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.PropertyService.Update(r.Context(), user, propertyID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPropertyUpdated, http.StatusOK)
}

func (h *Handler) deleteProperty(w http.ResponseWriter, r *http.Request) {
	user, ok := actor(w, r)
	if !ok {
		return
	}
	propertyID, ok := pathID(w, r, "property")
	if !ok {
		return
	}

	if err := h.services.PropertyService.Delete(r.Context(), user, propertyID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPropertyDeleted, http.StatusOK)
}
