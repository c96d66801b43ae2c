package http

import (
	"net/http"

	"github.com/MKhiriev/meds-gateway/internal/utils"
	"github.com/MKhiriev/meds-gateway/models"
)

// greetByQuery serves GET /greet?name=...; a missing name greets "stranger".
func (h *Handler) greetByQuery(w http.ResponseWriter, r *http.Request) {
	message := h.services.GreetService.Greet(r.Context(), r.URL.Query().Get("name"))
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}

// greetByBody serves POST /greet with {"name": "..."}; the name is required.
func (h *Handler) greetByBody(w http.ResponseWriter, r *http.Request) {
	var req models.GreetRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Name == "" {
		h.writeError(w, r, ErrNameRequired)
		return
	}

	message := h.services.GreetService.Greet(r.Context(), req.Name)
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}
