package http

import (
	"net/http"

	"github.com/MKhiriev/meds-gateway/internal/utils"
	"github.com/MKhiriev/meds-gateway/models"
)

const rootMessage = "Welcome to my API. Refer below to the resources available."

var rootResources = map[string]string{
	"greet": "/greet",
	"math":  "/math",
	"meds":  "/meds",
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.RootResponse{Message: rootMessage, Resources: rootResources}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
