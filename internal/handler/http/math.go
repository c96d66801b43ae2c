package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/meds-gateway/internal/utils"
	"github.com/MKhiriev/meds-gateway/models"
)

var mathOperations = models.MathIndex{
	Resource: "math",
	Operations: []models.MathOperation{
		{Method: http.MethodPost, Path: "/math/add", Description: "Returns the sum of a list of numbers."},
		{Method: http.MethodPost, Path: "/math/multiply", Description: "Returns the product of a list of numbers."},
	},
}

func (h *Handler) mathIndex(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, mathOperations, http.StatusOK)
}

func (h *Handler) mathAdd(w http.ResponseWriter, r *http.Request) {
	h.mathOperation(w, r, h.services.MathService.Sum)
}

func (h *Handler) mathMultiply(w http.ResponseWriter, r *http.Request) {
	h.mathOperation(w, r, h.services.MathService.Product)
}

// mathOperation decodes {"numbers": [...]} and answers
// {"result": op(numbers)}. The body is required; a missing list counts as
// empty.
func (h *Handler) mathOperation(w http.ResponseWriter, r *http.Request, op func(context.Context, []float64) float64) {
	var req models.MathRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	result := op(r.Context(), req.Numbers)
	_, _ = utils.WriteJSON(w, models.MathResult{Result: result}, http.StatusOK)
}
