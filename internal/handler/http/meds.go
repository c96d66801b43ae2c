package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/meds-gateway/internal/utils"
)

// getMedications serves GET /meds. Authentication has already been enforced
// by basicAuth.
func (h *Handler) getMedications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.services.MedicationService.GetMedications(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if entry, ok := h.services.MedicationService.CacheEntry(ctx); ok {
		age := math.Max(0, time.Since(entry.FetchedAt).Seconds())
		w.Header().Set("Age", strconv.Itoa(int(age)))
	}

	if _, err = utils.WriteJSON(w, list, http.StatusOK); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getMedications").Msg("error writing medications response")
	}
}
