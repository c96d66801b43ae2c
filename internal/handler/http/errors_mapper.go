package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/meds-gateway/internal/adapter"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/parser"
	"github.com/MKhiriev/meds-gateway/internal/service"
	"github.com/MKhiriev/meds-gateway/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrMissingBasicAuth:             http.StatusUnauthorized,
	ErrInvalidJSONBody:              http.StatusBadRequest,
	ErrMissingBody:                  http.StatusUnprocessableEntity,
	ErrNameRequired:                 http.StatusUnprocessableEntity,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,

	adapter.ErrUpstreamConnection:       http.StatusBadGateway,
	adapter.ErrUpstreamNotFound:         http.StatusNotFound,
	adapter.ErrUpstreamAuthInvalid:      http.StatusInternalServerError,
	adapter.ErrUpstreamUnexpectedStatus: http.StatusBadGateway,

	parser.ErrMalformedInput: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the client-facing message for err. Only sentinel
// texts and the short reasons carried by typed errors are used; wrapped
// causes (network errors, file contents) never reach the client.
func detailFromError(err error) string {
	var (
		statusErr    *adapter.UnexpectedStatusError
		malformedErr *parser.MalformedInputError
	)

	switch {
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, adapter.ErrUpstreamUnexpectedStatus):
		return adapter.ErrUpstreamUnexpectedStatus.Error()
	case errors.As(err, &malformedErr):
		return malformedErr.Error()
	case errors.Is(err, parser.ErrMalformedInput):
		return parser.ErrMalformedInput.Error()
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and answers with the mapped
// status and detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	detail := detailFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("detail", detail).Msg("request failed")

	if status == http.StatusUnauthorized {
		setBasicAuthChallenge(w)
	}
	utils.WriteError(w, detail, status)
}
