package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/utils"
	"github.com/MKhiriev/meds-gateway/models"
	"github.com/rs/zerolog"
)

// basicAuth is an HTTP middleware that enforces HTTP Basic authentication.
//
// It decodes the "Authorization" header, verifies the credentials via
// [service.AuthService.VerifyCredentials], and on success stores the
// username in the request context under [utils.UsernameCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a
// WWW-Authenticate challenge when:
//   - the header is absent or is not a valid Basic header ([ErrMissingBasicAuth]);
//   - the credentials do not match ([service.ErrAuthenticationFailed]).
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			h.writeError(w, r, ErrMissingBasicAuth)
			return
		}

		ctx := r.Context()
		presented := models.Credentials{Username: username, Password: password}
		if err := h.services.AuthService.VerifyCredentials(ctx, presented); err != nil {
			h.writeError(w, r, err)
			return
		}

		log := logger.FromContext(ctx)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", username)
		})
		ctx = context.WithValue(log.WithContext(ctx), utils.UsernameCtxKey, username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setBasicAuthChallenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", basicAuthRealm))
}
