package adapter

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/utils"
)

type httpUpstreamAdapter struct {
	client *utils.HTTPClient

	resourceURL string
	conditional bool

	logger *logger.Logger
}

// NewHTTPUpstreamAdapter constructs an HTTP/REST implementation of
// [UpstreamAdapter]. The underlying client is created once here and shared by
// every call; it carries the bearer token, the Accept and User-Agent headers
// and the request timeout from upstreamCfg.
//
// Returns [ErrEmptyResourceURL] or [ErrEmptyAccessToken] if either value is
// blank.
func NewHTTPUpstreamAdapter(upstreamCfg config.Upstream, logger *logger.Logger) (UpstreamAdapter, error) {
	return newHTTPUpstreamAdapter(upstreamCfg, nil, logger)
}

func newHTTPUpstreamAdapter(upstreamCfg config.Upstream, transport http.RoundTripper, logger *logger.Logger) (*httpUpstreamAdapter, error) {
	resourceURL := strings.TrimSpace(upstreamCfg.ResourceURL)
	if resourceURL == "" {
		return nil, ErrEmptyResourceURL
	}
	token := strings.TrimSpace(upstreamCfg.AccessToken)
	if token == "" {
		return nil, ErrEmptyAccessToken
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:             upstreamCfg.Timeout,
		ConditionalRequests: !upstreamCfg.DisableHTTPCache,
		Transport:           transport,
		ResponseBodyLimit:   upstreamCfg.MaxBodyBytes,
	})

	client.
		SetAuthToken(token).
		SetHeader("Accept", valueOr(upstreamCfg.Accept, config.DefaultUpstreamAccept)).
		SetHeader("User-Agent", valueOr(upstreamCfg.UserAgent, config.DefaultUpstreamUserAgent))

	return &httpUpstreamAdapter{
		client:      client,
		resourceURL: resourceURL,
		conditional: !upstreamCfg.DisableHTTPCache,
		logger:      logger,
	}, nil
}

// FetchResource implements [UpstreamAdapter]. It GETs the configured resource
// URL once and returns the body on HTTP 200.
func (h *httpUpstreamAdapter) FetchResource(ctx context.Context) (string, error) {
	req := h.client.R().SetContext(ctx)
	if h.conditional {
		// a stored copy must be revalidated, never served without a round trip
		req.SetHeader("Cache-Control", "max-age=0")
	}

	resp, err := req.Get(h.resourceURL)
	if err != nil {
		h.logger.Err(err).Str("func", "httpUpstreamAdapter.FetchResource").Msg("upstream request failed")
		return "", mapTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("func", "httpUpstreamAdapter.FetchResource").
			Int("status", resp.StatusCode()).
			Msg("upstream returned non-200 status")
		return "", err
	}

	h.logger.Debug().
		Str("func", "httpUpstreamAdapter.FetchResource").
		Bool("revalidated", utils.FromCache(resp)).
		Int("bytes", len(resp.Body())).
		Msg("upstream resource fetched")

	return string(resp.Body()), nil
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

var _ UpstreamAdapter = (*httpUpstreamAdapter)(nil)
