package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gregjones/httpcache"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 10 * time.Second})
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions controls how [NewHTTPClient] builds the client.
type HTTPClientOptions struct {
	// Timeout bounds every request made with the client. Zero means no limit.
	Timeout time.Duration

	// ConditionalRequests wraps the transport in an in-memory RFC 7234 cache
	// that revalidates stored responses with If-None-Match / If-Modified-Since.
	// Callers that must reach the origin on every call send
	// "Cache-Control: max-age=0" so a stored response is always revalidated.
	ConditionalRequests bool

	// Transport overrides the base round tripper. Nil means
	// http.DefaultTransport.
	Transport http.RoundTripper

	// ResponseBodyLimit rejects response bodies larger than this many bytes
	// with resty.ErrResponseBodyTooLarge. Zero means no limit.
	ResponseBodyLimit int
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The client is safe for
// concurrent use and is meant to be created once and shared.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{ConditionalRequests: true})
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://api.example.com/users")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	if opts.ConditionalRequests {
		cached := httpcache.NewMemoryCacheTransport()
		cached.Transport = transport
		cached.MarkCachedResponses = true
		transport = cached
	}

	client := resty.New().SetTransport(transport)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.ResponseBodyLimit > 0 {
		client.SetResponseBodyLimit(opts.ResponseBodyLimit)
	}

	return &HTTPClient{Client: client}
}

// FromCache reports whether resp was answered from the conditional-request
// cache, either directly or after a 304 revalidation.
func FromCache(resp *resty.Response) bool {
	if resp == nil || resp.RawResponse == nil {
		return false
	}
	return resp.RawResponse.Header.Get(httpcache.XFromCache) == "1"
}
