package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError translates a completed upstream response into the sentinel
// taxonomy. Only 200 is success; redirects are followed by the client before
// this point.
func mapHTTPError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrUpstreamNotFound
	case http.StatusUnauthorized:
		return ErrUpstreamAuthInvalid
	default:
		return &UnexpectedStatusError{StatusCode: resp.StatusCode()}
	}
}

// mapTransportError wraps a failed round trip. The underlying error is kept
// in the chain for server-side logging; its text never reaches the client
// because the HTTP layer renders only the sentinel message.
func mapTransportError(err error) error {
	if errors.Is(err, resty.ErrResponseBodyTooLarge) {
		return fmt.Errorf("%w: %w", ErrUpstreamBodyTooLarge, err)
	}
	if errors.Is(err, ErrUpstreamConnection) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUpstreamConnection, err)
}
