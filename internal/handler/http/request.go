package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxRequestBodyBytes caps JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// decodeJSONBody decodes the request body into dst. A missing or empty body
// is [ErrMissingBody]; any other decoding failure is [ErrInvalidJSONBody].
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrMissingBody
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrMissingBody
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSONBody)
	}
	return nil
}
