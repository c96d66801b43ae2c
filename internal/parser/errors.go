package parser

import "errors"

// ErrMalformedInput is matched (via [errors.Is]) by every decoding failure.
var ErrMalformedInput = errors.New("malformed CSV")

// Reasons reported by [MalformedInputError].
const (
	ReasonEmpty             = "empty"
	ReasonRowLimitExceeded  = "row limit exceeded"
	ReasonSizeLimitExceeded = "size limit exceeded"
	reasonSyntaxErrorFormat = "syntax error on line %d"
)

// MalformedInputError describes why decoding failed. Reason is short and
// never contains cell contents, so it is safe to show to API clients.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return ErrMalformedInput.Error() + ": " + e.Reason
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}
