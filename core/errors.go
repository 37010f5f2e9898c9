package core

import "errors"

// Every failure in this program is terminal. Callers wrap these with
// context via %w and match with errors.Is.
var (
	ErrConfig            = errors.New("configuration error")
	ErrAuth              = errors.New("authorization failed")
	ErrTransport         = errors.New("aggregate request failed")
	ErrMalformedResponse = errors.New("malformed aggregate response")
)
