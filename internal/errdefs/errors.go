package errdefs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidConfig       = errors.New("invalid client configuration")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrTransport           = errors.New("transport failure")
	ErrInvalidResponse     = errors.New("invalid response")
	ErrDecoding            = errors.New("decoding error")
	ErrUnsupportedItemType = errors.New("unsupported item type")
)

// HTTPError is a well-formed response with a status outside 200-299.
type HTTPError struct {
	StatusCode int
	Method     string
	Path       string
	// Body holds at most the first few hundred bytes of the response body.
	Body string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("canvas: %s %s: http status %d", e.Method, e.Path, e.StatusCode)
}

type DecodingError struct {
	Path string
	Err  error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("canvas: decode %s: %v", e.Path, e.Err)
}

func (e *DecodingError) Unwrap() []error {
	return []error{ErrDecoding, e.Err}
}

type UnsupportedItemTypeError struct {
	Type string
}

func (e *UnsupportedItemTypeError) Error() string {
	return fmt.Sprintf("canvas: unsupported module item type %q", e.Type)
}

func (e *UnsupportedItemTypeError) Is(target error) bool {
	return target == ErrUnsupportedItemType
}

// TransportError means no HTTP response was received.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("canvas: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// StatusCode returns the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode, true
	}
	return 0, false
}

func IsUnauthorized(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

func IsRateLimited(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusTooManyRequests
}

func IsServerError(err error) bool {
	code, ok := StatusCode(err)
	return ok && code >= http.StatusInternalServerError
}
