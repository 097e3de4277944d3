package errdefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError_Helpers(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		unauthorized bool
		notFound     bool
		rateLimited  bool
		serverError  bool
	}{
		{"Unauthorized", http.StatusUnauthorized, true, false, false, false},
		{"NotFound", http.StatusNotFound, false, true, false, false},
		{"RateLimited", http.StatusTooManyRequests, false, false, true, false},
		{"BadGateway", http.StatusBadGateway, false, false, false, true},
		{"Forbidden", http.StatusForbidden, false, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &HTTPError{StatusCode: tc.code, Method: http.MethodGet, Path: "/courses"})

			code, ok := StatusCode(err)
			assert.True(t, ok)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.unauthorized, IsUnauthorized(err))
			assert.Equal(t, tc.notFound, IsNotFound(err))
			assert.Equal(t, tc.rateLimited, IsRateLimited(err))
			assert.Equal(t, tc.serverError, IsServerError(err))
		})
	}
}

func TestStatusCode_NonHTTPError(t *testing.T) {
	_, ok := StatusCode(errors.New("boom"))
	assert.False(t, ok)
}

func TestDecodingError_Unwrap(t *testing.T) {
	cause := &json.SyntaxError{Offset: 3}
	err := &DecodingError{Path: "/courses", Err: cause}

	assert.ErrorIs(t, err, ErrDecoding)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, int64(3), syntaxErr.Offset)
}

func TestUnsupportedItemTypeError_Is(t *testing.T) {
	err := fmt.Errorf("resolve: %w", &UnsupportedItemTypeError{Type: "unknown_type"})

	assert.ErrorIs(t, err, ErrUnsupportedItemType)
	assert.NotErrorIs(t, err, ErrDecoding)

	var typed *UnsupportedItemTypeError
	assert.ErrorAs(t, err, &typed)
	assert.Equal(t, "unknown_type", typed.Type)
}

func TestTransportError_Unwrap(t *testing.T) {
	err := &TransportError{Method: http.MethodGet, Path: "/courses", Err: io.ErrUnexpectedEOF}

	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	_, ok := StatusCode(err)
	assert.False(t, ok)
}
