package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Noah-Moller/CanvasKit/internal/errdefs"
	"github.com/Noah-Moller/CanvasKit/pkg/logging"
	"github.com/Noah-Moller/CanvasKit/pkg/retry"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// statusClientClosedRequest reports a request the caller abandoned before
// Canvas answered. It is not a server fault.
const statusClientClosedRequest = 499

var (
	ErrBadRequest = errors.New("bad request")
)

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, errdefs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrUnsupportedItemType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case errors.Is(err, retry.ErrCircuitOpen):
		return http.StatusServiceUnavailable
	}
	if code, ok := errdefs.StatusCode(err); ok {
		switch code {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusTooManyRequests:
			return code
		}
		return http.StatusBadGateway
	}
	if errors.Is(err, errdefs.ErrDecoding) || errors.Is(err, errdefs.ErrInvalidResponse) || errors.Is(err, errdefs.ErrTransport) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		if logger, ok := logging.GetFromContext(r.Context()); ok {
			logger.Error(r.Context(), "Failed to serialize response", zap.Error(err))
		}
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := mapErr(err)
	if logger, ok := logging.GetFromContext(r.Context()); ok {
		if statusCode == statusClientClosedRequest {
			logger.Info(r.Context(), "client closed request", zap.Error(err))
		} else {
			logger.Error(r.Context(), "canvas request failed", zap.Int("status", statusCode), zap.Error(err))
		}
	}
	if statusCode == statusClientClosedRequest {
		w.WriteHeader(statusCode)
		return
	}
	message := http.StatusText(statusCode)
	if statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity {
		message = err.Error()
	}
	writeErrorJSON(w, statusCode, message)
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	return val, nil
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrBadRequest, key)
	}
	return id, nil
}
