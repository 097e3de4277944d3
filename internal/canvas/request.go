package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Noah-Moller/CanvasKit/internal/errdefs"
	"github.com/Noah-Moller/CanvasKit/pkg/ctxdata"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	maxBodyBytes    = 32 << 20
	maxErrBodyBytes = 512
)

var validate = validator.New()

// get performs one authenticated GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, query url.Values, segments ...string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint := c.baseURL.JoinPath(segments...)
	endpoint.RawQuery = query.Encode()
	path := endpoint.Path

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("canvas: build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if traceID, ok := ctxdata.GetTraceID(ctx); ok {
		req.Header.Set("X-Request-Id", traceID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := reqCtx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		c.logger.Warn(ctx, "canvas request failed",
			zap.String("method", http.MethodGet),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &errdefs.TransportError{Method: http.MethodGet, Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := reqCtx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &errdefs.TransportError{Method: http.MethodGet, Path: path, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug(ctx, "canvas request",
		zap.String("method", http.MethodGet),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := body
		if len(snippet) > maxErrBodyBytes {
			snippet = snippet[:maxErrBodyBytes]
		}
		c.logger.Warn(ctx, "canvas returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &errdefs.HTTPError{
			StatusCode: resp.StatusCode,
			Method:     http.MethodGet,
			Path:       path,
			Body:       string(snippet),
		}
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("canvas: GET %s: %w: empty body", path, errdefs.ErrInvalidResponse)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !isJSON(ct) {
		return nil, fmt.Errorf("canvas: GET %s: %w: content type %q", path, errdefs.ErrInvalidResponse, ct)
	}

	if hasNextPage(resp.Header.Get("Link")) {
		c.logger.Warn(ctx, "canvas result truncated to first page",
			zap.String("path", path),
			zap.Int("per_page", pageSize),
		)
	}

	return body, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func hasNextPage(link string) bool {
	for _, part := range strings.Split(link, ",") {
		if strings.Contains(part, `rel="next"`) {
			return true
		}
	}
	return false
}

func decodeOne[T any](path string, body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, &errdefs.DecodingError{Path: path, Err: err}
	}
	if err := validate.Struct(out); err != nil {
		var zero T
		return zero, &errdefs.DecodingError{Path: path, Err: err}
	}
	return out, nil
}

func decodeList[T any](path string, body []byte) ([]T, error) {
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &errdefs.DecodingError{Path: path, Err: err}
	}
	if out == nil {
		return nil, &errdefs.DecodingError{Path: path, Err: errors.New("expected a JSON array, got null")}
	}
	for i := range out {
		if err := validate.Struct(out[i]); err != nil {
			return nil, &errdefs.DecodingError{Path: path, Err: fmt.Errorf("element %d: %w", i, err)}
		}
	}
	return out, nil
}

func checkCourseID(courseID int64) error {
	if courseID <= 0 {
		return fmt.Errorf("%w: course id must be positive, got %d", errdefs.ErrInvalidArgument, courseID)
	}
	return nil
}

func idSegment(v int64) string {
	return strconv.FormatInt(v, 10)
}

func listQuery(include ...string) url.Values {
	q := url.Values{}
	for _, inc := range include {
		q.Add("include[]", inc)
	}
	q.Set("per_page", strconv.Itoa(pageSize))
	return q
}

func fetchList[T any](ctx context.Context, c *Client, query url.Values, segments ...string) ([]T, error) {
	body, err := c.get(ctx, query, segments...)
	if err != nil {
		return nil, err
	}
	return decodeList[T](displayPath(segments), body)
}

func fetchOne[T any](ctx context.Context, c *Client, query url.Values, segments ...string) (T, error) {
	body, err := c.get(ctx, query, segments...)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeOne[T](displayPath(segments), body)
}

func displayPath(segments []string) string {
	return apiPrefix + "/" + strings.Join(segments, "/")
}
