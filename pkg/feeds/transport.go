package feeds

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"notfound/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation id sent upstream.
const RequestIDHeader = "X-Request-Id"

// credentialParams are query parameters the providers accept keys in.
var credentialParams = []string{"client_id", "key", "apikey", "api_key", "access_key"} //nolint: gochecknoglobals

// roundTripperFunc allows using a function as an http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// WithLogging returns a RoundTripper that tags each outgoing request with a
// request id and writes a debug access log once the response headers arrive.
// Credential query parameters are redacted in the log.
func WithLogging(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			r = r.Clone(r.Context())
			r.Header.Set(RequestIDHeader, requestID)
		}

		start := time.Now()
		res, err := next.RoundTrip(r)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("url", RedactURL(r.URL)),
			zap.Float64("latency", time.Since(start).Seconds()),
		}
		if err != nil {
			logger.Debug(r.Context(), "upstream request failed", append(fields, zap.Error(err))...)

			return nil, err //nolint: wrapcheck
		}

		logger.Debug(r.Context(), "upstream access log", append(fields, zap.Int("status_code", res.StatusCode))...)

		return res, nil
	})
}

// RedactURL renders u with the values of credential query parameters
// replaced by "REDACTED".
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	q := u.Query()
	changed := false
	for name := range q {
		for _, p := range credentialParams {
			if strings.EqualFold(name, p) {
				q.Set(name, "REDACTED")
				changed = true
			}
		}
	}
	if !changed {
		return u.String()
	}

	c := *u
	c.RawQuery = q.Encode()

	return c.String()
}
