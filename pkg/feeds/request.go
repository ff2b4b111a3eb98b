package feeds

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"notfound/pkg/serrors"
	"strings"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// Get issues a GET request for URL and returns the body of a 2xx response.
// Failures carry a serrors kind:
//   - ErrTimeout when the request deadline elapsed
//   - ErrUnavailable for transport errors, cancellation and unexpected statuses
//   - ErrRateLimited for 429, ErrUnauthorized for 401/403, ErrNotFound for 404
func Get(ctx context.Context, httpClient *http.Client, URL string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not create request")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		// the error ends up in logs, keep keys out of it
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = RedactURL(req.URL)
		}

		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}

	body := strings.TrimSpace(string(b))
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", body)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, serrors.With(serrors.ErrUnauthorized, "unauthorized: %s", body)
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "not found: %s", body)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrUnavailable, "unexpected status %d: %s", resp.StatusCode, body)
	}

	return b, nil
}

// DecodeError marks a 2xx body that could not be decoded.
func DecodeError(err error) error {
	return serrors.Wrap(serrors.ErrUnavailable, err, "could not decode response")
}
