package quotable_test

import (
	"context"
	"io"
	"net/http"
	"notfound/pkg/domain"
	"notfound/pkg/feeds/quotable"
	"notfound/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_RandomQuote(t *testing.T) {
	c := quotable.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "api.quotable.io", r.URL.Host)
		require.Equal(t, "/random", r.URL.Path)
		require.Empty(t, r.URL.RawQuery)

		body := `{"_id":"q1","content":"X","author":"Y","tags":["wisdom"]}`

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})}, "")

	q, err := c.RandomQuote(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.QuoteItem{Content: "X", Author: "Y"}, q)
}

func TestClient_RandomQuote_rateLimited(t *testing.T) {
	c := quotable.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusTooManyRequests, Body: io.NopCloser(strings.NewReader(""))}, nil
	})}, "")

	_, err := c.RandomQuote(context.Background())
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}
