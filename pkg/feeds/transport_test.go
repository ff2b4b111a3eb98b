package feeds_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"notfound/pkg/feeds"
	"notfound/pkg/logger"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedactURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
		gone []string
	}{
		{
			in:   "https://api.unsplash.com/photos/random?client_id=secret&orientation=landscape",
			want: []string{"client_id=REDACTED", "orientation=landscape"},
			gone: []string{"secret"},
		},
		{
			in:   "https://newsapi.org/v2/top-headlines?apiKey=secret&country=us",
			want: []string{"apiKey=REDACTED", "country=us"},
			gone: []string{"secret"},
		},
		{
			in:   "https://api.quotable.io/random",
			want: []string{"https://api.quotable.io/random"},
		},
	}

	for _, tt := range tests {
		u, err := url.Parse(tt.in)
		require.NoError(t, err)

		got := feeds.RedactURL(u)
		for _, w := range tt.want {
			require.Contains(t, got, w)
		}
		for _, g := range tt.gone {
			require.NotContains(t, got, g)
		}
	}
	require.Empty(t, feeds.RedactURL(nil))
}

func TestWithLogging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	var seenID string
	client := &http.Client{Transport: feeds.WithLogging(rtFunc(func(r *http.Request) (*http.Response, error) {
		seenID = r.Header.Get(feeds.RequestIDHeader)

		return &http.Response{StatusCode: http.StatusTeapot, Body: io.NopCloser(strings.NewReader(""))}, nil
	}))}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.weatherapi.com/v1/current.json?key=secret", nil)
	require.NoError(t, err)
	res, err := client.Do(req)
	require.NoError(t, err)
	_ = res.Body.Close()

	require.NotEmpty(t, seenID)
	require.Empty(t, req.Header.Get(feeds.RequestIDHeader), "caller's request must not be mutated")

	entries := logs.FilterMessage("upstream access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, seenID, fields["request_id"])
	require.Equal(t, int64(http.StatusTeapot), fields["status_code"])
	require.NotContains(t, fields["url"], "secret")
}

func TestWithLogging_TransportError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	rt := feeds.WithLogging(rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "fixed-id", r.Header.Get(feeds.RequestIDHeader))

		return nil, errors.New("connection reset")
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.quotable.io/random", nil)
	require.NoError(t, err)
	req.Header.Set(feeds.RequestIDHeader, "fixed-id")

	_, err = rt.RoundTrip(req)
	require.ErrorContains(t, err, "connection reset")
	require.Equal(t, 1, logs.FilterMessage("upstream request failed").Len())
}
