package unsplash_test

import (
	"context"
	"io"
	"net/http"
	"notfound/pkg/feeds/unsplash"
	"notfound/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *unsplash.Client {
	return unsplash.New(&http.Client{Transport: fn}, "", "test-key")
}

func TestClient_RandomImage_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.unsplash.com", r.URL.Host)
		require.Equal(t, "/photos/random", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("client_id"))
		require.Equal(t, "landscape", r.URL.Query().Get("orientation"))

		body := `{"id":"abc","urls":{"raw":"https://img/raw","regular":"https://img/regular"}}`

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})

	u, err := c.RandomImage(context.Background())
	require.NoError(t, err)
	require.Equal(t, "https://img/regular", u)
}

func TestClient_RandomImage_missingURL(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`{"id":"abc"}`))}, nil
	})

	u, err := c.RandomImage(context.Background())
	require.NoError(t, err)
	require.Empty(t, u)
}

func TestClient_RandomImage_customBaseURL(t *testing.T) {
	c := unsplash.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "unsplash.internal", r.URL.Host)
		require.Equal(t, "/proxy/photos/random", r.URL.Path)

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"urls":{"regular":"x"}}`)),
		}, nil
	})}, "http://unsplash.internal/proxy/", "k")

	u, err := c.RandomImage(context.Background())
	require.NoError(t, err)
	require.Equal(t, "x", u)
}

func TestClient_RandomImage_unauthorized(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(strings.NewReader(`{"errors":["OAuth error: The access token is invalid"]}`)),
		}, nil
	})

	_, err := c.RandomImage(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestClient_RandomImage_badJSON(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`<html>`))}, nil
	})

	_, err := c.RandomImage(context.Background())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
