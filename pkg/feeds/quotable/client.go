// Package quotable provides a feeds.QuoteClient backed by the Quotable API.
// The API is public and needs no credential.
package quotable

import (
	"context"
	"encoding/json"
	"net/http"
	"notfound/pkg/domain"
	"notfound/pkg/feeds"
	"strings"
)

// DefaultBaseURL is the public Quotable endpoint.
const DefaultBaseURL = "https://api.quotable.io"

// Client fetches random quotes.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// RandomQuote returns one random quote.
func (c *Client) RandomQuote(ctx context.Context) (domain.QuoteItem, error) {
	b, err := feeds.Get(ctx, c.httpClient, c.baseURL+"/random", nil)
	if err != nil {
		return domain.QuoteItem{}, err //nolint: wrapcheck
	}

	var q domain.QuoteItem
	if err := json.Unmarshal(b, &q); err != nil {
		return domain.QuoteItem{}, feeds.DecodeError(err)
	}

	return q, nil
}

var _ feeds.QuoteClient = (*Client)(nil)

// New constructs a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
