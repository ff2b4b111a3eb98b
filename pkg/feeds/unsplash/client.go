// Package unsplash provides a feeds.ImageClient backed by the Unsplash API.
package unsplash

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"notfound/pkg/feeds"
	"strings"
)

// DefaultBaseURL is the public Unsplash API endpoint.
const DefaultBaseURL = "https://api.unsplash.com"

// Client fetches random landscape photos. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Unsplash
	baseURL    string       // baseURL is the API root without a trailing slash
	accessKey  string       // accessKey is the Unsplash client_id
}

// RandomImage returns the "regular" rendition URL of a random landscape
// photo. An empty string is returned when the response carries no URL.
func (c *Client) RandomImage(ctx context.Context) (string, error) {
	// https://unsplash.com/documentation#get-a-random-photo
	q := url.Values{}
	q.Set("client_id", c.accessKey)
	q.Set("orientation", "landscape")
	q.Set("w", "1200")
	q.Set("h", "800")

	b, err := feeds.Get(ctx, c.httpClient, c.baseURL+"/photos/random?"+q.Encode(), nil)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	var photo struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	}
	if err := json.Unmarshal(b, &photo); err != nil {
		return "", feeds.DecodeError(err)
	}

	return photo.URLs.Regular, nil
}

// Ensure Client conforms to the feeds.ImageClient interface at compile time.
var _ feeds.ImageClient = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and access key.
// An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string, accessKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessKey:  accessKey,
	}
}
