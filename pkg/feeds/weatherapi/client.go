// Package weatherapi provides a feeds.WeatherClient backed by weatherapi.com.
package weatherapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"notfound/pkg/domain"
	"notfound/pkg/feeds"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public WeatherAPI v1 endpoint.
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// DefaultQuery resolves the location from the caller's IP address.
const DefaultQuery = "auto:ip"

// Client fetches current conditions. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	query      string // query is the WeatherAPI "q" parameter
}

// Current returns the current weather for the configured query.
func (c *Client) Current(ctx context.Context) (domain.WeatherSnapshot, error) {
	// https://www.weatherapi.com/docs/#apis-realtime
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", c.query)

	b, err := feeds.Get(ctx, c.httpClient, c.baseURL+"/current.json?"+q.Encode(), nil)
	if err != nil {
		return domain.WeatherSnapshot{}, err //nolint: wrapcheck
	}

	if !gjson.ValidBytes(b) {
		return domain.WeatherSnapshot{}, feeds.DecodeError(errors.New("invalid json"))
	}

	res := gjson.GetManyBytes(b,
		"current.temp_c",
		"current.condition.text",
		"current.humidity",
		"current.wind_kph",
		"location.name",
	)

	return domain.WeatherSnapshot{
		TemperatureC: res[0].Float(),
		Condition:    res[1].String(),
		Humidity:     int(res[2].Int()),
		WindKph:      res[3].Float(),
		Location:     res[4].String(),
	}, nil
}

var _ feeds.WeatherClient = (*Client)(nil)

// New constructs a Client. Empty baseURL and query select the defaults.
func New(httpClient *http.Client, baseURL, apiKey, query string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if query == "" {
		query = DefaultQuery
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		query:      query,
	}
}
