// Package newsapi provides a feeds.NewsClient backed by newsapi.org.
//
// The top-headlines payload is decoded with a streaming decoder so that only the
// fields the dashboard shows are materialized. NewsAPI sends explicit nulls for
// missing article fields; those decode as empty values.
package newsapi

import (
	"context"
	"net/http"
	"net/url"
	"notfound/pkg/domain"
	"notfound/pkg/feeds"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	// DefaultBaseURL is the public NewsAPI v2 endpoint.
	DefaultBaseURL = "https://newsapi.org/v2"
	// DefaultCountry and DefaultCategory select the feed shown on the dashboard.
	DefaultCountry  = "us"
	DefaultCategory = "technology"
)

// Client fetches top headlines for a fixed country and category.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	country    string
	category   string
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL  string
	APIKey   string
	Country  string
	Category string
}

// TopHeadlines returns the articles in the order NewsAPI sent them. An empty
// slice is returned when the feed has no articles.
func (c *Client) TopHeadlines(ctx context.Context) ([]domain.NewsItem, error) {
	// https://newsapi.org/docs/endpoints/top-headlines
	q := url.Values{}
	q.Set("country", c.country)
	q.Set("category", c.category)
	q.Set("apiKey", c.apiKey)

	b, err := feeds.Get(ctx, c.httpClient, c.baseURL+"/top-headlines?"+q.Encode(), nil)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	items, err := decodeHeadlines(jx.DecodeBytes(b))
	if err != nil {
		return nil, feeds.DecodeError(err)
	}

	return items, nil
}

func decodeHeadlines(d *jx.Decoder) ([]domain.NewsItem, error) {
	items := make([]domain.NewsItem, 0)
	var status, message string

	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "status":
			s, err := optString(d)
			status = s

			return errors.Wrap(err, "status")
		case "message":
			s, err := optString(d)
			message = s

			return errors.Wrap(err, "message")
		case "articles":
			if d.Next() == jx.Null {
				return d.Null()
			}

			return errors.Wrap(d.Arr(func(d *jx.Decoder) error {
				item, err := decodeArticle(d)
				if err != nil {
					return err
				}
				items = append(items, item)

				return nil
			}), "articles")
		default:
			return d.Skip()
		}
	}); err != nil {
		return nil, errors.Wrap(err, "decode top headlines")
	}

	// NewsAPI reports some failures with a 200 and status "error".
	if status == "error" {
		return nil, errors.Errorf("newsapi error: %s", message)
	}

	return items, nil
}

func decodeArticle(d *jx.Decoder) (domain.NewsItem, error) {
	var item domain.NewsItem

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "title":
			item.Title, err = optString(d)
		case "url":
			item.URL, err = optString(d)
		case "publishedAt":
			var s string
			if s, err = optString(d); err == nil && s != "" {
				// a malformed date only costs the relative age
				item.PublishedAt, _ = time.Parse(time.RFC3339, s)
			}
		case "source":
			item.Source, err = decodeSourceName(d)
		default:
			err = d.Skip()
		}

		return errors.Wrap(err, string(key))
	})
	if err != nil {
		return domain.NewsItem{}, errors.Wrap(err, "article")
	}

	return item, nil
}

func decodeSourceName(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	var name string
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "name" {
			return d.Skip()
		}
		var err error
		name, err = optString(d)

		return err
	})

	return name, err
}

// optString reads a string that may be null.
func optString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

var _ feeds.NewsClient = (*Client)(nil)

// New constructs a Client.
func New(httpClient *http.Client, opts Options) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		country:    opts.Country,
		category:   opts.Category,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.country == "" {
		c.country = DefaultCountry
	}
	if c.category == "" {
		c.category = DefaultCategory
	}

	return c
}
