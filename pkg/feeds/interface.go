// Package feeds defines the clients for the external data sources shown on the
// dashboard, the shared request helper that maps HTTP failures to semantic
// error kinds, and a logging transport for the HTTP client they share.
package feeds

import (
	"context"
	"notfound/pkg/domain"
)

// ImageClient returns a display URL for a background image.
//
//go:generate mockgen -package mockfeeds -source=interface.go -destination=mock/mockfeeds.go *
type ImageClient interface {
	RandomImage(ctx context.Context) (string, error)
}

// WeatherClient returns the current weather for the caller's location.
type WeatherClient interface {
	Current(ctx context.Context) (domain.WeatherSnapshot, error)
}

// NewsClient returns the top headlines for a fixed country and category, in
// the order the provider ranks them. An empty slice is a valid response.
type NewsClient interface {
	TopHeadlines(ctx context.Context) ([]domain.NewsItem, error)
}

// QuoteClient returns a random quotation.
type QuoteClient interface {
	RandomQuote(ctx context.Context) (domain.QuoteItem, error)
}
