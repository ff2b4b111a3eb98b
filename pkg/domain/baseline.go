package domain

import "time"

// BaselineImageURL is the landscape photo shown when no image source is available.
//
//nolint: lll
const BaselineImageURL = "https://images.unsplash.com/photo-1506744038136-46273834b3fb?ixlib=rb-4.0.3&auto=format&fit=crop&w=1600&q=80"

// Baseline is the fixed fallback record with one value per category. A
// Baseline is built once and never mutated; ViewModel returns it as a
// fully populated view model.
type Baseline struct {
	ImageURL string
	Weather  WeatherSnapshot
	News     NewsItem
	Quote    QuoteItem
}

// NewBaseline returns the fallback record. publishedAt stamps the baseline
// headline, since a placeholder story has no real publication time.
func NewBaseline(publishedAt time.Time) Baseline {
	return Baseline{
		ImageURL: BaselineImageURL,
		Weather: WeatherSnapshot{
			TemperatureC: 24.5,
			Condition:    "Sunny",
			Humidity:     45,
			WindKph:      12,
			Location:     "California",
		},
		News: NewsItem{
			Title:       "The Future of Design: Minimalist & Clean Interfaces",
			URL:         "#",
			Source:      "DesignDaily",
			PublishedAt: publishedAt,
		},
		Quote: QuoteItem{
			Content: "Simplicity is the ultimate sophistication.",
			Author:  "Leonardo da Vinci",
		},
	}
}

// ViewModel returns a view model made entirely of baseline values.
func (b Baseline) ViewModel() ViewModel {
	return ViewModel{
		ImageURL: b.ImageURL,
		Weather:  b.Weather,
		News:     b.News,
		Quote:    b.Quote,
	}
}
