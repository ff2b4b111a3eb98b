package domain

import "time"

// WeatherSnapshot is the current weather at the caller's location.
type WeatherSnapshot struct {
	// TemperatureC is the current temperature in degrees Celsius.
	TemperatureC float64 `json:"temperatureC" yaml:"temperatureC"`
	// Condition is a short human-readable description such as "Sunny".
	Condition string `json:"condition" yaml:"condition"`
	// Humidity is the relative humidity in percent.
	Humidity int `json:"humidity" yaml:"humidity"`
	// WindKph is the wind speed in kilometres per hour.
	WindKph float64 `json:"windKph" yaml:"windKph"`
	// Location is the resolved location name.
	Location string `json:"location" yaml:"location"`
}

// NewsItem is a single headline.
type NewsItem struct {
	Title       string    `json:"title"       yaml:"title"`
	URL         string    `json:"url"         yaml:"url"`
	Source      string    `json:"source"      yaml:"source"`
	PublishedAt time.Time `json:"publishedAt" yaml:"publishedAt"`
}

// QuoteItem is a quotation with its author.
type QuoteItem struct {
	Content string `json:"content" yaml:"content"`
	Author  string `json:"author"  yaml:"author"`
}

// ViewModel is the composite object handed to the rendering layer once per
// aggregation cycle. Every field is always populated, either with live data or
// with the matching Baseline value.
type ViewModel struct {
	ImageURL string          `json:"imageUrl" yaml:"imageUrl"`
	Weather  WeatherSnapshot `json:"weather"  yaml:"weather"`
	News     NewsItem        `json:"news"     yaml:"news"`
	Quote    QuoteItem       `json:"quote"    yaml:"quote"`
}
