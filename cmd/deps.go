package main

import (
	"context"
	"net/http"

	"notfound/internal/aggregator"
	"notfound/internal/config"
	"notfound/internal/theme"
	"notfound/pkg/feeds"
	"notfound/pkg/feeds/newsapi"
	"notfound/pkg/feeds/quotable"
	"notfound/pkg/feeds/unsplash"
	"notfound/pkg/feeds/weatherapi"
	"notfound/pkg/logger"
	"notfound/pkg/metrics"
	"notfound/pkg/storage"
	"notfound/pkg/storage/file"
	"notfound/pkg/storage/postgres"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Debug(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getStorage opens the preference store selected by the config.
func getStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func()) {
	if cfg.Storage.Driver == config.DriverPostgres {
		return getPostgres(ctx, cfg)
	}

	s := file.New(cfg.Storage.Path)

	return s, func() { _ = s.Close() }
}

// getThemeStore opens the preference store and wraps it in a theme.Store.
func getThemeStore(ctx context.Context, cfg *config.Config) (*theme.Store, func()) {
	strg, closeStrg := getStorage(ctx, cfg)

	return theme.NewStore(strg), closeStrg
}

// getMetrics creates the meter provider and returns a cleanup function that
// writes the textfile (when a path is given) and shuts the provider down.
func getMetrics(ctx context.Context, path *string) (*metrics.Provider, func()) {
	mp, err := metrics.NewProvider()
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	return mp, func() {
		var err error
		if *path != "" {
			err = multierr.Append(err, mp.WriteTextfile(*path))
		}
		err = multierr.Append(err, mp.Shutdown(ctx))
		if err != nil {
			logger.Warn(ctx, "could not flush metrics", zap.Error(err))
		}
	}
}

// newHTTPClient returns the client shared by all feeds. Requests are
// instrumented so upstream latency shows up next to the aggregator metrics.
// Each request is also access-logged at debug level with a request id.
// Timeouts come from the per-source context, not from the client.
func newHTTPClient(mp metric.MeterProvider) *http.Client {
	return &http.Client{
		Transport: feeds.WithLogging(otelhttp.NewTransport(http.DefaultTransport, otelhttp.WithMeterProvider(mp))),
	}
}

// getAggregator wires the feed clients into an Aggregator.
func getAggregator(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) *aggregator.Aggregator {
	src := cfg.Sources
	httpClient := newHTTPClient(mp)

	agg, err := aggregator.New(aggregator.Options{
		Image:      unsplash.New(httpClient, src.Image.BaseURL, src.Image.APIKey),
		ImageKey:   src.Image.APIKey,
		Weather:    weatherapi.New(httpClient, src.Weather.BaseURL, src.Weather.APIKey, src.Weather.Query),
		WeatherKey: src.Weather.APIKey,
		News: newsapi.New(httpClient, newsapi.Options{
			BaseURL:  src.News.BaseURL,
			APIKey:   src.News.APIKey,
			Country:  src.News.Country,
			Category: src.News.Category,
		}),
		NewsKey:       src.News.APIKey,
		Quote:         quotable.New(httpClient, src.Quote.BaseURL),
		Timeout:       src.Timeout,
		MeterProvider: mp,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create aggregator", zap.Error(err))
	}

	return agg
}
