// Package aggregator fetches every dashboard feed concurrently and folds the
// results over the fallback baseline. A cycle always yields a fully populated
// view model; source failures only show up in reports, logs and metrics.
package aggregator

import (
	"context"
	"fmt"
	"time"

	"notfound/pkg/domain"
	"notfound/pkg/feeds"
	"notfound/pkg/logger"
	"notfound/pkg/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "notfound/internal/aggregator"

// Source names.
const (
	SourceImage   = "image"
	SourceWeather = "weather"
	SourceNews    = "news"
	SourceQuote   = "quote"
)

// DefaultTimeout bounds each source call when Options.Timeout is zero.
const DefaultTimeout = 2 * time.Second

// Options wires the aggregator to its feeds. A nil client counts as an
// unconfigured source.
type Options struct {
	Image      feeds.ImageClient
	ImageKey   string
	Weather    feeds.WeatherClient
	WeatherKey string
	News       feeds.NewsClient
	NewsKey    string
	Quote      feeds.QuoteClient

	// Timeout bounds every source call.
	Timeout time.Duration
	// Baseline is the fallback record. Nil selects domain.NewBaseline(time.Now()).
	Baseline *domain.Baseline

	// MeterProvider and TracerProvider default to the otel globals.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// Cycle is the outcome of one aggregation run.
type Cycle struct {
	ID        uuid.UUID
	ViewModel domain.ViewModel
	// Reports holds one entry per source, in image, weather, news, quote order.
	Reports []Report
}

// Live returns the names of the sources whose values made it into the view model.
func (c Cycle) Live() []string {
	var live []string
	for _, r := range c.Reports {
		if r.Live {
			live = append(live, r.Source)
		}
	}

	return live
}

// Aggregator runs aggregation cycles. It is safe for concurrent use.
type Aggregator struct {
	image   Source[string]
	weather Source[domain.WeatherSnapshot]
	news    Source[domain.NewsItem]
	quote   Source[domain.QuoteItem]

	baseline domain.Baseline
	timeout  time.Duration

	tracer    trace.Tracer
	cycles    metric.Int64Counter
	fallbacks metric.Int64Counter
	latency   metric.Float64Histogram
}

// New builds an Aggregator from opts.
func New(opts Options) (*Aggregator, error) {
	a := &Aggregator{timeout: opts.Timeout}
	if a.timeout <= 0 {
		a.timeout = DefaultTimeout
	}
	if opts.Baseline != nil {
		a.baseline = *opts.Baseline
	} else {
		a.baseline = domain.NewBaseline(time.Now())
	}

	mp := opts.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if err := a.initTelemetry(mp.Meter(instrumentationName), tp.Tracer(instrumentationName)); err != nil {
		return nil, err
	}

	a.image = Source[string]{
		Name:               SourceImage,
		RequiresCredential: true,
		Credential:         opts.ImageKey,
		Usable:             func(u string) bool { return u != "" },
		Baseline:           a.baseline.ImageURL,
	}
	if opts.Image != nil {
		a.image.Fetch = opts.Image.RandomImage
	}

	a.weather = Source[domain.WeatherSnapshot]{
		Name:               SourceWeather,
		RequiresCredential: true,
		Credential:         opts.WeatherKey,
		Usable:             func(w domain.WeatherSnapshot) bool { return w.Location != "" },
		Baseline:           a.baseline.Weather,
	}
	if opts.Weather != nil {
		a.weather.Fetch = opts.Weather.Current
	}

	a.news = Source[domain.NewsItem]{
		Name:               SourceNews,
		RequiresCredential: true,
		Credential:         opts.NewsKey,
		Usable:             func(n domain.NewsItem) bool { return n.Title != "" },
		Baseline:           a.baseline.News,
	}
	if opts.News != nil {
		a.news.Fetch = firstHeadline(opts.News)
	}

	a.quote = Source[domain.QuoteItem]{
		Name:     SourceQuote,
		Usable:   func(q domain.QuoteItem) bool { return q.Content != "" },
		Baseline: a.baseline.Quote,
	}
	if opts.Quote != nil {
		a.quote.Fetch = opts.Quote.RandomQuote
	}

	return a, nil
}

// firstHeadline adapts a news feed to a single item. An empty feed yields the
// zero item, which the usability check rejects.
func firstHeadline(c feeds.NewsClient) func(context.Context) (domain.NewsItem, error) {
	return func(ctx context.Context) (domain.NewsItem, error) {
		items, err := c.TopHeadlines(ctx)
		if err != nil || len(items) == 0 {
			return domain.NewsItem{}, err
		}

		return items[0], nil
	}
}

func (a *Aggregator) initTelemetry(meter metric.Meter, tracer trace.Tracer) error {
	var err error

	a.tracer = tracer
	if a.cycles, err = meter.Int64Counter("aggregator.cycles",
		metric.WithDescription("Completed aggregation cycles")); err != nil {
		return fmt.Errorf("could not create cycles counter: %w", err)
	}
	if a.fallbacks, err = meter.Int64Counter("aggregator.fallbacks",
		metric.WithDescription("Categories rendered from the baseline, by source and reason")); err != nil {
		return fmt.Errorf("could not create fallbacks counter: %w", err)
	}
	if a.latency, err = meter.Float64Histogram("aggregator.source.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Time spent waiting for a source"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...)); err != nil {
		return fmt.Errorf("could not create latency histogram: %w", err)
	}

	return nil
}

// Baseline returns the fallback record the aggregator folds over.
func (a *Aggregator) Baseline() domain.Baseline { return a.baseline }

// Run starts all source fetches concurrently, waits for every one of them to
// settle and returns the folded view model. Run never fails; cancelling ctx
// makes pending sources settle on their baseline immediately.
func (a *Aggregator) Run(ctx context.Context) Cycle {
	c := Cycle{ID: uuid.New(), Reports: make([]Report, 4)}

	ctx = logger.WithFields(ctx, zap.String("cycleID", c.ID.String()))
	ctx, span := a.tracer.Start(ctx, "aggregator.Run",
		trace.WithAttributes(attribute.String("cycle.id", c.ID.String())))
	defer span.End()

	vm := &c.ViewModel

	// every goroutine returns nil, so Wait only means "all settled"
	var g errgroup.Group
	g.Go(func() error {
		vm.ImageURL, c.Reports[0] = settle(ctx, a, a.image)

		return nil
	})
	g.Go(func() error {
		vm.Weather, c.Reports[1] = settle(ctx, a, a.weather)

		return nil
	})
	g.Go(func() error {
		vm.News, c.Reports[2] = settle(ctx, a, a.news)

		return nil
	})
	g.Go(func() error {
		vm.Quote, c.Reports[3] = settle(ctx, a, a.quote)

		return nil
	})
	_ = g.Wait()

	live := c.Live()
	span.SetAttributes(attribute.StringSlice("cycle.live", live))
	a.cycles.Add(ctx, 1)
	logger.Debug(ctx, "aggregation cycle settled", zap.Strings("live", live))

	return c
}

// settle runs one source inside its own span and records the outcome.
func settle[T any](ctx context.Context, a *Aggregator, src Source[T]) (T, Report) {
	ctx, span := a.tracer.Start(ctx, "aggregator.source",
		trace.WithAttributes(attribute.String("source", src.Name)))
	defer span.End()

	v, rep := FetchWithFallback(ctx, src, a.timeout)
	a.record(ctx, span, rep)

	return v, rep
}

func (a *Aggregator) record(ctx context.Context, span trace.Span, rep Report) {
	source := attribute.String("source", rep.Source)

	if rep.Live {
		span.SetAttributes(attribute.Bool("live", true))
		a.latency.Record(ctx, rep.Duration.Seconds(),
			metric.WithAttributes(source, attribute.String("outcome", "live")))

		return
	}

	reason := rep.Reason.Error()
	span.SetAttributes(attribute.Bool("live", false), attribute.String("reason", reason))
	a.fallbacks.Add(ctx, 1, metric.WithAttributes(source, attribute.String("reason", reason)))

	if rep.Skipped() {
		logger.Debug(ctx, "source not configured, using fallback", zap.String("source", rep.Source))

		return
	}

	span.RecordError(rep.Err)
	span.SetStatus(codes.Error, reason)
	a.latency.Record(ctx, rep.Duration.Seconds(),
		metric.WithAttributes(source, attribute.String("outcome", "fallback")))
	logger.Info(ctx, "using fallback",
		zap.String("source", rep.Source),
		zap.String("reason", reason),
		zap.Error(rep.Err),
	)
}
