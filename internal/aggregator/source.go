package aggregator

import (
	"context"
	"strings"
	"time"

	"notfound/pkg/serrors"
)

// Placeholder marks a credential copied from a sample config and never filled in.
const Placeholder = "YOUR_"

// IsConfigured reports whether credential is usable: non-empty and not a
// placeholder.
func IsConfigured(credential string) bool {
	return credential != "" && !strings.Contains(credential, Placeholder)
}

// Source describes one best-effort data feed.
type Source[T any] struct {
	// Name labels logs, spans and metrics.
	Name string
	// RequiresCredential skips the source when Credential is not configured.
	RequiresCredential bool
	Credential         string
	// Fetch performs the single attempt. It must honor ctx cancellation.
	Fetch func(ctx context.Context) (T, error)
	// Usable rejects fulfilled but empty payloads. A nil Usable accepts everything.
	Usable func(T) bool
	// Baseline is returned whenever the source does not produce a usable value.
	Baseline T
}

// Report describes how a source settled.
type Report struct {
	Source string
	// Live is true when the returned value came from the source.
	Live bool
	// Reason is the kind of failure when Live is false.
	Reason serrors.Kind
	// Err is the underlying failure, nil for unconfigured sources.
	Err error
	// Duration is the time spent waiting for the source. Zero when skipped.
	Duration time.Duration
}

// Skipped reports whether the source was never called.
func (r Report) Skipped() bool { return r.Reason == serrors.ErrNotConfigured }

type result[T any] struct {
	v   T
	err error
}

// FetchWithFallback makes one time-bounded attempt at src and returns either
// the fetched value or src.Baseline. It never fails: the Report says which
// one was returned and why. A non-positive timeout leaves only ctx as bound.
func FetchWithFallback[T any](ctx context.Context, src Source[T], timeout time.Duration) (T, Report) {
	rep := Report{Source: src.Name}

	if src.Fetch == nil || (src.RequiresCredential && !IsConfigured(src.Credential)) {
		rep.Reason = serrors.ErrNotConfigured

		return src.Baseline, rep
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan result[T], 1)
	go func() {
		v, err := src.Fetch(ctx)
		done <- result[T]{v: v, err: err}
	}()

	var res result[T]
	select {
	case res = <-done:
	case <-ctx.Done():
		res.err = ctx.Err()
	}
	rep.Duration = time.Since(start)

	switch {
	case res.err != nil:
		rep.Reason = serrors.KindOf(res.err)
		rep.Err = res.err
	case src.Usable != nil && !src.Usable(res.v):
		rep.Reason = serrors.ErrEmpty
		rep.Err = serrors.With(serrors.ErrEmpty, "%s returned no usable data", src.Name)
	default:
		rep.Live = true

		return res.v, rep
	}

	return src.Baseline, rep
}
