package aggregator_test

import (
	"context"
	"errors"
	"notfound/internal/aggregator"
	"notfound/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsConfigured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		credential string
		want       bool
	}{
		{credential: "", want: false},
		{credential: "YOUR_UNSPLASH_ACCESS_KEY", want: false},
		{credential: "prefix-YOUR_-suffix", want: false},
		{credential: "your_key", want: true},
		{credential: "a1b2c3", want: true},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, aggregator.IsConfigured(tt.credential), tt.credential)
	}
}

func TestFetchWithFallback(t *testing.T) {
	t.Parallel()

	called := false
	base := aggregator.Source[string]{
		Name:     "test",
		Usable:   func(s string) bool { return s != "" },
		Baseline: "baseline",
	}

	tests := []struct {
		name       string
		src        func() aggregator.Source[string]
		want       string
		wantLive   bool
		wantReason serrors.Kind
	}{
		{
			name: "fulfilled",
			src: func() aggregator.Source[string] {
				s := base
				s.Fetch = func(context.Context) (string, error) { return "live", nil }

				return s
			},
			want:     "live",
			wantLive: true,
		},
		{
			name: "missing credential",
			src: func() aggregator.Source[string] {
				s := base
				s.RequiresCredential = true
				s.Fetch = func(context.Context) (string, error) {
					called = true

					return "live", nil
				}

				return s
			},
			want:       "baseline",
			wantReason: serrors.ErrNotConfigured,
		},
		{
			name: "placeholder credential",
			src: func() aggregator.Source[string] {
				s := base
				s.RequiresCredential = true
				s.Credential = "YOUR_KEY"
				s.Fetch = func(context.Context) (string, error) {
					called = true

					return "live", nil
				}

				return s
			},
			want:       "baseline",
			wantReason: serrors.ErrNotConfigured,
		},
		{
			name: "no fetch",
			src: func() aggregator.Source[string] {
				return base
			},
			want:       "baseline",
			wantReason: serrors.ErrNotConfigured,
		},
		{
			name: "rejected",
			src: func() aggregator.Source[string] {
				s := base
				s.Fetch = func(context.Context) (string, error) {
					return "", serrors.With(serrors.ErrRateLimited, "slow down")
				}

				return s
			},
			want:       "baseline",
			wantReason: serrors.ErrRateLimited,
		},
		{
			name: "plain error",
			src: func() aggregator.Source[string] {
				s := base
				s.Fetch = func(context.Context) (string, error) { return "", errors.New("boom") }

				return s
			},
			want:       "baseline",
			wantReason: serrors.ErrInternal,
		},
		{
			name: "value and error",
			src: func() aggregator.Source[string] {
				s := base
				s.Fetch = func(context.Context) (string, error) { return "partial", errors.New("boom") }

				return s
			},
			want:       "baseline",
			wantReason: serrors.ErrInternal,
		},
		{
			name: "unusable",
			src: func() aggregator.Source[string] {
				s := base
				s.Fetch = func(context.Context) (string, error) { return "", nil }

				return s
			},
			want:       "baseline",
			wantReason: serrors.ErrEmpty,
		},
		{
			name: "nil usable accepts anything",
			src: func() aggregator.Source[string] {
				s := base
				s.Usable = nil
				s.Fetch = func(context.Context) (string, error) { return "", nil }

				return s
			},
			want:     "",
			wantLive: true,
		},
	}

	for _, tt := range tests {
		v, rep := aggregator.FetchWithFallback(context.Background(), tt.src(), time.Second)
		require.Equal(t, tt.want, v, tt.name)
		require.Equal(t, tt.wantLive, rep.Live, tt.name)
		require.Equal(t, "test", rep.Source, tt.name)
		if tt.wantLive {
			require.Nil(t, rep.Reason, tt.name)
			require.NoError(t, rep.Err, tt.name)
		} else {
			require.Equal(t, tt.wantReason, rep.Reason, tt.name)
		}
	}
	require.False(t, called, "unconfigured sources must not be called")
}

func TestFetchWithFallback_Timeout(t *testing.T) {
	t.Parallel()

	src := aggregator.Source[string]{
		Name:     "slow",
		Baseline: "baseline",
		Fetch: func(ctx context.Context) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		},
	}

	v, rep := aggregator.FetchWithFallback(context.Background(), src, 10*time.Millisecond)
	require.Equal(t, "baseline", v)
	require.Equal(t, serrors.ErrTimeout, rep.Reason)
	require.ErrorIs(t, rep.Err, context.DeadlineExceeded)
	require.GreaterOrEqual(t, rep.Duration, 10*time.Millisecond)
}

func TestFetchWithFallback_TimeoutIgnoredByFetch(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	src := aggregator.Source[string]{
		Name:     "stubborn",
		Baseline: "baseline",
		Fetch: func(context.Context) (string, error) {
			<-release

			return "late", nil
		},
	}

	start := time.Now()
	v, rep := aggregator.FetchWithFallback(context.Background(), src, 20*time.Millisecond)
	require.Equal(t, "baseline", v)
	require.Equal(t, serrors.ErrTimeout, rep.Reason)
	require.Less(t, time.Since(start), time.Second)
}

func TestFetchWithFallback_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := aggregator.Source[string]{
		Name:     "canceled",
		Baseline: "baseline",
		Fetch: func(ctx context.Context) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		},
	}

	v, rep := aggregator.FetchWithFallback(ctx, src, time.Second)
	require.Equal(t, "baseline", v)
	require.Equal(t, serrors.ErrCanceled, rep.Reason)
}

func TestReport_Skipped(t *testing.T) {
	t.Parallel()

	require.True(t, aggregator.Report{Reason: serrors.ErrNotConfigured}.Skipped())
	require.False(t, aggregator.Report{Reason: serrors.ErrTimeout}.Skipped())
	require.False(t, aggregator.Report{Live: true}.Skipped())
}
