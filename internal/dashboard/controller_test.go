package dashboard_test

import (
	"context"
	"errors"
	"notfound/internal/aggregator"
	"notfound/internal/dashboard"
	"notfound/pkg/domain"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var baseline = domain.NewBaseline(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

// run is one pending call to fakeAggregator.Run.
type run struct {
	ctx     context.Context
	release chan domain.ViewModel
}

// fakeAggregator hands every Run call to the test through runs and blocks
// until the test releases it or the call's context is canceled.
type fakeAggregator struct {
	runs chan *run
}

func newFakeAggregator() *fakeAggregator {
	return &fakeAggregator{runs: make(chan *run, 8)}
}

func (f *fakeAggregator) Baseline() domain.Baseline { return baseline }

func (f *fakeAggregator) Run(ctx context.Context) aggregator.Cycle {
	r := &run{ctx: ctx, release: make(chan domain.ViewModel, 1)}
	f.runs <- r

	select {
	case vm := <-r.release:
		return aggregator.Cycle{ID: uuid.New(), ViewModel: vm}
	case <-ctx.Done():
		return aggregator.Cycle{ID: uuid.New(), ViewModel: baseline.ViewModel()}
	}
}

// instantAggregator returns vm immediately.
type instantAggregator struct{ vm domain.ViewModel }

func (a instantAggregator) Baseline() domain.Baseline { return baseline }

func (a instantAggregator) Run(context.Context) aggregator.Cycle {
	return aggregator.Cycle{ID: uuid.New(), ViewModel: a.vm}
}

type memThemes struct {
	mu      sync.Mutex
	theme   domain.Theme
	loadErr error
	saveErr error
	saves   []domain.Theme
}

func (m *memThemes) Load(context.Context) (domain.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return domain.ThemeLight, m.loadErr
	}
	if m.theme == "" {
		return domain.ThemeLight, nil
	}

	return m.theme, nil
}

func (m *memThemes) Save(_ context.Context, t domain.Theme) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, t)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.theme = t

	return nil
}

func liveVM(title string) domain.ViewModel {
	vm := baseline.ViewModel()
	vm.News.Title = title

	return vm
}

func TestController_InitialState(t *testing.T) {
	t.Parallel()

	c := dashboard.New(newFakeAggregator(), &memThemes{})
	s := c.State()
	require.Equal(t, baseline.ViewModel(), s.ViewModel)
	require.False(t, s.Loading)
	require.Equal(t, domain.ThemeLight, s.Theme)
	require.Zero(t, s.Cycle)
}

func TestController_Init(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var published []dashboard.State
	c := dashboard.New(instantAggregator{vm: liveVM("live")}, &memThemes{theme: domain.ThemeDark},
		dashboard.WithNotify(func(s dashboard.State) { published = append(published, s) }),
		dashboard.WithClock(func() time.Time { return now }),
	)

	s := c.Init(context.Background())
	require.Equal(t, domain.ThemeDark, s.Theme)
	require.Equal(t, "live", s.ViewModel.News.Title)
	require.False(t, s.Loading)
	require.Equal(t, uint64(1), s.Cycle)
	require.Equal(t, now, s.UpdatedAt)
	require.Equal(t, s, c.State())

	// theme restored, loading raised, cycle committed
	require.Len(t, published, 3)
	require.Equal(t, domain.ThemeDark, published[0].Theme)
	require.False(t, published[0].Loading)
	require.True(t, published[1].Loading)
	require.False(t, published[2].Loading)
}

func TestController_Init_ThemeLoadFailure(t *testing.T) {
	t.Parallel()

	c := dashboard.New(instantAggregator{vm: liveVM("live")}, &memThemes{loadErr: errors.New("unreadable")})
	s := c.Init(context.Background())
	require.Equal(t, domain.ThemeLight, s.Theme)
	require.Equal(t, "live", s.ViewModel.News.Title)
}

func TestController_Refresh_LoadingFlag(t *testing.T) {
	t.Parallel()

	agg := newFakeAggregator()
	c := dashboard.New(agg, &memThemes{})

	done := make(chan dashboard.State)
	go func() { done <- c.Refresh(context.Background()) }()

	r := <-agg.runs
	require.True(t, c.State().Loading)
	require.Equal(t, baseline.ViewModel(), c.State().ViewModel)

	r.release <- liveVM("first")
	s := <-done
	require.False(t, s.Loading)
	require.Equal(t, "first", s.ViewModel.News.Title)
}

// A refresh started while another is in flight cancels it; the older result
// is discarded even when it settles last, and loading stays raised until the
// newest cycle commits.
func TestController_Refresh_Supersedes(t *testing.T) {
	t.Parallel()

	agg := newFakeAggregator()
	c := dashboard.New(agg, &memThemes{})
	ctx := context.Background()

	firstDone := make(chan dashboard.State)
	go func() { firstDone <- c.Refresh(ctx) }()
	first := <-agg.runs

	secondDone := make(chan dashboard.State)
	go func() { secondDone <- c.Refresh(ctx) }()
	second := <-agg.runs

	// the superseded cycle is canceled
	select {
	case <-first.ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("first cycle was not canceled")
	}
	require.NoError(t, second.ctx.Err())

	s := <-firstDone
	require.True(t, s.Loading, "superseded cycle must not clear loading")
	require.Equal(t, baseline.ViewModel(), c.State().ViewModel)
	require.Zero(t, c.State().Cycle)

	second.release <- liveVM("second")
	s = <-secondDone
	require.False(t, s.Loading)
	require.Equal(t, "second", s.ViewModel.News.Title)
	require.Equal(t, uint64(2), s.Cycle)
}

func TestController_Refresh_StaleResultDiscarded(t *testing.T) {
	t.Parallel()

	agg := newFakeAggregator()
	c := dashboard.New(agg, &memThemes{})
	ctx := context.Background()

	firstDone := make(chan dashboard.State)
	go func() { firstDone <- c.Refresh(ctx) }()
	first := <-agg.runs

	secondDone := make(chan dashboard.State)
	go func() { secondDone <- c.Refresh(ctx) }()
	second := <-agg.runs

	second.release <- liveVM("second")
	require.Equal(t, "second", (<-secondDone).ViewModel.News.Title)

	// first settles after second committed; release is buffered so the fake
	// may return either value, neither may replace the committed one
	first.release <- liveVM("stale")
	<-firstDone
	require.Equal(t, "second", c.State().ViewModel.News.Title)
	require.False(t, c.State().Loading)
}

func TestController_ToggleTheme(t *testing.T) {
	t.Parallel()

	themes := &memThemes{}
	c := dashboard.New(newFakeAggregator(), themes)

	next, err := c.ToggleTheme(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.ThemeDark, next)
	require.Equal(t, domain.ThemeDark, c.State().Theme)

	next, err = c.ToggleTheme(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.ThemeLight, next)
	require.Equal(t, []domain.Theme{domain.ThemeDark, domain.ThemeLight}, themes.saves)
}

func TestController_ToggleTheme_PersistFailure(t *testing.T) {
	t.Parallel()

	c := dashboard.New(newFakeAggregator(), &memThemes{saveErr: errors.New("read-only")})

	next, err := c.ToggleTheme(context.Background())
	require.ErrorContains(t, err, "read-only")
	require.Equal(t, domain.ThemeDark, next)
	require.Equal(t, domain.ThemeDark, c.State().Theme, "theme applies even when it cannot be saved")
}

func TestController_ToggleDuringRefresh(t *testing.T) {
	t.Parallel()

	agg := newFakeAggregator()
	c := dashboard.New(agg, &memThemes{})

	done := make(chan dashboard.State)
	go func() { done <- c.Refresh(context.Background()) }()
	r := <-agg.runs

	_, err := c.ToggleTheme(context.Background())
	require.NoError(t, err)
	require.True(t, c.State().Loading)

	r.release <- liveVM("live")
	s := <-done
	require.Equal(t, domain.ThemeDark, s.Theme, "commit keeps the toggled theme")
	require.Equal(t, "live", s.ViewModel.News.Title)
}

func TestController_Close(t *testing.T) {
	t.Parallel()

	agg := newFakeAggregator()
	c := dashboard.New(agg, &memThemes{})

	done := make(chan dashboard.State)
	go func() { done <- c.Refresh(context.Background()) }()
	r := <-agg.runs

	c.Close()
	<-r.ctx.Done()
	s := <-done
	require.Equal(t, baseline.ViewModel(), s.ViewModel)
}
