// Package dashboard owns the application state shown by the renderers: the
// current view model, the loading flag and the active theme.
package dashboard

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"notfound/internal/aggregator"
	"notfound/pkg/domain"
	"notfound/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Aggregator produces view models.
type Aggregator interface {
	Run(ctx context.Context) aggregator.Cycle
	Baseline() domain.Baseline
}

// ThemeStore persists the theme preference.
type ThemeStore interface {
	Load(ctx context.Context) (domain.Theme, error)
	Save(ctx context.Context, t domain.Theme) error
}

// State is an immutable snapshot of the dashboard. A new State replaces the
// previous one as a whole.
type State struct {
	ViewModel domain.ViewModel
	// Loading is true while the most recently started cycle is in flight.
	Loading bool
	Theme   domain.Theme
	// Cycle is the sequence number of the cycle that produced ViewModel; zero
	// means the view model is still the baseline.
	Cycle   uint64
	CycleID uuid.UUID
	Reports []aggregator.Report
	// UpdatedAt is when ViewModel was committed.
	UpdatedAt time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotify registers fn to receive every published State, in publication
// order. fn runs synchronously and must not call back into the Controller.
func WithNotify(fn func(State)) Option {
	return func(c *Controller) { c.notify = fn }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller runs aggregation cycles and publishes their results. Only the
// most recently started cycle may commit: starting a cycle cancels the one in
// flight and its result is discarded.
type Controller struct {
	agg    Aggregator
	themes ThemeStore
	notify func(State)
	now    func() time.Time

	state atomic.Pointer[State]

	mu     sync.Mutex // guards seq, cancel and state transitions
	seq    uint64
	cancel context.CancelFunc

	themeMu sync.Mutex // serializes toggles so the last flip is the one persisted
}

// New returns a Controller whose initial state is the baseline view model
// with the default theme.
func New(agg Aggregator, themes ThemeStore, opts ...Option) *Controller {
	c := &Controller{
		agg:    agg,
		themes: themes,
		notify: func(State) {},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.state.Store(&State{
		ViewModel: agg.Baseline().ViewModel(),
		Theme:     domain.ThemeLight,
	})

	return c
}

// State returns the current snapshot without blocking.
func (c *Controller) State() State { return *c.state.Load() }

// Init restores the persisted theme and runs the first cycle. A theme that
// cannot be loaded leaves the default in place.
func (c *Controller) Init(ctx context.Context) State {
	t, err := c.themes.Load(ctx)
	if err != nil {
		logger.Warn(ctx, "could not restore theme, using default", zap.Error(err))
	}

	c.mu.Lock()
	c.publish(func(s *State) { s.Theme = t })
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Refresh starts a new cycle, superseding any cycle in flight, and blocks
// until it settles. It returns the state current at that point, which is the
// new cycle's result unless another Refresh superseded it meanwhile.
func (c *Controller) Refresh(ctx context.Context) State {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.publish(func(s *State) { s.Loading = true })
	c.mu.Unlock()

	defer cancel()

	cycle := c.agg.Run(runCtx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		logger.Debug(ctx, "discarding superseded cycle",
			zap.Uint64("cycle", seq),
			zap.Uint64("latest", c.seq),
			zap.String("cycleID", cycle.ID.String()))

		return *c.state.Load()
	}

	c.cancel = nil
	c.publish(func(s *State) {
		s.ViewModel = cycle.ViewModel
		s.Loading = false
		s.Cycle = seq
		s.CycleID = cycle.ID
		s.Reports = cycle.Reports
		s.UpdatedAt = c.now()
	})

	return *c.state.Load()
}

// ToggleTheme flips the theme, applies it and persists it. The new theme is
// applied even when persisting fails; the error is returned so callers can
// report it.
func (c *Controller) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	c.themeMu.Lock()
	defer c.themeMu.Unlock()

	c.mu.Lock()
	next := c.state.Load().Theme.Toggle()
	c.publish(func(s *State) { s.Theme = next })
	c.mu.Unlock()

	if err := c.themes.Save(ctx, next); err != nil {
		logger.Warn(ctx, "could not persist theme", zap.Stringer("theme", next), zap.Error(err))

		return next, err //nolint: wrapcheck
	}

	return next, nil
}

// Close cancels the cycle in flight, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// publish copies the current state, applies fn and swaps the copy in.
// Callers hold c.mu.
func (c *Controller) publish(fn func(s *State)) {
	next := *c.state.Load()
	fn(&next)
	c.state.Store(&next)
	c.notify(next)
}
