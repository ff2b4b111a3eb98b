// Package tui provides an interactive Bubble Tea front end for the dashboard:
// r refreshes, t toggles the theme, q quits.
package tui

import (
	"context"
	"strings"
	"sync"
	"time"

	"notfound/internal/dashboard"
	"notfound/internal/render"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Message types
type (
	// StateMsg carries a state published by the controller.
	StateMsg dashboard.State

	// ToggledMsg is sent when a theme toggle finished.
	ToggledMsg struct {
		Err error
	}
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctx     context.Context
	ctrl    *dashboard.Controller
	state   dashboard.State
	spinner spinner.Model
	now     func() time.Time
	err     error
}

// NewModel creates a model driving ctrl. ctx bounds every cycle the model starts.
func NewModel(ctx context.Context, ctrl *dashboard.Controller) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		state:   ctrl.State(),
		spinner: sp,
		now:     time.Now,
	}
}

// Init restores the theme and starts the first cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initialize())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			// the caller closes the controller once Run returns; locking it
			// here could wait on a cycle that is blocked sending to us
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		case "t":
			return m, m.toggle()
		}

	case StateMsg:
		m.state = dashboard.State(msg)

	case ToggledMsg:
		m.err = msg.Err
		m.state = m.ctrl.State()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	p := render.PaletteFor(m.state.Theme)

	var b strings.Builder
	b.WriteString(render.Text(m.state, m.now()))
	b.WriteString("\n")
	if m.state.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(p.Warn.Render("fetching live data…"))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(p.Warn.Render("theme not saved: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(p.Muted.Render("r: refresh • t: toggle theme • q: quit"))

	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

func (m Model) initialize() tea.Cmd {
	return func() tea.Msg {
		return StateMsg(m.ctrl.Init(m.ctx))
	}
}

// refresh runs a cycle in the background. Pressing r again while it runs
// supersedes it; the superseded command reports whatever state is current.
func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Refresh(m.ctx)

		return StateMsg(m.ctrl.State())
	}
}

func (m Model) toggle() tea.Cmd {
	return func() tea.Msg {
		_, err := m.ctrl.ToggleTheme(m.ctx)

		return ToggledMsg{Err: err}
	}
}

// Bridge forwards controller states to a running program. Pass Bridge.Notify
// to dashboard.WithNotify before the program exists, then Attach it.
type Bridge struct {
	mu sync.Mutex
	p  *tea.Program
}

// Attach starts forwarding to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.p = p
}

// Notify sends s to the attached program, if any.
func (b *Bridge) Notify(s dashboard.State) {
	b.mu.Lock()
	p := b.p
	b.mu.Unlock()

	if p != nil {
		p.Send(StateMsg(s))
	}
}

// Run starts the TUI application and blocks until the user quits.
func Run(ctx context.Context, ctrl *dashboard.Controller, bridge *Bridge, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(ctx, ctrl), opts...)
	bridge.Attach(p)
	defer bridge.Attach(nil)

	_, err := p.Run()

	return err //nolint: wrapcheck
}
