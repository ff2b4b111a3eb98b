// Package render turns dashboard state into terminal output: styled cards for
// people, JSON or YAML for scripts.
package render

import (
	"fmt"
	"strings"
	"time"

	"notfound/internal/dashboard"

	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 38

// Text renders s as a card layout colored by the state's theme.
func Text(s dashboard.State, now time.Time) string {
	p := PaletteFor(s.Theme)
	vm := s.ViewModel

	header := lipgloss.JoinVertical(lipgloss.Left,
		p.Title.Render("404"),
		p.Label.Render("Page Not Found"),
		p.Muted.Render("The page you are looking for drifted away. Here is what is happening instead."),
	)

	weather := p.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Label.Render("Weather · "+vm.Weather.Location),
		p.Accent.Render(fmt.Sprintf("%.1f°C  %s", vm.Weather.TemperatureC, vm.Weather.Condition)),
		p.Muted.Render(fmt.Sprintf("Humidity %d%%  Wind %.0f km/h", vm.Weather.Humidity, vm.Weather.WindKph)),
	))

	quote := p.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Label.Render("Quote"),
		"“"+vm.Quote.Content+"”",
		p.Muted.Render("- "+vm.Quote.Author),
	))

	visual := p.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Label.Render("Visual feed"),
		p.Accent.Render(vm.ImageURL),
	))

	news := p.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		p.Label.Render("Latest"),
		vm.News.Title,
		p.Muted.Render(vm.News.Source+" · "+RelativeTime(vm.News.PublishedAt, now)),
		p.Muted.Render(vm.News.URL),
	))

	status := p.Card.Width(cardWidth).Render(statusLines(p, s, now))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, weather, quote),
		visual,
		lipgloss.JoinHorizontal(lipgloss.Top, news, status),
	) + "\n"
}

func statusLines(p Palette, s dashboard.State, now time.Time) string {
	lines := []string{p.Label.Render("Status")}

	switch {
	case s.Loading:
		lines = append(lines, p.Warn.Render("Refreshing…"))
	case s.Cycle == 0:
		lines = append(lines, p.Muted.Render("Showing offline content"))
	default:
		lines = append(lines, p.Good.Render("Updated "+RelativeTime(s.UpdatedAt, now)))
	}

	var live, fallback []string
	for _, r := range s.Reports {
		if r.Live {
			live = append(live, r.Source)
		} else {
			fallback = append(fallback, r.Source)
		}
	}
	if len(live) > 0 {
		lines = append(lines, p.Good.Render("live: "+strings.Join(live, ", ")))
	}
	if len(fallback) > 0 {
		lines = append(lines, p.Muted.Render("offline: "+strings.Join(fallback, ", ")))
	}
	lines = append(lines, p.Muted.Render("theme: "+s.Theme.String()))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
