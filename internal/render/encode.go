package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"notfound/internal/dashboard"
	"notfound/pkg/domain"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// SourceStatus is the machine-readable outcome of one source.
type SourceStatus struct {
	Source string `json:"source"           yaml:"source"`
	Live   bool   `json:"live"             yaml:"live"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Document is the machine-readable form of a dashboard state.
type Document struct {
	Theme     domain.Theme     `json:"theme"               yaml:"theme"`
	Loading   bool             `json:"loading"             yaml:"loading"`
	CycleID   string           `json:"cycleId,omitempty"   yaml:"cycleId,omitempty"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
	ViewModel domain.ViewModel `json:"viewModel"           yaml:"viewModel"`
	Sources   []SourceStatus   `json:"sources,omitempty"   yaml:"sources,omitempty"`
}

// NewDocument converts s.
func NewDocument(s dashboard.State) Document {
	d := Document{
		Theme:     s.Theme,
		Loading:   s.Loading,
		ViewModel: s.ViewModel,
	}
	if s.Cycle > 0 {
		d.CycleID = s.CycleID.String()
		updated := s.UpdatedAt
		d.UpdatedAt = &updated
	}
	for _, r := range s.Reports {
		st := SourceStatus{Source: r.Source, Live: r.Live}
		if r.Reason != nil {
			st.Reason = r.Reason.Error()
		}
		d.Sources = append(d.Sources, st)
	}

	return d
}

// Write renders s to w in format f.
func Write(w io.Writer, f Format, s dashboard.State, now time.Time) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(s)); err != nil {
			return fmt.Errorf("could not encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(s)); err != nil {
			return fmt.Errorf("could not encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("could not flush yaml: %w", err)
		}
	default:
		if _, err := io.WriteString(w, Text(s, now)); err != nil {
			return fmt.Errorf("could not write output: %w", err)
		}
	}

	return nil
}
