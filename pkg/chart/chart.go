// Package chart carries the data contract handed to the rendering
// collaborator: a fixed-length bar series with month labels and an axis
// title, rendered with a zero baseline.
package chart

import (
	"fmt"

	"github.com/iwvelando/energy-estimate/internal/seasonal"
)

// AxisTitle is the y-axis description for the monthly cost series.
const AxisTitle = "Dollars per month"

// BarSeries is the value object consumed by renderers: twelve monthly
// dollar values paired with twelve month-name labels.
type BarSeries struct {
	Labels    []string
	Values    []float64
	AxisTitle string
}

// MonthlySeries builds the chart contract from a decomposed monthly series.
// The values must already be in calendar order, January first.
func MonthlySeries(values []float64) (BarSeries, error) {
	if len(values) != seasonal.MonthsPerYear {
		return BarSeries{}, fmt.Errorf("expected %d monthly values, got %d", seasonal.MonthsPerYear, len(values))
	}
	return BarSeries{
		Labels:    seasonal.Labels(),
		Values:    values,
		AxisTitle: AxisTitle,
	}, nil
}

// Renderer is the external rendering collaborator. It receives the series
// and draws or redraws a bar chart.
type Renderer interface {
	Render(series BarSeries) error
}

// Session is an explicitly owned chart handle. The first Update creates
// the chart through the renderer; later Updates redraw it. Owning the
// session on the caller side avoids hidden module-level chart state in
// multi-session embeddings.
type Session struct {
	renderer Renderer
	rendered bool
}

// NewSession wraps a renderer in a caller-held session.
func NewSession(renderer Renderer) *Session {
	return &Session{renderer: renderer}
}

// Update renders the series through the owned renderer, creating the chart
// on first use.
func (s *Session) Update(series BarSeries) error {
	if s.renderer == nil {
		return fmt.Errorf("chart session has no renderer")
	}
	if err := s.renderer.Render(series); err != nil {
		return err
	}
	s.rendered = true
	return nil
}

// Rendered reports whether the session has drawn a chart yet.
func (s *Session) Rendered() bool {
	return s.rendered
}
