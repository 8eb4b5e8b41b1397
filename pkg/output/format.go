// Package output provides utilities for formatting and displaying estimate results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/energy-estimate/internal/estimate"
	"github.com/iwvelando/energy-estimate/pkg/chart"
	"github.com/iwvelando/energy-estimate/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report pairs an estimate result with its decomposed monthly chart series.
type Report struct {
	Result *estimate.Result
	Series chart.BarSeries
}

// PrettyFormat outputs a human-readable table followed by a terminal bar
// chart of the monthly series.
func PrettyFormat(report Report) {
	prettyFormatTo(os.Stdout, report)
}

func prettyFormatTo(w io.Writer, report Report) {
	p := message.NewPrinter(language.English)
	result := report.Result

	fmt.Fprintf(w, "--- Estimated residential electricity cost ---\n")
	fmt.Fprintf(w, "Metric           | Value\n")
	fmt.Fprintf(w, "______           | _____\n")
	_, _ = p.Fprintf(w, "Annual estimate  | $%.0f\n", result.Annual)
	_, _ = p.Fprintf(w, "Annual 95%% CI    | $%.0f - $%.0f\n", result.AnnualLow, result.AnnualHigh)
	_, _ = p.Fprintf(w, "Monthly estimate | $%.0f\n", result.Monthly)
	_, _ = p.Fprintf(w, "Monthly 95%% CI   | $%.0f - $%.0f\n", result.MonthlyLow, result.MonthlyHigh)
	fmt.Fprintf(w, "Year bracket     | %s\n", result.YearBracket.Label)
	fmt.Fprintf(w, "Area bracket     | %s\n", result.AreaBracket.Label)
	fmt.Fprintf(w, "\n")

	session := chart.NewSession(&TerminalRenderer{W: w})
	if err := session.Update(report.Series); err != nil {
		fmt.Fprintf(w, "failed to render chart: %v\n", err)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(report Report) {
	fmt.Print(CsvString(report))
}

// CsvString returns the CSV rendering of a report as a string.
func CsvString(report Report) string {
	var builder strings.Builder
	result := report.Result

	builder.WriteString("\"metric\",\"dollars\"\n")
	rows := []struct {
		metric string
		value  float64
	}{
		{"annual", result.Annual},
		{"annual_low", result.AnnualLow},
		{"annual_high", result.AnnualHigh},
		{"monthly", result.Monthly},
		{"monthly_low", result.MonthlyLow},
		{"monthly_high", result.MonthlyHigh},
	}
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("\"%s\",\"%.2f\"\n", row.metric, row.value))
	}

	builder.WriteString("\"month\",\"dollars\"\n")
	for i, value := range report.Series.Values {
		builder.WriteString(fmt.Sprintf("\"%s\",\"%.2f\"\n", report.Series.Labels[i], value))
	}

	return builder.String()
}

// TerminalRenderer draws a bar series as rows of hash marks scaled to the
// largest value, with a zero baseline.
type TerminalRenderer struct {
	W io.Writer

	// MaxBarWidth caps the longest bar; zero means the default of 40.
	MaxBarWidth int
}

// Render implements chart.Renderer.
func (r *TerminalRenderer) Render(series chart.BarSeries) error {
	w := r.W
	if w == nil {
		w = os.Stdout
	}
	maxWidth := r.MaxBarWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}

	peak := 0.0
	for _, value := range series.Values {
		if value > peak {
			peak = value
		}
	}

	labelWidth := 0
	for _, label := range series.Labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	fmt.Fprintf(w, "%s\n", series.AxisTitle)
	for i, value := range series.Values {
		bar := 0
		if peak > 0 && value > 0 {
			bar = int(value / peak * float64(maxWidth))
		}
		fmt.Fprintf(w, "%-*s | %s %s\n", labelWidth, series.Labels[i],
			strings.Repeat("#", bar), format.Currency(value))
	}
	return nil
}
