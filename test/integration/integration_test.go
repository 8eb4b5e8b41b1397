package integration

import (
	"strings"
	"testing"

	"github.com/iwvelando/energy-estimate/internal/config"
	"github.com/iwvelando/energy-estimate/internal/estimate"
	"github.com/iwvelando/energy-estimate/internal/seasonal"
	"github.com/iwvelando/energy-estimate/pkg/chart"
	"github.com/iwvelando/energy-estimate/pkg/mathutil"
	"github.com/iwvelando/energy-estimate/pkg/output"
	"go.uber.org/zap"
)

// TestFullEstimatePipeline runs the complete flow: configuration load and
// normalization, estimation, seasonal decomposition, chart series assembly,
// and CSV rendering.
func TestFullEstimatePipeline(t *testing.T) {
	yaml := `
estimate:
  regionScalar: 1.30
output:
  format: csv
`
	conf, err := config.LoadConfigurationFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	warnings := conf.NormalizeRegionScalar()
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	result, err := estimate.Compute(zap.NewNop(), 1975, 1750, conf.Estimate.RegionScalar)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if !mathutil.WithinTolerance(result.Annual, 2395.43, 0.5) {
		t.Errorf("annual = %.2f, expected ~2395.43", result.Annual)
	}

	monthly := seasonal.Decompose(result.Monthly)
	series, err := chart.MonthlySeries(monthly)
	if err != nil {
		t.Fatalf("MonthlySeries() error = %v", err)
	}

	sum := 0.0
	for _, value := range series.Values {
		sum += value
	}
	if !mathutil.WithinTolerance(sum/12, result.Monthly, 1e-6) {
		t.Errorf("decomposed mean = %.6f, expected the base monthly %.6f", sum/12, result.Monthly)
	}

	csv := output.CsvString(output.Report{Result: result, Series: series})
	if !strings.Contains(csv, "\"annual\"") || !strings.Contains(csv, "\"January\"") {
		t.Errorf("CSV output incomplete:\n%s", csv)
	}
}

// TestInvalidScalarFallsBackToDefault covers the caller-side guard: the
// estimator never sees a non-positive scalar.
func TestInvalidScalarFallsBackToDefault(t *testing.T) {
	yaml := `
estimate:
  regionScalar: -3.5
`
	conf, err := config.LoadConfigurationFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	warnings := conf.NormalizeRegionScalar()
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for negative scalar, got %v", warnings)
	}

	result, err := estimate.Compute(zap.NewNop(), 2015, 3200, conf.Estimate.RegionScalar)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if result.Annual <= 0 {
		t.Errorf("annual = %.2f, expected positive estimate under default scalar", result.Annual)
	}
}
